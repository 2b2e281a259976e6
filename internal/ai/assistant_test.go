package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/healthcompanion/api/internal/model"
)

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestExplainMedicineFallsBackOnFailure(t *testing.T) {
	a := NewAssistant(&fakeGenerator{err: errors.New("unreachable")}, zerolog.Nop())

	expl := a.ExplainMedicine(context.Background(), "Paracetamol", nil)
	assert.Equal(t, model.AIStatusError, expl.Status)
	assert.Equal(t, fallbackExplanation, expl.Explanation)
}

func TestAnalyzePrescriptionSlicesJSONFromProse(t *testing.T) {
	reply := "Here is the analysis:\n```json\n" +
		`{"medicines":[{"name":"Amoxicillin","dosage":"500mg","frequency":"twice daily","duration":"5 days","purpose":"infection"}],` +
		`"doctor_notes":"take with food","warnings":[],"summary":"antibiotic course"}` +
		"\n```\nLet me know if you need more."
	a := NewAssistant(&fakeGenerator{reply: reply}, zerolog.Nop())

	analysis := a.AnalyzePrescription(context.Background(), "some text")
	assert.Len(t, analysis.Medicines, 1)
	assert.Equal(t, "Amoxicillin", analysis.Medicines[0].Name)
	assert.Equal(t, "take with food", analysis.DoctorNotes)
	assert.Equal(t, "antibiotic course", analysis.Summary)
}

func TestAnalyzePrescriptionFallsBackOnMalformedReply(t *testing.T) {
	a := NewAssistant(&fakeGenerator{reply: "no json here"}, zerolog.Nop())

	analysis := a.AnalyzePrescription(context.Background(), "some text")
	assert.Empty(t, analysis.Medicines)
	assert.Equal(t, fallbackAnalysisNotes, analysis.DoctorNotes)
	assert.Equal(t, fallbackAnalysisSummary, analysis.Summary)
}

func TestRecommendInsuranceDegrades(t *testing.T) {
	a := NewAssistant(&fakeGenerator{err: errors.New("timeout")}, zerolog.Nop())

	rec := a.RecommendInsurance(context.Background(), &model.AdvisoryProfile{})
	assert.Equal(t, model.AIStatusError, rec.Status)
	assert.Equal(t, fallbackRecommendations, rec.Recommendations)
}

func TestDailyHealthTipIsCached(t *testing.T) {
	gen := &fakeGenerator{reply: "Walk 30 minutes every morning."}
	a := NewAssistant(gen, zerolog.Nop())

	first := a.DailyHealthTip(context.Background())
	second := a.DailyHealthTip(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.calls)
}

func TestDailyHealthTipFallbackNotCached(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("unreachable")}
	a := NewAssistant(gen, zerolog.Nop())

	assert.Equal(t, fallbackHealthTip, a.DailyHealthTip(context.Background()))
	assert.Equal(t, fallbackHealthTip, a.DailyHealthTip(context.Background()))
	assert.Equal(t, 2, gen.calls)
}
