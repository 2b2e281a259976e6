package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/healthcompanion/api/internal/model"
)

// Fixed fallback payloads returned whenever the collaborator fails. Degraded
// results always carry HTTP 200 with a status flag, never a server error.
const (
	fallbackExplanation     = "Unable to generate explanation at this time."
	fallbackRecommendations = "Unable to generate recommendations"
	fallbackSchemes         = "Unable to find schemes"
	fallbackHealthTip       = "Stay hydrated and eat fresh fruits daily for better health!"
	fallbackChat            = "I'm sorry, I couldn't process your query right now. Please try again later."
	fallbackAnalysisNotes   = "Unable to analyze prescription"
	fallbackAnalysisSummary = "Analysis failed"
)

const tipCacheKey = "daily_health_tip"

// Assistant wraps the text generator with the platform's prompt templates and
// fallback handling.
type Assistant struct {
	generator Generator
	tips      *cache.Cache
	logger    zerolog.Logger
}

func NewAssistant(generator Generator, logger zerolog.Logger) *Assistant {
	return &Assistant{
		generator: generator,
		tips:      cache.New(cache.NoExpiration, 10*time.Minute),
		logger:    logger.With().Str("component", "ai_assistant").Logger(),
	}
}

// ExplainMedicine generates a plain-language explanation for a catalog entry.
func (a *Assistant) ExplainMedicine(ctx context.Context, name string, details map[string]interface{}) *model.AIExplanation {
	prompt := fmt.Sprintf(`Explain this medicine in simple terms for people in Tier 2/3 cities in India:

Medicine: %s
Details: %s

Please provide:
1. Why this medicine is used (in simple language)
2. How to take it safely
3. Possible side effects
4. Any alternatives or precautions

Keep it simple and in a caring tone.`, name, formatDetails(details))

	text, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.Error().Err(err).Str("medicine", name).Msg("medicine explanation failed")
		return &model.AIExplanation{Explanation: fallbackExplanation, Status: model.AIStatusError}
	}
	return &model.AIExplanation{Explanation: text, Status: model.AIStatusSuccess}
}

// AnalyzePrescription asks for a structured analysis of extracted text and
// slices the first JSON object out of the reply. Any failure yields the
// placeholder analysis.
func (a *Assistant) AnalyzePrescription(ctx context.Context, extractedText string) *model.PrescriptionAnalysis {
	prompt := fmt.Sprintf(`Analyze this prescription text and provide structured information:

Prescription Text: %s

Please provide JSON response with:
{
    "medicines": [
        {
            "name": "medicine name",
            "dosage": "dosage",
            "frequency": "how often",
            "duration": "how long",
            "purpose": "why prescribed"
        }
    ],
    "doctor_notes": "any special instructions",
    "warnings": ["any unusual combinations or issues"],
    "summary": "overall prescription summary in simple language"
}`, extractedText)

	fallback := &model.PrescriptionAnalysis{
		Medicines:   model.PrescriptionMedicines{},
		DoctorNotes: fallbackAnalysisNotes,
		Warnings:    []string{},
		Summary:     fallbackAnalysisSummary,
	}

	text, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.Error().Err(err).Msg("prescription analysis failed")
		return fallback
	}

	jsonStr, ok := sliceJSON(text)
	if !ok {
		a.logger.Error().Msg("prescription analysis returned no JSON object")
		return fallback
	}

	var analysis model.PrescriptionAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		a.logger.Error().Err(err).Msg("prescription analysis returned malformed JSON")
		return fallback
	}
	if analysis.Medicines == nil {
		analysis.Medicines = model.PrescriptionMedicines{}
	}
	if analysis.Warnings == nil {
		analysis.Warnings = []string{}
	}
	return &analysis
}

// RecommendInsurance suggests plans for a flattened patient profile.
func (a *Assistant) RecommendInsurance(ctx context.Context, profile *model.AdvisoryProfile) *model.AIRecommendation {
	prompt := fmt.Sprintf(`Based on this patient profile, recommend suitable insurance plans:

Patient Profile: %s

Consider Indian insurance market and provide recommendations for:
1. Best private insurance plans
2. Government schemes (like Ayushman Bharat)
3. Specific recommendations based on age, income, family size

Provide JSON response with recommendations.`, formatProfile(profile))

	text, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.Error().Err(err).Msg("insurance recommendation failed")
		return &model.AIRecommendation{Recommendations: fallbackRecommendations, Status: model.AIStatusError}
	}
	return &model.AIRecommendation{Recommendations: text, Status: model.AIStatusSuccess}
}

// FindGovernmentSchemes looks up schemes relevant to a patient's location and
// profile.
func (a *Assistant) FindGovernmentSchemes(ctx context.Context, location string, profile *model.AdvisoryProfile) *model.SchemeResult {
	prompt := fmt.Sprintf(`Find relevant government health schemes for:
Location: %s
Patient Profile: %s

Include:
1. Free government checkups
2. Subsidies available
3. Maternity support (if applicable)
4. Child vaccination schemes
5. Senior citizen programs

Focus on schemes available in India, especially for Tier 2/3 cities.`, location, formatProfile(profile))

	text, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.Error().Err(err).Msg("government schemes lookup failed")
		return &model.SchemeResult{Schemes: fallbackSchemes, Status: model.AIStatusError}
	}
	return &model.SchemeResult{Schemes: text, Status: model.AIStatusSuccess}
}

// DailyHealthTip generates one tip per calendar day and caches it until
// midnight. The fallback tip is never cached.
func (a *Assistant) DailyHealthTip(ctx context.Context) string {
	if tip, found := a.tips.Get(tipCacheKey); found {
		return tip.(string)
	}

	prompt := `Generate a simple, practical health tip for people in Indian Tier 2/3 cities.
Make it actionable and explain why it's important.
Keep it under 100 words and use simple language.`

	text, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.Error().Err(err).Msg("health tip generation failed")
		return fallbackHealthTip
	}

	a.tips.Set(tipCacheKey, text, untilMidnight())
	return text
}

// Chat answers a free-form health question.
func (a *Assistant) Chat(ctx context.Context, query string) string {
	prompt := fmt.Sprintf(`You are a helpful health assistant for people in Tier 2/3 cities in India.
Answer this health-related query in simple language: %s

Keep the response practical and actionable.`, query)

	text, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		a.logger.Error().Err(err).Msg("chat failed")
		return fallbackChat
	}
	return text
}

// sliceJSON extracts the outermost JSON object from free text, tolerating
// markdown fences and prose around it.
func sliceJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

func formatDetails(details map[string]interface{}) string {
	b, err := json.Marshal(details)
	if err != nil {
		return fmt.Sprintf("%v", details)
	}
	return string(b)
}

func formatProfile(profile *model.AdvisoryProfile) string {
	b, err := json.Marshal(profile)
	if err != nil {
		return fmt.Sprintf("%+v", profile)
	}
	return string(b)
}

func untilMidnight() time.Duration {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(24 * time.Hour)
	return time.Until(midnight)
}
