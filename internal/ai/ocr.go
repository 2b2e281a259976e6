package ai

import (
	"context"
	"fmt"
)

// TextExtractor turns a stored prescription image into text. The real OCR
// engine is an external collaborator; the contract is image in, text out.
type TextExtractor interface {
	ExtractText(ctx context.Context, path, originalName string) (string, error)
}

type stubExtractor struct{}

// NewStubExtractor returns an extractor that produces deterministic sample
// text instead of calling an OCR engine.
func NewStubExtractor() TextExtractor {
	return stubExtractor{}
}

func (stubExtractor) ExtractText(_ context.Context, _ string, originalName string) (string, error) {
	return fmt.Sprintf("Sample prescription text from %s", originalName), nil
}
