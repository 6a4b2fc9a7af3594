package extract

import (
	"context"
	"time"
)

// TextExtractor turns a resume file into raw text. The screening pipeline
// treats it as a black box: raw text out, or an error.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-text"
	Duration time.Duration
	Warnings []string
}
