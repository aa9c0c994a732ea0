package summarizer

import (
	"context"

	"github.com/adrianliechti/medlens/pkg/extractor"
)

type Provider interface {
	Summarize(ctx context.Context, document *extractor.Document, options *SummarizeOptions) (*Summary, error)
}

type SummarizeOptions struct {
	MaxTokens   *int
	Temperature *float32
}

// Summary holds one "Key: Value" pair per line.
type Summary struct {
	Text string
}
