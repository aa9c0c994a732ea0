package otel

import (
	"context"

	"github.com/adrianliechti/medlens/pkg/extractor"
	"github.com/adrianliechti/medlens/pkg/summarizer"

	"go.opentelemetry.io/otel"
)

type Summarizer interface {
	Observable
	summarizer.Provider
}

type observableSummarizer struct {
	provider string

	summarizer summarizer.Provider
}

func NewSummarizer(provider string, p summarizer.Provider) Summarizer {
	return &observableSummarizer{
		summarizer: p,

		provider: provider,
	}
}

func (p *observableSummarizer) otelSetup() {
}

func (p *observableSummarizer) Summarize(ctx context.Context, document *extractor.Document, options *summarizer.SummarizeOptions) (*summarizer.Summary, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "summarize "+p.provider)
	defer span.End()

	result, err := p.summarizer.Summarize(ctx, document, options)

	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(Int("summary.length", len(result.Text)))

	return result, nil
}
