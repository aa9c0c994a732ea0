package otel

import (
	"context"

	"github.com/adrianliechti/medlens/pkg/extractor"

	"go.opentelemetry.io/otel"
)

type Extractor interface {
	Observable
	extractor.Provider
}

type observableExtractor struct {
	model    string
	provider string

	extractor extractor.Provider
}

func NewExtractor(provider, model string, p extractor.Provider) Extractor {
	return &observableExtractor{
		extractor: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableExtractor) otelSetup() {
}

func (p *observableExtractor) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "extract "+p.model)
	defer span.End()

	span.SetAttributes(KeyValues([]KeyValue{
		String("extractor.provider", p.provider),
		Int("extractor.input.size", len(file.Content)),
	}, EndUserAttrs(ctx))...)

	result, err := p.extractor.Extract(ctx, file, options)

	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(Int("extractor.output.pages", len(result.Pages)))

	return result, nil
}
