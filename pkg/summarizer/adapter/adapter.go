package adapter

import (
	"context"
	"strings"

	"github.com/adrianliechti/medlens/pkg/extractor"
	"github.com/adrianliechti/medlens/pkg/provider"
	"github.com/adrianliechti/medlens/pkg/summarizer"
)

const (
	DefaultMaxTokens   = 500
	DefaultTemperature = float32(0.2)
)

var _ summarizer.Provider = (*Adapter)(nil)

type Adapter struct {
	completer provider.Completer

	maxTokens   int
	temperature float32
}

type Option func(*Adapter)

func WithMaxTokens(val int) Option {
	return func(a *Adapter) {
		a.maxTokens = val
	}
}

func WithTemperature(val float32) Option {
	return func(a *Adapter) {
		a.temperature = val
	}
}

func FromCompleter(completer provider.Completer, options ...Option) *Adapter {
	a := &Adapter{
		completer: completer,

		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
	}

	for _, option := range options {
		option(a)
	}

	return a
}

func (a *Adapter) Summarize(ctx context.Context, document *extractor.Document, options *summarizer.SummarizeOptions) (*summarizer.Summary, error) {
	if options == nil {
		options = new(summarizer.SummarizeOptions)
	}

	data, err := document.JSON()

	if err != nil {
		return nil, err
	}

	maxTokens := a.maxTokens
	temperature := a.temperature

	if options.MaxTokens != nil {
		maxTokens = *options.MaxTokens
	}

	if options.Temperature != nil {
		temperature = *options.Temperature
	}

	completion, err := a.completer.Complete(ctx, []provider.Message{
		provider.SystemMessage(systemPrompt),
		provider.UserMessage(buildPrompt(data)),
	}, &provider.CompleteOptions{
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})

	if err != nil {
		return nil, err
	}

	var text string

	if completion.Message != nil {
		text = completion.Message.Text()
	}

	return &summarizer.Summary{
		Text: strings.TrimSpace(text),
	}, nil
}
