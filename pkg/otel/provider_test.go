package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/medlens/pkg/extractor"
	"github.com/adrianliechti/medlens/pkg/otel"
	"github.com/adrianliechti/medlens/pkg/provider"
	"github.com/adrianliechti/medlens/pkg/summarizer"

	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	err error
}

func (e stubExtractor) Extract(ctx context.Context, input extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if e.err != nil {
		return nil, e.err
	}

	return &extractor.Document{Pages: []extractor.Page{{Page: 1}}}, nil
}

type stubCompleter struct{}

func (stubCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	return &provider.Completion{
		Model: "llama-3.1-8b-instant",

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: []provider.Content{provider.TextContent("Amount: 500")},
		},

		Usage: &provider.Usage{InputTokens: 10, OutputTokens: 3},
	}, nil
}

type stubSummarizer struct{}

func (stubSummarizer) Summarize(ctx context.Context, document *extractor.Document, options *summarizer.SummarizeOptions) (*summarizer.Summary, error) {
	return &summarizer.Summary{Text: "Amount: 500"}, nil
}

func TestObservableExtractor(t *testing.T) {
	e := otel.NewExtractor("azure", "prebuilt-read", stubExtractor{})

	doc, err := e.Extract(context.Background(), extractor.File{Content: []byte("png")}, nil)
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)

	upstream := errors.New("boom")

	_, err = otel.NewExtractor("azure", "prebuilt-read", stubExtractor{err: upstream}).Extract(context.Background(), extractor.File{}, nil)
	require.ErrorIs(t, err, upstream)
}

func TestObservableCompleter(t *testing.T) {
	c := otel.NewCompleter("groq", "llama-3.1-8b-instant", stubCompleter{})

	completion, err := c.Complete(context.Background(), []provider.Message{provider.UserMessage("hi")}, nil)
	require.NoError(t, err)
	require.Equal(t, "Amount: 500", completion.Message.Text())
}

func TestObservableSummarizer(t *testing.T) {
	s := otel.NewSummarizer("groq", stubSummarizer{})

	summary, err := s.Summarize(context.Background(), &extractor.Document{}, nil)
	require.NoError(t, err)
	require.Equal(t, "Amount: 500", summary.Text)
}
