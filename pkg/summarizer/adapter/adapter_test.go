package adapter_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adrianliechti/medlens/pkg/extractor"
	"github.com/adrianliechti/medlens/pkg/provider"
	"github.com/adrianliechti/medlens/pkg/summarizer"
	"github.com/adrianliechti/medlens/pkg/summarizer/adapter"

	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	messages []provider.Message
	options  *provider.CompleteOptions

	text string
	err  error
}

func (c *fakeCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	c.messages = messages
	c.options = options

	if c.err != nil {
		return nil, c.err
	}

	return &provider.Completion{
		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: []provider.Content{provider.TextContent(c.text)},
		},
	}, nil
}

var document = &extractor.Document{
	Pages: []extractor.Page{
		{
			Page: 1,
			Lines: []extractor.Line{
				{Text: "Dr. Smith"},
				{Text: "John Doe"},
			},
		},
	},
}

func TestSummarize(t *testing.T) {
	c := &fakeCompleter{
		text: "\n  Doctor Name: Dr. Smith\nPatient Name: John Doe  \n",
	}

	a := adapter.FromCompleter(c)

	summary, err := a.Summarize(context.Background(), document, nil)
	require.NoError(t, err)

	require.Equal(t, "Doctor Name: Dr. Smith\nPatient Name: John Doe", summary.Text)

	require.Len(t, c.messages, 2)
	require.Equal(t, provider.MessageRoleSystem, c.messages[0].Role)
	require.Equal(t, "You are a helpful assistant.", c.messages[0].Text())
	require.Equal(t, provider.MessageRoleUser, c.messages[1].Role)

	data, err := document.JSON()
	require.NoError(t, err)

	prompt := c.messages[1].Text()
	require.True(t, strings.HasSuffix(prompt, data))
	require.Contains(t, prompt, "without using markdown")
	require.Contains(t, prompt, "Preserve the order of the data")
	require.Contains(t, prompt, "confidentially")

	require.Equal(t, 500, *c.options.MaxTokens)
	require.Equal(t, float32(0.2), *c.options.Temperature)
}

func TestSummarizeOptions(t *testing.T) {
	c := &fakeCompleter{text: "Amount: 100"}

	maxTokens := 1000
	temperature := float32(0)

	_, err := adapter.FromCompleter(c).Summarize(context.Background(), document, &summarizer.SummarizeOptions{
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})

	require.NoError(t, err)
	require.Equal(t, 1000, *c.options.MaxTokens)
	require.Equal(t, float32(0), *c.options.Temperature)
}

func TestSummarizeAdapterOptions(t *testing.T) {
	c := &fakeCompleter{text: "Amount: 100"}

	a := adapter.FromCompleter(c, adapter.WithMaxTokens(250), adapter.WithTemperature(0.5))

	_, err := a.Summarize(context.Background(), document, nil)
	require.NoError(t, err)

	require.Equal(t, 250, *c.options.MaxTokens)
	require.Equal(t, float32(0.5), *c.options.Temperature)
}

func TestSummarizeError(t *testing.T) {
	upstream := errors.New("rate limited")

	_, err := adapter.FromCompleter(&fakeCompleter{err: upstream}).Summarize(context.Background(), document, nil)
	require.ErrorIs(t, err, upstream)
}
