package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/medlens/pkg/provider"
	"github.com/adrianliechti/medlens/pkg/provider/openai"

	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	var body map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "llama-3.1-8b-instant",
			"choices": [
				{
					"index": 0,
					"finish_reason": "stop",
					"message": { "role": "assistant", "content": "Amount: 500" }
				}
			],
			"usage": { "prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16 }
		}`))
	}))

	defer server.Close()

	c, err := openai.NewCompleter(server.URL, "", openai.WithToken("test-key"))
	require.NoError(t, err)

	maxTokens := 500
	temperature := float32(0.2)

	completion, err := c.Complete(context.Background(), []provider.Message{
		provider.SystemMessage("You are a helpful assistant."),
		provider.UserMessage("hello"),
	}, &provider.CompleteOptions{
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})

	require.NoError(t, err)
	require.Equal(t, "Amount: 500", completion.Message.Text())
	require.Equal(t, provider.CompletionReasonStop, completion.Reason)
	require.Equal(t, &provider.Usage{InputTokens: 12, OutputTokens: 4}, completion.Usage)

	require.Equal(t, openai.DefaultModel, body["model"])
	require.EqualValues(t, 500, body["max_tokens"])
	require.InDelta(t, 0.2, body["temperature"], 0.0001)

	messages := body["messages"].([]any)
	require.Len(t, messages, 2)
	require.Equal(t, "system", messages[0].(map[string]any)["role"])
	require.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-2","object":"chat.completion","created":0,"model":"m","choices":[]}`))
	}))

	defer server.Close()

	c, err := openai.NewCompleter(server.URL, "m")
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []provider.Message{
		provider.UserMessage("hello"),
	}, nil)

	require.Error(t, err)
}

func TestCompleteUpstreamError(t *testing.T) {
	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
	}))

	defer server.Close()

	c, err := openai.NewCompleter(server.URL, "m", openai.WithToken("wrong"))
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), []provider.Message{
		provider.UserMessage("hello"),
	}, nil)

	require.Error(t, err)
	require.Equal(t, 1, calls)
}
