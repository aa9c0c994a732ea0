package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Setenv("TEST_AZURE_KEY", "azure-secret")
	t.Setenv("TEST_GROQ_KEY", "groq-secret")

	data := `
address: ":9090"

authorizers:
  - type: static
    token: s3cret
  - type: header

extractor:
  type: azure
  url: https://example.cognitiveservices.azure.com
  token: ${TEST_AZURE_KEY}
  limit: 5
  timeout: 90s

completer:
  type: groq
  token: ${TEST_GROQ_KEY}
  model: llama-3.1-8b-instant
  timeout: 30s
  proxy:
    url: http://proxy.local:3128

summarizer:
  max_tokens: 800
  temperature: 0.1

table:
  keep_unlabeled: true
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	file, err := parseFile(path)
	require.NoError(t, err)

	require.Equal(t, "azure-secret", file.Extractor.Token)
	require.Equal(t, "groq-secret", file.Completer.Token)
	require.Equal(t, 800, *file.Summarizer.MaxTokens)

	cfg, err := Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Address)
	require.Len(t, cfg.Authorizers, 2)

	require.NotNil(t, cfg.Extractor)
	require.NotNil(t, cfg.Completer)
	require.NotNil(t, cfg.Summarizer)

	require.Equal(t, 90*time.Second, cfg.Pipeline.ExtractTimeout)
	require.Equal(t, 30*time.Second, cfg.Pipeline.SummarizeTimeout)
	require.True(t, cfg.Pipeline.Table.KeepUnlabeled)

	p := cfg.NewPipeline()
	require.Same(t, cfg.Extractor, p.Extractor)
}

func TestParseDefaults(t *testing.T) {
	file, err := parseData([]byte("extractor:\n  url: https://example.com\n"))
	require.NoError(t, err)

	cfg, err := fromFile(file)
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Address)
	require.Empty(t, cfg.Authorizers)
	require.Zero(t, cfg.Pipeline.ExtractTimeout)
	require.Zero(t, cfg.Pipeline.SummarizeTimeout)
	require.False(t, cfg.Pipeline.Table.KeepUnlabeled)
}

func TestParseUnknownField(t *testing.T) {
	_, err := parseData([]byte("extractors:\n  - type: azure\n"))
	require.Error(t, err)
}

func TestParseInvalidType(t *testing.T) {
	file, err := parseData([]byte("completer:\n  type: anthropic\n"))
	require.NoError(t, err)

	_, err = fromFile(file)
	require.ErrorContains(t, err, "invalid completer type")

	file, err = parseData([]byte("authorizers:\n  - type: basic\n"))
	require.NoError(t, err)

	_, err = fromFile(file)
	require.ErrorContains(t, err, "invalid authorizer type")
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("ADDRESS", ":7070")
	t.Setenv("TOKEN", "s3cret")
	t.Setenv("AZURE_FORMRECOGNIZER_ENDPOINT", "https://example.cognitiveservices.azure.com")
	t.Setenv("AZURE_FORMRECOGNIZER_KEY", "azure-secret")
	t.Setenv("GROQ_API_KEY", "groq-secret")

	cfg, err := FromEnvironment()
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.Address)
	require.Len(t, cfg.Authorizers, 1)
	require.NotNil(t, cfg.Extractor)
	require.NotNil(t, cfg.Summarizer)
}

func TestFromEnvironmentEmpty(t *testing.T) {
	for _, key := range []string{"TOKEN", "AZURE_FORMRECOGNIZER_ENDPOINT", "AZURE_FORMRECOGNIZER_KEY", "GROQ_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnvironment()
	require.NoError(t, err)

	require.Empty(t, cfg.Authorizers)
	require.NotNil(t, cfg.Extractor)
	require.NotNil(t, cfg.Completer)
}

func TestParseOpenAIRequiresModel(t *testing.T) {
	file, err := parseData([]byte("completer:\n  type: openai\n  token: sk-test\n"))
	require.NoError(t, err)

	_, err = fromFile(file)
	require.ErrorContains(t, err, "requires a model")

	file, err = parseData([]byte("completer:\n  type: openai\n  token: sk-test\n  model: gpt-4o-mini\n"))
	require.NoError(t, err)

	cfg, err := fromFile(file)
	require.NoError(t, err)
	require.NotNil(t, cfg.Completer)
}
