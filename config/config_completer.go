package config

import (
	"errors"
	"strings"
	"time"

	"github.com/adrianliechti/medlens/pkg/limiter"
	"github.com/adrianliechti/medlens/pkg/otel"
	"github.com/adrianliechti/medlens/pkg/provider"
	"github.com/adrianliechti/medlens/pkg/provider/openai"
	"github.com/adrianliechti/medlens/pkg/summarizer/adapter"
)

type completerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	Proxy *proxyConfig `yaml:"proxy"`

	Limit   *int           `yaml:"limit"`
	Timeout *time.Duration `yaml:"timeout"`
}

type summarizerConfig struct {
	MaxTokens   *int     `yaml:"max_tokens"`
	Temperature *float32 `yaml:"temperature"`
}

func (c *Config) registerCompleter(f *configFile) error {
	cfg := f.Completer

	if cfg.Type == "" {
		cfg.Type = "groq"
	}

	p, model, err := createCompleter(cfg)

	if err != nil {
		return err
	}

	p = limiter.NewCompleter(createLimiter(cfg.Limit), p)
	p = otel.NewCompleter(strings.ToLower(cfg.Type), model, p)

	c.Completer = p
	c.Pipeline.SummarizeTimeout = parseTimeout(cfg.Timeout)

	return nil
}

func (c *Config) registerSummarizer(f *configFile) error {
	if c.Completer == nil {
		return errors.New("summarizer requires a completer")
	}

	var options []adapter.Option

	if f.Summarizer.MaxTokens != nil {
		options = append(options, adapter.WithMaxTokens(*f.Summarizer.MaxTokens))
	}

	if f.Summarizer.Temperature != nil {
		options = append(options, adapter.WithTemperature(*f.Summarizer.Temperature))
	}

	c.Summarizer = otel.NewSummarizer("adapter", adapter.FromCompleter(c.Completer, options...))

	return nil
}

func createCompleter(cfg completerConfig) (provider.Completer, string, error) {
	switch strings.ToLower(cfg.Type) {
	case "groq":
		return openaiCompleter(cfg, openai.DefaultURL)

	case "openai":
		if cfg.Model == "" {
			return nil, "", errors.New("openai completer requires a model")
		}

		return openaiCompleter(cfg, "https://api.openai.com/v1/")

	default:
		return nil, "", errors.New("invalid completer type: " + cfg.Type)
	}
}

func openaiCompleter(cfg completerConfig, url string) (provider.Completer, string, error) {
	var options []openai.Option

	if cfg.URL != "" {
		url = cfg.URL
	}

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, "", err
	}

	if client != nil {
		options = append(options, openai.WithClient(client))
	}

	c, err := openai.NewCompleter(url, cfg.Model, options...)

	if err != nil {
		return nil, "", err
	}

	return c, c.Model(), nil
}
