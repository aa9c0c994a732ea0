package config

import (
	"errors"
	"strings"
	"time"

	"github.com/adrianliechti/medlens/pkg/extractor"
	"github.com/adrianliechti/medlens/pkg/extractor/azure"
	"github.com/adrianliechti/medlens/pkg/limiter"
	"github.com/adrianliechti/medlens/pkg/otel"
)

type extractorConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`
	Model string `yaml:"model"`

	Proxy *proxyConfig `yaml:"proxy"`

	Limit   *int           `yaml:"limit"`
	Timeout *time.Duration `yaml:"timeout"`
}

func (c *Config) registerExtractor(f *configFile) error {
	cfg := f.Extractor

	if cfg.Type == "" {
		cfg.Type = "azure"
	}

	e, model, err := createExtractor(cfg)

	if err != nil {
		return err
	}

	e = limiter.NewExtractor(createLimiter(cfg.Limit), e)
	e = otel.NewExtractor(strings.ToLower(cfg.Type), model, e)

	c.Extractor = e
	c.Pipeline.ExtractTimeout = parseTimeout(cfg.Timeout)

	return nil
}

func createExtractor(cfg extractorConfig) (extractor.Provider, string, error) {
	switch strings.ToLower(cfg.Type) {
	case "azure":
		return azureExtractor(cfg)

	default:
		return nil, "", errors.New("invalid extractor type: " + cfg.Type)
	}
}

func azureExtractor(cfg extractorConfig) (extractor.Provider, string, error) {
	var options []azure.Option

	if cfg.Token != "" {
		options = append(options, azure.WithToken(cfg.Token))
	}

	if cfg.Model != "" {
		options = append(options, azure.WithModel(cfg.Model))
	}

	client, err := cfg.Proxy.proxyClient()

	if err != nil {
		return nil, "", err
	}

	if client != nil {
		options = append(options, azure.WithClient(client))
	}

	e, err := azure.New(cfg.URL, options...)

	if err != nil {
		return nil, "", err
	}

	return e, e.Model(), nil
}
