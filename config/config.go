package config

import (
	"bytes"
	"os"
	"time"

	"github.com/adrianliechti/medlens/pkg/auth"
	"github.com/adrianliechti/medlens/pkg/extractor"
	"github.com/adrianliechti/medlens/pkg/pipeline"
	"github.com/adrianliechti/medlens/pkg/provider"
	"github.com/adrianliechti/medlens/pkg/summarizer"
	"github.com/adrianliechti/medlens/pkg/table"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Authorizers []auth.Provider

	Extractor  extractor.Provider
	Completer  provider.Completer
	Summarizer summarizer.Provider

	Pipeline pipeline.Options
}

// NewPipeline builds the analysis pipeline from the configured providers.
func (c *Config) NewPipeline() *pipeline.Pipeline {
	return pipeline.New(c.Extractor, c.Summarizer, &c.Pipeline)
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	return fromFile(file)
}

func fromFile(file *configFile) (*Config, error) {
	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerAuthorizers(file); err != nil {
		return nil, err
	}

	if err := c.registerExtractor(file); err != nil {
		return nil, err
	}

	if err := c.registerCompleter(file); err != nil {
		return nil, err
	}

	if err := c.registerSummarizer(file); err != nil {
		return nil, err
	}

	c.Pipeline.Table = table.Options{
		KeepUnlabeled: file.Table.KeepUnlabeled,
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Authorizers []authorizerConfig `yaml:"authorizers"`

	Extractor extractorConfig `yaml:"extractor"`
	Completer completerConfig `yaml:"completer"`

	Summarizer summarizerConfig `yaml:"summarizer"`

	Table tableConfig `yaml:"table"`
}

type tableConfig struct {
	KeepUnlabeled bool `yaml:"keep_unlabeled"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return parseData(data)
}

func parseData(data []byte) (*configFile, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil || *limit <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}

func parseTimeout(val *time.Duration) time.Duration {
	if val == nil || *val < 0 {
		return 0
	}

	return *val
}
