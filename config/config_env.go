package config

import (
	"github.com/caarlos0/env/v11"
)

type environment struct {
	Address string `env:"ADDRESS" envDefault:":8080"`

	Token string `env:"TOKEN"`

	AzureEndpoint string `env:"AZURE_FORMRECOGNIZER_ENDPOINT"`
	AzureKey      string `env:"AZURE_FORMRECOGNIZER_KEY"`
	AzureModel    string `env:"AZURE_FORMRECOGNIZER_MODEL"`

	GroqKey   string `env:"GROQ_API_KEY"`
	GroqURL   string `env:"GROQ_BASE_URL"`
	GroqModel string `env:"GROQ_MODEL"`
}

// FromEnvironment builds a config from environment variables alone. Missing
// endpoints and keys are not rejected here; calls fail when a request needs
// them.
func FromEnvironment() (*Config, error) {
	var e environment

	if err := env.Parse(&e); err != nil {
		return nil, err
	}

	file := &configFile{
		Address: e.Address,

		Extractor: extractorConfig{
			Type: "azure",

			URL:   e.AzureEndpoint,
			Token: e.AzureKey,
			Model: e.AzureModel,
		},

		Completer: completerConfig{
			Type: "groq",

			URL:   e.GroqURL,
			Token: e.GroqKey,
			Model: e.GroqModel,
		},
	}

	if e.Token != "" {
		file.Authorizers = append(file.Authorizers, authorizerConfig{
			Type:  "static",
			Token: e.Token,
		})
	}

	return fromFile(file)
}
