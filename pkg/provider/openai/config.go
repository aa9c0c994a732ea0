package openai

import (
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3/option"
)

// DefaultURL points at Groq's OpenAI-compatible endpoint.
const DefaultURL = "https://api.groq.com/openai/v1/"

type Config struct {
	url string

	token string
	model string

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func (c *Config) Options() []option.RequestOption {
	url := c.url

	if url == "" {
		url = DefaultURL
	}

	client := c.client

	if client == nil {
		client = http.DefaultClient
	}

	options := []option.RequestOption{
		option.WithBaseURL(strings.TrimRight(url, "/") + "/"),
		option.WithHTTPClient(client),

		// failures surface to the caller as-is
		option.WithMaxRetries(0),
	}

	if c.token != "" {
		options = append(options, option.WithAPIKey(c.token))
	}

	return options
}
