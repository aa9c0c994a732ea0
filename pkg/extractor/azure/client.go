package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/adrianliechti/medlens/pkg/extractor"
)

const (
	DefaultModel = "prebuilt-read"

	apiVersion = "2023-07-31"
)

var _ extractor.Provider = &Client{}

type Client struct {
	client *http.Client

	url   string
	token string
	model string

	interval time.Duration
}

// New creates a client for the Document Intelligence resource at url. An
// empty url is accepted; requests then fail at extraction time.
func New(url string, options ...Option) (*Client, error) {
	c := &Client{
		client: http.DefaultClient,

		url:   url,
		model: DefaultModel,

		interval: time.Second,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Model() string {
	return c.model
}

func (c *Client) Extract(ctx context.Context, file extractor.File, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	operationURL, err := c.submit(ctx, file)

	if err != nil {
		return nil, err
	}

	for {
		operation, err := c.poll(ctx, operationURL)

		if err != nil {
			return nil, err
		}

		switch operation.Status {
		case OperationStatusSucceeded:
			return convertResult(operation.Result), nil

		case OperationStatusRunning, OperationStatusNotStarted:
			if err := wait(ctx, c.interval); err != nil {
				return nil, err
			}

		default:
			if operation.Error != nil && operation.Error.Message != "" {
				return nil, errors.New("operation " + string(operation.Status) + ": " + operation.Error.Message)
			}

			return nil, errors.New("operation " + string(operation.Status))
		}
	}
}

func (c *Client) submit(ctx context.Context, file extractor.File) (string, error) {
	u, err := url.Parse(strings.TrimRight(c.url, "/") + "/formrecognizer/documentModels/" + c.model + ":analyze")

	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("api-version", apiVersion)

	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(file.Content))

	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return "", err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return "", convertError(resp)
	}

	operationURL := resp.Header.Get("Operation-Location")

	if operationURL == "" {
		return "", errors.New("missing operation location")
	}

	return operationURL, nil
}

func (c *Client) poll(ctx context.Context, operationURL string) (*AnalyzeOperation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Ocp-Apim-Subscription-Key", c.token)

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var operation AnalyzeOperation

	if err := json.NewDecoder(resp.Body).Decode(&operation); err != nil {
		return nil, err
	}

	return &operation, nil
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()

	case <-t.C:
		return nil
	}
}

func convertResult(r AnalyzeResult) *extractor.Document {
	result := &extractor.Document{
		Pages: []extractor.Page{},
	}

	for _, page := range r.Pages {
		p := extractor.Page{
			Page:  page.PageNumber,
			Lines: []extractor.Line{},
		}

		for _, line := range page.Lines {
			p.Lines = append(p.Lines, extractor.Line{
				Text: line.Content,
			})
		}

		result.Pages = append(result.Pages, p)
	}

	return result
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(strings.TrimSpace(string(data)))
}
