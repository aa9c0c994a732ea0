package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type RenderingService struct {
	Options []RequestOption
}

func NewRenderingService(opts ...RequestOption) RenderingService {
	return RenderingService{
		Options: opts,
	}
}

type Rendering struct {
	Rows []Row  `json:"rows"`
	HTML string `json:"html"`
}

func (r *RenderingService) New(ctx context.Context, text string, opts ...RequestOption) (*Rendering, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	form := url.Values{}
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+"/v1/render", strings.NewReader(form.Encode()))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var result Rendering

	if err := do(c, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
