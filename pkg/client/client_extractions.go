package client

import (
	"context"
)

type ExtractionService struct {
	Options []RequestOption
}

func NewExtractionService(opts ...RequestOption) ExtractionService {
	return ExtractionService{
		Options: opts,
	}
}

type Document struct {
	Pages []Page `json:"pages"`
}

type Page struct {
	Page int `json:"page_number"`

	Lines []Line `json:"lines"`
}

type Line struct {
	Text string `json:"text"`
}

func (r *ExtractionService) New(ctx context.Context, input File, opts ...RequestOption) (*Document, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result Document

	if err := uploadFile(ctx, c, "/v1/extract", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
