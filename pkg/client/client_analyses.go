package client

import (
	"context"
)

type AnalysisService struct {
	Options []RequestOption
}

func NewAnalysisService(opts ...RequestOption) AnalysisService {
	return AnalysisService{
		Options: opts,
	}
}

type Analysis struct {
	ID string `json:"id"`

	OCR Document `json:"ocr"`

	Summary string `json:"summary"`

	Rows []Row  `json:"rows"`
	HTML string `json:"html"`
}

type Row struct {
	Key   string `json:"key"`
	Value string `json:"value"`

	Unlabeled bool `json:"unlabeled,omitempty"`
}

func (r *AnalysisService) New(ctx context.Context, input File, opts ...RequestOption) (*Analysis, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var result Analysis

	if err := uploadFile(ctx, c, "/v1/analyze", input, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
