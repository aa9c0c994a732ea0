package api

import (
	"github.com/adrianliechti/medlens/pkg/extractor"
	"github.com/adrianliechti/medlens/pkg/table"
)

type Analysis struct {
	ID string `json:"id"`

	OCR *extractor.Document `json:"ocr"`

	Summary string `json:"summary"`

	Rows []table.Row `json:"rows"`
	HTML string      `json:"html"`
}

type Rendering struct {
	Rows []table.Row `json:"rows"`
	HTML string      `json:"html"`
}

type ErrorResponse struct {
	Error Error `json:"error"`
}

type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
