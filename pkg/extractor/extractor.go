package extractor

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/adrianliechti/medlens/pkg/provider"
)

type Provider interface {
	Extract(ctx context.Context, input File, options *ExtractOptions) (*Document, error)
}

type File = provider.File

type ExtractOptions struct {
}

// Document is the text recognized in an image, page by page and line by
// line in the order the service reported them.
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

// JSON returns the document indented by two spaces.
func (d *Document) JSON() (string, error) {
	doc := Document{
		Pages: []Page{},
	}

	if d != nil {
		for _, p := range d.Pages {
			page := Page{
				Page:  p.Page,
				Lines: []Line{},
			}

			page.Lines = append(page.Lines, p.Lines...)
			doc.Pages = append(doc.Pages, page)
		}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return "", err
	}

	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func Parse(data []byte) (*Document, error) {
	var doc Document

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}
