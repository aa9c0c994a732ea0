package web

import (
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/medlens/pkg/pipeline"
	"github.com/adrianliechti/medlens/pkg/provider"
)

const maxMemory = 32 << 20

const (
	messageInvalidUpload = "The uploaded file could not be read."
	messageUpstream      = "The document could not be analyzed right now. Please try again later."
	messageTimeout       = "Analyzing the document took too long. Please try again later."
)

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, page{})
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, err := readImage(r)

	if err != nil {
		h.render(w, r, http.StatusBadRequest, page{Error: messageInvalidUpload})
		return
	}

	if file == nil {
		h.render(w, r, http.StatusOK, page{})
		return
	}

	result, err := h.pipeline.Run(r.Context(), *file)

	if err != nil {
		slog.ErrorContext(r.Context(), "analysis failed", "file", file.Name, "error", err)

		if errors.Is(err, pipeline.ErrTimeout) {
			h.render(w, r, http.StatusGatewayTimeout, page{Error: messageTimeout})
			return
		}

		h.render(w, r, http.StatusBadGateway, page{Error: messageUpstream})
		return
	}

	slog.InfoContext(r.Context(), "document analyzed", "id", result.ID, "pages", len(result.Document.Pages), "rows", len(result.Rows))

	h.render(w, r, http.StatusOK, page{
		OCR: result.OCR,

		// cells are escaped by the table renderer
		Table: template.HTML(result.HTML),
	})
}

// readImage returns the "image" upload, or nil when the form carries none.
func readImage(r *http.Request) (*provider.File, error) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		return nil, err
	}

	file, header, err := r.FormFile("image")

	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, err
	}

	defer file.Close()

	data, err := io.ReadAll(file)

	if err != nil {
		return nil, err
	}

	return &provider.File{
		Name: header.Filename,

		Content:     data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
