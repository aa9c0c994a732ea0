package api

import (
	"log/slog"
	"net/http"

	"github.com/adrianliechti/medlens/pkg/table"
)

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	file, err := readFile(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.pipeline.Run(r.Context(), *file)

	if err != nil {
		slog.ErrorContext(r.Context(), "analysis failed", "file", file.Name, "error", err)

		writePipelineError(w, err)
		return
	}

	slog.InfoContext(r.Context(), "document analyzed", "id", result.ID, "pages", len(result.Document.Pages), "rows", len(result.Rows))

	rows := result.Rows

	if rows == nil {
		rows = []table.Row{}
	}

	writeJson(w, Analysis{
		ID: result.ID,

		OCR: result.Document,

		Summary: result.Summary,

		Rows: rows,
		HTML: result.HTML,
	})
}
