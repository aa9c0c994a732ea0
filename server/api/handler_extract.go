package api

import (
	"log/slog"
	"net/http"
)

func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	file, err := readFile(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	document, err := h.pipeline.Extract(r.Context(), *file)

	if err != nil {
		slog.ErrorContext(r.Context(), "extraction failed", "file", file.Name, "error", err)

		writePipelineError(w, err)
		return
	}

	writeJson(w, document)
}
