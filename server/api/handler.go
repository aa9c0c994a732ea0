package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adrianliechti/medlens/config"
	"github.com/adrianliechti/medlens/pkg/pipeline"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config

	pipeline *pipeline.Pipeline
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,

		pipeline: cfg.NewPipeline(),
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/analyze", h.handleAnalyze)
	r.Post("/extract", h.handleExtract)
	r.Post("/render", h.handleRender)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	errorType := "invalid_request"

	if code >= 500 {
		errorType = "server_error"
	}

	resp := ErrorResponse{
		Error: Error{
			Type:    errorType,
			Message: err.Error(),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(resp)
}

// writePipelineError hides upstream details from the client.
func writePipelineError(w http.ResponseWriter, err error) {
	if errors.Is(err, pipeline.ErrTimeout) {
		writeError(w, http.StatusGatewayTimeout, errors.New("upstream service timed out"))
		return
	}

	writeError(w, http.StatusBadGateway, errors.New("upstream service failed"))
}
