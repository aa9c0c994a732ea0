package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/adrianliechti/medlens/config"
	"github.com/adrianliechti/medlens/pkg/pipeline"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templates embed.FS

type Handler struct {
	*config.Config

	pipeline *pipeline.Pipeline
	template *template.Template
}

func New(cfg *config.Config) (*Handler, error) {
	t, err := template.ParseFS(templates, "templates/index.html")

	if err != nil {
		return nil, err
	}

	h := &Handler{
		Config: cfg,

		pipeline: cfg.NewPipeline(),
		template: t,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/", h.handleUpload)
}

type page struct {
	OCR   string
	Table template.HTML

	Error string
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, code int, data page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)

	if err := h.template.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "failed to render page", "error", err)
	}
}
