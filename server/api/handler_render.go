package api

import (
	"net/http"

	"github.com/adrianliechti/medlens/pkg/table"
)

func (h *Handler) handleRender(w http.ResponseWriter, r *http.Request) {
	text, err := valueText(r)

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rows := table.Parse(text, &h.Pipeline.Table)

	if rows == nil {
		rows = []table.Row{}
	}

	writeJson(w, Rendering{
		Rows: rows,
		HTML: table.Render(rows),
	})
}
