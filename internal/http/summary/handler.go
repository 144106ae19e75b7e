package summary

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pocketbook/internal/dashboard"
)

type Handler struct {
	dash *dashboard.Dashboard
}

func NewHandler(dash *dashboard.Dashboard) *Handler {
	return &Handler{dash: dash}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dash.Overview(r.Context())
	if err != nil {
		slog.Error("building summary", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(overview); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
