package export

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pocketbook/internal/export"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/report"
)

type Handler struct {
	svc    *export.Service
	locale *render.Localizer
}

func NewHandler(svc *export.Service, locale *render.Localizer) *Handler {
	return &Handler{svc: svc, locale: locale}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.export)
}

type exportRequest struct {
	Type   string        `json:"type"`
	Year   int           `json:"year"`
	Month  int           `json:"month"`
	Format export.Format `json:"format"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	kind, err := report.ParseKind(req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Format == "" {
		req.Format = export.FormatPDF
	}

	_, err = h.svc.Export(r.Context(), report.Request{Kind: kind, Year: req.Year, Month: monthOf(req.Month)}, req.Format)

	var (
		status = http.StatusOK
		msg    string
	)

	switch {
	case errors.Is(err, export.ErrNotImplemented):
		status, msg = http.StatusNotImplemented, h.locale.Text(render.TextComingSoon)
	case err != nil:
		slog.Error("export failed", "error", err)
		status, msg = http.StatusInternalServerError, "internal error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(messageResponse{Message: msg}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func monthOf(m int) time.Month {
	if m < 1 || m > 12 {
		return 0
	}

	return time.Month(m)
}
