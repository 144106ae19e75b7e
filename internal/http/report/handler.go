package report

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/report"
)

type Handler struct {
	svc    *report.Service
	locale *render.Localizer
}

func NewHandler(svc *report.Service, locale *render.Localizer) *Handler {
	return &Handler{svc: svc, locale: locale}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.build)
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) build(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := h.svc.Build(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidKind):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, report.ErrNoTransactions):
			writeJSON(w, http.StatusNotFound, messageResponse{Message: h.locale.Text(render.TextEmptyLedger)})
		case errors.Is(err, report.ErrNoData):
			writeJSON(w, http.StatusNotFound, messageResponse{Message: h.locale.Text(render.TextNoReportData)})
		default:
			slog.Error("report request failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse{Message: h.locale.Text(render.TextReportFailed)})
		}

		return
	}

	writeJSON(w, http.StatusOK, rep)
}

// ParseRequest reads type, month (YYYY-MM) and year query parameters.
func ParseRequest(q url.Values) (report.Request, error) {
	kind, err := report.ParseKind(q.Get("type"))
	if err != nil {
		return report.Request{}, err
	}

	req := report.Request{Kind: kind}

	if s := q.Get("month"); s != "" {
		year, month, err := calendar.ParseMonth(s)
		if err != nil {
			return req, err
		}

		req.Year, req.Month = year, month
	}

	if s := q.Get("year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return req, errors.New("invalid year")
		}

		req.Year = year
	}

	if kind == report.KindYearly && req.Year == 0 && q.Get("year") == "" {
		req.Year = time.Now().Year()
	}

	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
