package debt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/money"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
)

type Handler struct {
	svc    *debt.Service
	locale *render.Localizer
}

func NewHandler(svc *debt.Service, locale *render.Localizer) *Handler {
	return &Handler{svc: svc, locale: locale}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/toggle", h.toggle)
}

type createDebtRequest struct {
	Name   string        `json:"name"`
	Amount float64       `json:"amount"`
	Type   debt.Type     `json:"type"`
	Note   string        `json:"note"`
	Date   calendar.Date `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.Create(r.Context(), debt.CreateParams{
		Name:   req.Name,
		Amount: req.Amount,
		Type:   req.Type,
		Note:   req.Note,
		Date:   req.Date,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toResponse(h.locale, d))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := debt.ListFilter{Search: q.Get("q")}

	if s := q.Get("status"); s != "" {
		status := debt.Status(s)
		if !status.Valid() {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}

		filter.Status = new(status)
	}

	if s := q.Get("type"); s != "" {
		t := debt.Type(s)
		if !t.Valid() {
			http.Error(w, "invalid type", http.StatusBadRequest)
			return
		}

		filter.Type = new(t)
	}

	debts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toResponseList(h.locale, debts))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toResponse(h.locale, d))
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.ToggleStatus(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toResponse(h.locale, d))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, debt.ErrNotFound):
		http.Error(w, "debt not found", http.StatusNotFound)
	case errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, debt.ErrInvalidType),
		errors.Is(err, debt.ErrMissingField):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("debt request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
