package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pocketbook/internal/calendar"
	"github.com/MrJamesThe3rd/pocketbook/internal/importer"
	"github.com/MrJamesThe3rd/pocketbook/internal/money"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
)

const maxUploadSize = 10 << 20

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
	locale    *render.Localizer
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service, locale *render.Localizer) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
		locale:    locale,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/preview", h.preview)
	r.Post("/confirm", h.confirmImport)
}

type paramsDTO struct {
	Type     transaction.Type `json:"type"`
	Amount   float64          `json:"amount"`
	Note     string           `json:"note,omitempty"`
	Category string           `json:"category"`
	Date     calendar.Date    `json:"date"`
}

type previewResponse struct {
	Rows      []paramsDTO `json:"rows"`
	Suggested int         `json:"suggested"`
}

type importResponse struct {
	Imported  int    `json:"imported"`
	Suggested int    `json:"suggested"`
	Message   string `json:"message"`
}

type confirmRequest struct {
	Rows []paramsDTO `json:"rows"`
}

// importCSV parses the uploaded file and stores every row.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	file, format, ok := h.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	res, err := h.importSvc.Import(r.Context(), format, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, importResponse{
		Imported:  res.Imported,
		Suggested: res.Suggested,
		Message:   h.locale.Text(render.TextImported, res.Imported),
	})
}

// preview parses the uploaded file without storing it so rows can be
// reviewed and sent back to confirm.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	file, format, ok := h.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	params, suggested, err := h.importSvc.Parse(r.Context(), format, file)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := previewResponse{Rows: make([]paramsDTO, len(params)), Suggested: suggested}
	for i, p := range params {
		resp.Rows[i] = paramsDTO(p)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Rows) == 0 {
		http.Error(w, importer.ErrNothingToImport.Error(), http.StatusBadRequest)
		return
	}

	params := make([]transaction.CreateParams, len(req.Rows))
	for i, p := range req.Rows {
		params[i] = transaction.CreateParams(p)
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, importResponse{
		Imported: len(txs),
		Message:  h.locale.Text(render.TextImported, len(txs)),
	})
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) (multipart.File, importer.Format, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return nil, "", false
	}

	return file, importer.Format(r.FormValue("format")), true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, importer.ErrNothingToImport),
		errors.Is(err, importer.ErrInvalidFile),
		errors.Is(err, importer.ErrUnknownFormat),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, transaction.ErrInvalidType),
		errors.Is(err, transaction.ErrMissingField):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		slog.Error("import failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
