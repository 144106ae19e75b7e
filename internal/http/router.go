package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/pocketbook/internal/http/debt"
	"github.com/MrJamesThe3rd/pocketbook/internal/http/export"
	"github.com/MrJamesThe3rd/pocketbook/internal/http/importcsv"
	"github.com/MrJamesThe3rd/pocketbook/internal/http/matching"
	"github.com/MrJamesThe3rd/pocketbook/internal/http/report"
	"github.com/MrJamesThe3rd/pocketbook/internal/http/summary"
	"github.com/MrJamesThe3rd/pocketbook/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	debtsV1 *debt.Handler,
	summaryV1 *summary.Handler,
	reportsV1 *report.Handler,
	exportV1 *export.Handler,
	importV1 *importcsv.Handler,
	hintsV1 *matching.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/debts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			debtsV1.Routes(r)
		})

		r.Route("/summary", summaryV1.Routes)

		r.Route("/reports", func(r chi.Router) {
			r.Route("/export", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				exportV1.Routes(r)
			})

			reportsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)
		r.Route("/hints", hintsV1.Routes)
	})

	return router
}
