package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/pocketbook/internal/config"
	"github.com/MrJamesThe3rd/pocketbook/internal/dashboard"
	"github.com/MrJamesThe3rd/pocketbook/internal/database"
	"github.com/MrJamesThe3rd/pocketbook/internal/debt"
	debtStore "github.com/MrJamesThe3rd/pocketbook/internal/debt/store"
	"github.com/MrJamesThe3rd/pocketbook/internal/export"
	pocketHttp "github.com/MrJamesThe3rd/pocketbook/internal/http"
	debtHandler "github.com/MrJamesThe3rd/pocketbook/internal/http/debt"
	exportHandler "github.com/MrJamesThe3rd/pocketbook/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/pocketbook/internal/http/importcsv"
	matchingHandler "github.com/MrJamesThe3rd/pocketbook/internal/http/matching"
	reportHandler "github.com/MrJamesThe3rd/pocketbook/internal/http/report"
	summaryHandler "github.com/MrJamesThe3rd/pocketbook/internal/http/summary"
	txHandler "github.com/MrJamesThe3rd/pocketbook/internal/http/transaction"
	"github.com/MrJamesThe3rd/pocketbook/internal/importer"
	"github.com/MrJamesThe3rd/pocketbook/internal/ledger"
	"github.com/MrJamesThe3rd/pocketbook/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/pocketbook/internal/matching/store"
	"github.com/MrJamesThe3rd/pocketbook/internal/render"
	"github.com/MrJamesThe3rd/pocketbook/internal/report"
	"github.com/MrJamesThe3rd/pocketbook/internal/transaction"
	txStore "github.com/MrJamesThe3rd/pocketbook/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	kv, closeStore, err := database.Open(cfg)
	if err != nil {
		slog.Error("failed to open storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	var (
		notifier = ledger.NewNotifier()
		locale   = render.NewLocalizer(cfg.App.Locale, cfg.App.Currency)

		matchingService    = matching.NewService(matchingStore.New(kv))
		transactionService = transaction.NewService(txStore.New(kv), notifier).WithLearner(matchingService)
		debtService        = debt.NewService(debtStore.New(kv), notifier)
		reportService      = report.NewService(transactionService, locale)
		exportService      = export.NewService()
		importService      = importer.NewService(transactionService, matchingService)
		overview           = dashboard.New(transactionService, debtService, locale, notifier)
	)
	defer overview.Close()

	router := pocketHttp.New(
		txHandler.NewHandler(transactionService, locale),
		debtHandler.NewHandler(debtService, locale),
		summaryHandler.NewHandler(overview),
		reportHandler.NewHandler(reportService, locale),
		exportHandler.NewHandler(exportService, locale),
		importHandler.NewHandler(importService, transactionService, locale),
		matchingHandler.NewHandler(matchingService),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "name", cfg.App.Name, "addr", srv.Addr, "storage", cfg.Storage.Backend, "locale", locale.Tag())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
