// Command server runs the local HTTP surface of the bookkeeping application.
// It is a single-user, single-process server backed by an embedded store;
// the UI talks to it on localhost.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MohamedRadiWebDev/ACC/internal/api"
	"github.com/MohamedRadiWebDev/ACC/internal/config"
	"github.com/MohamedRadiWebDev/ACC/internal/store"
)

func main() {
	// Setup structured JSON logging.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		slog.Error("failed to initialize store", "error", err, "db_path", cfg.Store.Path)
		os.Exit(1)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	slog.Info("store initialized", "db_path", cfg.Store.Path)

	// Initialize handlers.
	accountsHandler := api.NewAccountsHandler(st)
	transactionsHandler := api.NewTransactionsHandler(st)
	transfersHandler := api.NewTransfersHandler(st)
	matchesHandler := api.NewMatchesHandler(st, cfg.Matching.ToleranceDays, cfg.Matching.Keyword)
	cashCountsHandler := api.NewCashCountsHandler(st)
	snapshotsHandler := api.NewSnapshotsHandler(st)
	ledgersHandler := api.NewLedgersHandler(st)
	dataHandler := api.NewDataHandler(st)

	// Setup router.
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api/1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", accountsHandler.List)
			r.Post("/", accountsHandler.Create)
			r.Get("/{id}", accountsHandler.Get)
			r.Put("/{id}", accountsHandler.Update)
			r.Delete("/{id}", accountsHandler.Delete)
			r.Get("/{id}/balance", accountsHandler.Balance)
			r.Get("/{id}/running-balances", accountsHandler.RunningBalances)
			r.Get("/{id}/variance", accountsHandler.Variance)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", transactionsHandler.List)
			r.Post("/", transactionsHandler.Create)
			r.Get("/{id}", transactionsHandler.Get)
			r.Put("/{id}", transactionsHandler.Update)
			r.Delete("/{id}", transactionsHandler.Delete)
		})

		r.Route("/transfers", func(r chi.Router) {
			r.Get("/", transfersHandler.List)
			r.Post("/", transfersHandler.Create)
			r.Get("/{id}", transfersHandler.Get)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", matchesHandler.List)
			r.Post("/", matchesHandler.Create)
			r.Get("/suggestions", matchesHandler.Suggest)
		})

		r.Route("/cash-counts", func(r chi.Router) {
			r.Get("/", cashCountsHandler.List)
			r.Post("/", cashCountsHandler.Put)
		})

		r.Route("/balance-snapshots", func(r chi.Router) {
			r.Get("/", snapshotsHandler.List)
			r.Post("/", snapshotsHandler.Create)
			r.Put("/{id}", snapshotsHandler.Update)
			r.Delete("/{id}", snapshotsHandler.Delete)
		})

		r.Route("/treasury", func(r chi.Router) {
			r.Get("/", ledgersHandler.ListTreasury)
			r.Post("/", ledgersHandler.UpsertTreasury)
			r.Delete("/{id}", ledgersHandler.DeleteTreasury)
		})
		r.Route("/treasury-counts", func(r chi.Router) {
			r.Get("/", ledgersHandler.ListTreasuryCounts)
			r.Post("/", ledgersHandler.UpsertTreasuryCount)
		})
		r.Route("/bank-transactions", func(r chi.Router) {
			r.Get("/", ledgersHandler.ListBank)
			r.Post("/", ledgersHandler.UpsertBank)
			r.Delete("/{id}", ledgersHandler.DeleteBank)
		})
		r.Route("/advances", func(r chi.Router) {
			r.Get("/", ledgersHandler.ListAdvances)
			r.Post("/", ledgersHandler.UpsertAdvance)
			r.Delete("/{id}", ledgersHandler.DeleteAdvance)
		})
		r.Route("/custody", func(r chi.Router) {
			r.Get("/", ledgersHandler.ListCustody)
			r.Post("/", ledgersHandler.UpsertCustody)
			r.Delete("/{id}", ledgersHandler.DeleteCustody)
		})
		r.Route("/revenue-invoices", func(r chi.Router) {
			r.Get("/", ledgersHandler.ListRevenue)
			r.Post("/", ledgersHandler.UpsertRevenue)
			r.Delete("/{id}", ledgersHandler.DeleteRevenue)
		})

		r.Route("/data", func(r chi.Router) {
			r.Get("/export", dataHandler.Export)
			r.Post("/import", dataHandler.Import)
			r.Post("/reset", dataHandler.Reset)
		})
	})

	// Health check endpoint.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, `{"status":"ok"}`)
	})

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig.String())
		if err := server.Close(); err != nil {
			slog.Error("failed to close server", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
