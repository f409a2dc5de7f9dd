package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/otterbank/bank/internal/config"
	"github.com/otterbank/bank/internal/db"
	"github.com/otterbank/bank/internal/handlers"
	"github.com/otterbank/bank/internal/iban"
	"github.com/otterbank/bank/internal/repository"
	"github.com/otterbank/bank/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting bank",
		"port", cfg.Server.Port,
		"store_backend", cfg.Store.Backend,
		"bank_country", cfg.Bank.CountryCode,
		"bank_code", cfg.Bank.Code,
	)

	ctx := context.Background()

	var (
		ledger        repository.LedgerStore
		directory     repository.AccountDirectory
		healthChecker service.HealthChecker
	)
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		database, err := db.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer database.Close()

		if err := repository.EnsureSchema(ctx, database); err != nil {
			logger.Error("failed to prepare database schema", "error", err)
			os.Exit(1)
		}

		ledger = repository.NewPostgresLedgerStore(database)
		directory = repository.NewPostgresAccountDirectory(database)
		healthChecker = database
	default:
		ledger = repository.NewMemoryLedgerStore()
		directory = repository.NewMemoryAccountDirectory()
	}

	ibans := iban.NewService(cfg.Bank.CountryCode, cfg.Bank.Code)
	router := handlers.NewRouter(ledger, directory, ibans, healthChecker, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
