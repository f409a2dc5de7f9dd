package handlers

import (
	"log/slog"
	"net/http"

	"github.com/otterbank/bank/internal/iban"
	"github.com/otterbank/bank/internal/repository"
	"github.com/otterbank/bank/internal/service"
)

// NewRouter wires the services over the given stores and returns the HTTP
// router with all routes registered.
func NewRouter(
	ledger repository.LedgerStore,
	directory repository.AccountDirectory,
	ibans *iban.Service,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) http.Handler {
	stateService := service.NewStateService(ledger)
	chain := service.NewChain(service.NewPolicyEnv(directory, ibans, stateService))
	admissionService := service.NewAdmissionService(ledger, chain, logger)
	accountService := service.NewAccountService(directory, ibans, logger)

	handler := NewHandler(admissionService, accountService, stateService, healthChecker, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.GetHealth)

	mux.HandleFunc("POST /transfers/deposit", handler.Deposit)
	mux.HandleFunc("POST /transfers/withdraw", handler.Withdraw)
	mux.HandleFunc("POST /transfers/transfer", handler.Transfer)

	mux.HandleFunc("POST /accounts/create/checking", handler.CreateChecking)
	mux.HandleFunc("POST /accounts/create/personalloan", handler.CreatePersonalLoan)
	mux.HandleFunc("POST /accounts/create/{reference}/savings", handler.CreateSavings)
	mux.HandleFunc("GET /accounts", handler.ListAccounts)
	mux.HandleFunc("GET /accounts/{iban}", handler.GetBalance)
	mux.HandleFunc("GET /accounts/{iban}/history", handler.GetHistory)

	return mux
}
