// Package handlers implements the HTTP surface of the bank.
package handlers

import (
	"log/slog"

	"github.com/otterbank/bank/internal/service"
)

// Handler serves all endpoints with injected service dependencies.
type Handler struct {
	admission     service.Submitter
	accounts      service.AccountManager
	state         service.StateReader
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler. healthChecker may be nil when the store
// backend has nothing external to probe.
func NewHandler(
	admission service.Submitter,
	accounts service.AccountManager,
	state service.StateReader,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		admission:     admission,
		accounts:      accounts,
		state:         state,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
