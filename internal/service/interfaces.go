package service

import (
	"context"

	"github.com/otterbank/bank/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Submitter admits transfer commands into the ledger.
type Submitter interface {
	Submit(ctx context.Context, cmd models.TransferCommand) (*models.Transaction, error)
}

// StateReader exposes derived account state for reporting.
type StateReader interface {
	Balance(ctx context.Context, iban models.IBAN) (models.Money, error)
	History(ctx context.Context, iban models.IBAN) ([]*models.Transaction, error)
}

// AccountManager creates and lists accounts.
type AccountManager interface {
	CreateChecking(ctx context.Context) (*models.Account, error)
	CreateSavings(ctx context.Context, reference models.IBAN) (*models.Account, error)
	CreatePersonalLoan(ctx context.Context) (*models.Account, error)
	List(ctx context.Context, types []models.AccountType) ([]*models.Account, error)
}

// Ensure concrete types implement interfaces
var (
	_ Submitter      = (*AdmissionService)(nil)
	_ StateReader    = (*StateService)(nil)
	_ AccountManager = (*AccountService)(nil)
)
