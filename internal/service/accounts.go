package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/otterbank/bank/internal/iban"
	"github.com/otterbank/bank/internal/models"
	"github.com/otterbank/bank/internal/repository"
)

// AccountService creates and lists accounts of this bank.
type AccountService struct {
	directory repository.AccountDirectory
	ibans     *iban.Service
	logger    *slog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(directory repository.AccountDirectory, ibans *iban.Service, logger *slog.Logger) *AccountService {
	return &AccountService{
		directory: directory,
		ibans:     ibans,
		logger:    logger,
	}
}

// CreateChecking opens a new checking account.
func (s *AccountService) CreateChecking(ctx context.Context) (*models.Account, error) {
	return s.register(ctx, models.NewCheckingAccount(s.ibans.Generate()))
}

// CreateSavings opens a new savings account tied to the given reference
// checking account. The reference must be an existing checking account of
// this bank.
func (s *AccountService) CreateSavings(ctx context.Context, reference models.IBAN) (*models.Account, error) {
	referenced, err := s.directory.FindByIBAN(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("reference account %s: %w", reference, err)
	}
	if referenced.Type != models.AccountTypeChecking {
		return nil, fmt.Errorf("reference account %s is not a checking account", reference)
	}
	return s.register(ctx, models.NewSavingsAccount(s.ibans.Generate(), reference))
}

// CreatePersonalLoan opens a new personal loan account.
func (s *AccountService) CreatePersonalLoan(ctx context.Context) (*models.Account, error) {
	return s.register(ctx, models.NewPersonalLoanAccount(s.ibans.Generate()))
}

// List returns all accounts, restricted to the given types when any are named.
func (s *AccountService) List(ctx context.Context, types []models.AccountType) ([]*models.Account, error) {
	accounts, err := s.directory.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if len(types) == 0 {
		return accounts, nil
	}

	out := make([]*models.Account, 0, len(accounts))
	for _, account := range accounts {
		if slices.Contains(types, account.Type) {
			out = append(out, account)
		}
	}
	return out, nil
}

func (s *AccountService) register(ctx context.Context, account *models.Account) (*models.Account, error) {
	if err := s.directory.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.logger.Info("account created",
		"iban", account.IBAN,
		"type", account.Type,
	)
	return account, nil
}
