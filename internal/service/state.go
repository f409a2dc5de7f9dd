package service

import (
	"context"
	"fmt"

	"github.com/otterbank/bank/internal/models"
	"github.com/otterbank/bank/internal/repository"
)

// StateService derives account state from the transaction log. There is no
// stored balance anywhere: the signed sum over the account's legs IS the
// balance, so it cannot drift from its derivation.
type StateService struct {
	ledger repository.LedgerStore
}

// NewStateService creates a new StateService.
func NewStateService(ledger repository.LedgerStore) *StateService {
	return &StateService{ledger: ledger}
}

// Balance folds the account's transactions into zero: incoming amounts are
// added, outgoing subtracted. An account with no transactions yields zero.
// Fold order does not matter.
func (s *StateService) Balance(ctx context.Context, iban models.IBAN) (models.Money, error) {
	transactions, err := s.ledger.FindAllForAccount(ctx, iban)
	if err != nil {
		return models.Money{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	leg := models.AccountOf(iban)
	balance := models.ZeroMoney
	for _, tx := range transactions {
		if tx.To == leg {
			balance = balance.Add(tx.Amount)
		}
		if tx.From == leg {
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance, nil
}

// History returns the account's transactions in commit order.
func (s *StateService) History(ctx context.Context, iban models.IBAN) ([]*models.Transaction, error) {
	transactions, err := s.ledger.FindAllForAccount(ctx, iban)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return transactions, nil
}
