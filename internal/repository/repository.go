// Package repository provides the ledger and account stores behind the
// admission pipeline. Both have an in-memory implementation, the default, and
// a postgres one; the admission algorithm is identical on either.
package repository

import (
	"context"

	"github.com/otterbank/bank/internal/models"
)

// LedgerStore is the append-only transaction log. Entries are never mutated
// or deleted in normal operation; Clear exists only for test isolation.
type LedgerStore interface {
	Append(ctx context.Context, tx *models.Transaction) error
	FindAllForAccount(ctx context.Context, iban models.IBAN) ([]*models.Transaction, error)
	Clear(ctx context.Context) error
}

// AccountDirectory owns the accounts of this bank. The admission core only
// reads from it; Save is used by account creation and tests.
type AccountDirectory interface {
	FindByIBAN(ctx context.Context, iban models.IBAN) (*models.Account, error)
	Exists(ctx context.Context, iban models.IBAN) (bool, error)
	FindAll(ctx context.Context) ([]*models.Account, error)
	Save(ctx context.Context, account *models.Account) error
	Clear(ctx context.Context) error
}

// Ensure both backends satisfy the store contracts
var (
	_ LedgerStore      = (*memoryLedgerStore)(nil)
	_ LedgerStore      = (*postgresLedgerStore)(nil)
	_ AccountDirectory = (*memoryAccountDirectory)(nil)
	_ AccountDirectory = (*postgresAccountDirectory)(nil)
)
