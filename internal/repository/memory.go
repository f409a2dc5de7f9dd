package repository

import (
	"context"
	"sync"

	"github.com/otterbank/bank/internal/models"
)

// memoryLedgerStore implements LedgerStore on an in-process slice.
type memoryLedgerStore struct {
	mu           sync.RWMutex
	transactions []*models.Transaction
}

// NewMemoryLedgerStore creates an empty in-memory LedgerStore.
func NewMemoryLedgerStore() LedgerStore {
	return &memoryLedgerStore{}
}

// Append adds a committed transaction to the log.
func (s *memoryLedgerStore) Append(_ context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *tx
	s.transactions = append(s.transactions, &cp)
	return nil
}

// FindAllForAccount returns every transaction touching the account, in commit
// order. Safe to call concurrently with Append.
func (s *memoryLedgerStore) FindAllForAccount(_ context.Context, iban models.IBAN) ([]*models.Transaction, error) {
	leg := models.AccountOf(iban)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Transaction
	for _, tx := range s.transactions {
		if tx.From == leg || tx.To == leg {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Clear resets the log. Test isolation only.
func (s *memoryLedgerStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = nil
	return nil
}

// memoryAccountDirectory implements AccountDirectory on an in-process map.
type memoryAccountDirectory struct {
	mu       sync.RWMutex
	accounts map[models.IBAN]*models.Account
}

// NewMemoryAccountDirectory creates an empty in-memory AccountDirectory.
func NewMemoryAccountDirectory() AccountDirectory {
	return &memoryAccountDirectory{accounts: make(map[models.IBAN]*models.Account)}
}

// FindByIBAN returns the account, or models.ErrAccountNotFound.
func (d *memoryAccountDirectory) FindByIBAN(_ context.Context, iban models.IBAN) (*models.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	account, ok := d.accounts[iban]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}

// Exists reports whether an account with the given IBAN is registered.
func (d *memoryAccountDirectory) Exists(_ context.Context, iban models.IBAN) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.accounts[iban]
	return ok, nil
}

// FindAll returns all registered accounts.
func (d *memoryAccountDirectory) FindAll(_ context.Context) ([]*models.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*models.Account, 0, len(d.accounts))
	for _, account := range d.accounts {
		cp := *account
		out = append(out, &cp)
	}
	return out, nil
}

// Save registers an account under its IBAN.
func (d *memoryAccountDirectory) Save(_ context.Context, account *models.Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	cp := *account
	d.accounts[account.IBAN] = &cp
	return nil
}

// Clear drops all accounts. Test isolation only.
func (d *memoryAccountDirectory) Clear(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts = make(map[models.IBAN]*models.Account)
	return nil
}
