package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/otterbank/bank/internal/iban"
	"github.com/otterbank/bank/internal/models"
	"github.com/otterbank/bank/internal/repository"
	"github.com/stretchr/testify/require"
)

const (
	testCountryCode = "DE"
	testBankCode    = "50010517"
)

// testBank wires the full admission pipeline over in-memory stores.
type testBank struct {
	ledger    repository.LedgerStore
	directory repository.AccountDirectory
	ibans     *iban.Service
	state     *StateService
	admission *AdmissionService
	accounts  *AccountService
}

func newTestBank(t *testing.T) *testBank {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledger := repository.NewMemoryLedgerStore()
	directory := repository.NewMemoryAccountDirectory()
	ibans := iban.NewService(testCountryCode, testBankCode)
	state := NewStateService(ledger)
	chain := NewChain(NewPolicyEnv(directory, ibans, state))

	return &testBank{
		ledger:    ledger,
		directory: directory,
		ibans:     ibans,
		state:     state,
		admission: NewAdmissionService(ledger, chain, logger),
		accounts:  NewAccountService(directory, ibans, logger),
	}
}

func (b *testBank) createChecking(t *testing.T) models.IBAN {
	t.Helper()
	account, err := b.accounts.CreateChecking(context.Background())
	require.NoError(t, err)
	return account.IBAN
}

func (b *testBank) createSavings(t *testing.T, reference models.IBAN) models.IBAN {
	t.Helper()
	account, err := b.accounts.CreateSavings(context.Background(), reference)
	require.NoError(t, err)
	return account.IBAN
}

func (b *testBank) createPersonalLoan(t *testing.T) models.IBAN {
	t.Helper()
	account, err := b.accounts.CreatePersonalLoan(context.Background())
	require.NoError(t, err)
	return account.IBAN
}

func (b *testBank) deposit(t *testing.T, to models.IBAN, units int64) {
	t.Helper()
	_, err := b.admission.Submit(context.Background(), models.NewDeposit(to, models.NewMoney(units)))
	require.NoError(t, err)
}

func (b *testBank) balance(t *testing.T, iban models.IBAN) models.Money {
	t.Helper()
	balance, err := b.state.Balance(context.Background(), iban)
	require.NoError(t, err)
	return balance
}

// externalIBAN is a well-formed identifier of some other bank.
const externalIBAN = models.IBAN("DE75123456780000012345")
