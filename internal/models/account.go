package models

import (
	"time"
)

// AccountType classifies an account and drives the withdrawal rules.
type AccountType string

const (
	AccountTypeChecking     AccountType = "checking"
	AccountTypeSavings      AccountType = "savings"
	AccountTypePersonalLoan AccountType = "personal loan"
)

// AccountTypes lists all known account types.
func AccountTypes() []AccountType {
	return []AccountType{AccountTypeChecking, AccountTypeSavings, AccountTypePersonalLoan}
}

// ReferenceAccountProperty is the property key holding the one checking
// account a savings account may withdraw into.
const ReferenceAccountProperty = "referenceAccount"

// Account is a customer account. The core only reads accounts; it never
// mutates them. Balances are not stored here, they are derived from the
// transaction log.
type Account struct {
	CreatedAt  time.Time         `db:"created_at"`
	Properties map[string]string `db:"properties"`
	IBAN       IBAN              `db:"iban"`
	Type       AccountType       `db:"type"`
}

// NewCheckingAccount creates a checking account.
func NewCheckingAccount(iban IBAN) *Account {
	return &Account{IBAN: iban, Type: AccountTypeChecking, CreatedAt: time.Now().UTC()}
}

// NewSavingsAccount creates a savings account tied to its reference checking
// account. The reference is set at creation and immutable thereafter.
func NewSavingsAccount(iban, reference IBAN) *Account {
	return &Account{
		IBAN:       iban,
		Type:       AccountTypeSavings,
		Properties: map[string]string{ReferenceAccountProperty: string(reference)},
		CreatedAt:  time.Now().UTC(),
	}
}

// NewPersonalLoanAccount creates a personal loan account.
func NewPersonalLoanAccount(iban IBAN) *Account {
	return &Account{IBAN: iban, Type: AccountTypePersonalLoan, CreatedAt: time.Now().UTC()}
}

// ReferenceCheckingAccount returns the configured reference checking account,
// if the account carries one.
func (a *Account) ReferenceCheckingAccount() (IBAN, bool) {
	ref, ok := a.Properties[ReferenceAccountProperty]
	if !ok || ref == "" {
		return "", false
	}
	return IBAN(ref), true
}
