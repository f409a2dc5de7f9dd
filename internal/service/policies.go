package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/otterbank/bank/internal/models"
)

// Rejection causes. AccountExistsPolicy formats its cause with the missing IBAN.
const (
	CauseNegativeAmount         = "Transactions with negative amount value are not supported"
	CauseNoAccountOfOurBank     = "Transactions should involve at least one account of our bank"
	CauseSameAccount            = "Transfer to the same account is not allowed"
	CauseOverdraft              = "Insufficient funds, overdraft is not allowed"
	CauseSavingsWithdrawal      = "Withdrawal from savings account allowed only from reference checking account"
	CausePersonalLoanWithdrawal = "Withdrawal from personal loan account is not allowed"
)

// PolicyResult is the outcome of applying a single policy to a candidate
// transaction. Cause is set only when the policy is not satisfied.
type PolicyResult struct {
	Cause     string
	Satisfied bool
}

func satisfied() PolicyResult {
	return PolicyResult{Satisfied: true}
}

func violated(cause string) PolicyResult {
	return PolicyResult{Cause: cause}
}

// PolicyEnv gives policies read-only access to account and ledger state. All
// context a policy needs comes in here explicitly; policies themselves hold
// no state.
type PolicyEnv struct {
	BelongsToOurBank func(models.IBAN) bool
	FindAccount      func(ctx context.Context, iban models.IBAN) (*models.Account, error)
	Balance          func(ctx context.Context, iban models.IBAN) (models.Money, error)
}

// Policy is one business rule applied to a candidate transaction. A returned
// error is an internal fault (a store failure), never a rule violation.
type Policy func(ctx context.Context, tx *models.Transaction, env *PolicyEnv) (PolicyResult, error)

// NegativeAmountPolicy rejects transactions with a negative amount.
func NegativeAmountPolicy(_ context.Context, tx *models.Transaction, _ *PolicyEnv) (PolicyResult, error) {
	if tx.Amount.IsNegative() {
		return violated(CauseNegativeAmount), nil
	}
	return satisfied(), nil
}

// AccountInOurBankPolicy requires at least one non-cash leg of our bank. This
// is what rejects cash-to-external, external-to-external and cash-to-cash.
func AccountInOurBankPolicy(_ context.Context, tx *models.Transaction, env *PolicyEnv) (PolicyResult, error) {
	ours := 0
	for _, leg := range []models.Endpoint{tx.From, tx.To} {
		if iban, ok := leg.IBAN(); ok && env.BelongsToOurBank(iban) {
			ours++
		}
	}
	if ours == 0 {
		return violated(CauseNoAccountOfOurBank), nil
	}
	return satisfied(), nil
}

// AccountExistsPolicy requires every leg that carries our bank code to name
// an account registered in the directory.
func AccountExistsPolicy(ctx context.Context, tx *models.Transaction, env *PolicyEnv) (PolicyResult, error) {
	for _, leg := range []models.Endpoint{tx.From, tx.To} {
		iban, ok := leg.IBAN()
		if !ok || !env.BelongsToOurBank(iban) {
			continue
		}
		if _, err := env.FindAccount(ctx, iban); err != nil {
			if errors.Is(err, models.ErrAccountNotFound) {
				return violated(fmt.Sprintf("Account %s doesn't exist", iban)), nil
			}
			return PolicyResult{}, err
		}
	}
	return satisfied(), nil
}

// SameAccountPolicy rejects transfers where both legs are the same account.
func SameAccountPolicy(_ context.Context, tx *models.Transaction, _ *PolicyEnv) (PolicyResult, error) {
	if !tx.From.IsCash() && tx.From == tx.To {
		return violated(CauseSameAccount), nil
	}
	return satisfied(), nil
}

// OverdraftPolicy rejects transactions that would drive the balance of any of
// our accounts below zero. It reads the balance current at validation time;
// atomicity with respect to concurrent submissions is the admission service's
// job, not this policy's.
func OverdraftPolicy(ctx context.Context, tx *models.Transaction, env *PolicyEnv) (PolicyResult, error) {
	if iban, ok := tx.From.IBAN(); ok && env.BelongsToOurBank(iban) {
		balance, err := env.Balance(ctx, iban)
		if err != nil {
			return PolicyResult{}, err
		}
		if balance.Sub(tx.Amount).IsNegative() {
			return violated(CauseOverdraft), nil
		}
	}
	if iban, ok := tx.To.IBAN(); ok && env.BelongsToOurBank(iban) {
		balance, err := env.Balance(ctx, iban)
		if err != nil {
			return PolicyResult{}, err
		}
		if balance.Add(tx.Amount).IsNegative() {
			return violated(CauseOverdraft), nil
		}
	}
	return satisfied(), nil
}

// DepositPolicy is a reserved extension point: currently any account may
// receive funds.
func DepositPolicy(_ context.Context, _ *models.Transaction, _ *PolicyEnv) (PolicyResult, error) {
	return satisfied(), nil
}

// WithdrawalPolicy restricts where money may leave an account of ours:
// checking withdraws anywhere, savings only into its reference checking
// account, personal loan not at all.
func WithdrawalPolicy(ctx context.Context, tx *models.Transaction, env *PolicyEnv) (PolicyResult, error) {
	iban, ok := tx.From.IBAN()
	if !ok {
		return satisfied(), nil
	}

	account, err := env.FindAccount(ctx, iban)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			// not ours to police; AccountExistsPolicy already guards our own
			return satisfied(), nil
		}
		return PolicyResult{}, err
	}
	if !env.BelongsToOurBank(account.IBAN) {
		return satisfied(), nil
	}

	switch account.Type {
	case models.AccountTypeSavings:
		reference, ok := account.ReferenceCheckingAccount()
		if !ok || tx.To != models.AccountOf(reference) {
			return violated(CauseSavingsWithdrawal), nil
		}
	case models.AccountTypePersonalLoan:
		return violated(CausePersonalLoanWithdrawal), nil
	case models.AccountTypeChecking:
		// allowed
	}
	return satisfied(), nil
}
