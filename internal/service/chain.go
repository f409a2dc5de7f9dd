package service

import (
	"context"

	"github.com/otterbank/bank/internal/iban"
	"github.com/otterbank/bank/internal/models"
	"github.com/otterbank/bank/internal/repository"
)

// NewPolicyEnv wires the read-only policy context from the account directory,
// the bank identity check and the balance derivation.
func NewPolicyEnv(directory repository.AccountDirectory, ibans *iban.Service, state *StateService) *PolicyEnv {
	return &PolicyEnv{
		BelongsToOurBank: ibans.BelongsToOurBank,
		FindAccount:      directory.FindByIBAN,
		Balance:          state.Balance,
	}
}

// Chain evaluates the policies in their fixed order and stops at the first
// violation. The order is semantic: NegativeAmountPolicy must run before
// OverdraftPolicy so a negative-amount command is rejected for the right
// reason, and AccountExistsPolicy must run before the policies that read
// balances or account types.
type Chain struct {
	env      *PolicyEnv
	policies []Policy
}

// NewChain creates the evaluator over the standard policy set.
func NewChain(env *PolicyEnv) *Chain {
	return &Chain{
		env: env,
		policies: []Policy{
			NegativeAmountPolicy,
			AccountInOurBankPolicy,
			AccountExistsPolicy,
			SameAccountPolicy,
			OverdraftPolicy,
			DepositPolicy,
			WithdrawalPolicy,
		},
	}
}

// Validate returns the first unsatisfied policy result, or a satisfied result
// when the candidate passes every policy. Callers see only the first cause.
func (c *Chain) Validate(ctx context.Context, tx *models.Transaction) (PolicyResult, error) {
	for _, policy := range c.policies {
		result, err := policy(ctx, tx, c.env)
		if err != nil {
			return PolicyResult{}, err
		}
		if !result.Satisfied {
			return result, nil
		}
	}
	return satisfied(), nil
}
