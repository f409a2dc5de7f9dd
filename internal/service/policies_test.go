package service

import (
	"context"
	"testing"

	"github.com/otterbank/bank/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ourChecking = models.IBAN("DE44500105170123456789")
	ourSavings  = models.IBAN("DE21500105179876543210")
	ourLoan     = models.IBAN("DE63500105175555555555")
	ourMissing  = models.IBAN("DE02500105170000000001")
)

// fixedEnv builds a PolicyEnv over a static set of accounts and balances.
func fixedEnv(accounts map[models.IBAN]*models.Account, balances map[models.IBAN]int64) *PolicyEnv {
	return &PolicyEnv{
		BelongsToOurBank: func(iban models.IBAN) bool {
			v := string(iban)
			return len(v) >= 12 && v[:2] == "DE" && v[4:12] == "50010517"
		},
		FindAccount: func(_ context.Context, iban models.IBAN) (*models.Account, error) {
			account, ok := accounts[iban]
			if !ok {
				return nil, models.ErrAccountNotFound
			}
			return account, nil
		},
		Balance: func(_ context.Context, iban models.IBAN) (models.Money, error) {
			return models.NewMoney(balances[iban]), nil
		},
	}
}

func defaultAccounts() map[models.IBAN]*models.Account {
	return map[models.IBAN]*models.Account{
		ourChecking: models.NewCheckingAccount(ourChecking),
		ourSavings:  models.NewSavingsAccount(ourSavings, ourChecking),
		ourLoan:     models.NewPersonalLoanAccount(ourLoan),
	}
}

func candidate(cmd models.TransferCommand) *models.Transaction {
	return &models.Transaction{From: cmd.From, To: cmd.To, Amount: cmd.Amount}
}

func TestNegativeAmountPolicy(t *testing.T) {
	tests := []struct {
		name      string
		amount    int64
		satisfied bool
	}{
		{name: "positive amount", amount: 100, satisfied: true},
		{name: "zero amount", amount: 0, satisfied: true},
		{name: "negative amount", amount: -1, satisfied: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := candidate(models.NewDeposit(ourChecking, models.NewMoney(tt.amount)))

			result, err := NegativeAmountPolicy(context.Background(), tx, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.satisfied, result.Satisfied)
			if !tt.satisfied {
				assert.Equal(t, CauseNegativeAmount, result.Cause)
			}
		})
	}
}

func TestAccountInOurBankPolicy(t *testing.T) {
	env := fixedEnv(defaultAccounts(), nil)

	tests := []struct {
		name      string
		cmd       models.TransferCommand
		satisfied bool
	}{
		{
			name:      "cash deposit to our account",
			cmd:       models.NewDeposit(ourChecking, models.NewMoney(100)),
			satisfied: true,
		},
		{
			name:      "transfer from ours to external",
			cmd:       models.NewTransfer(ourChecking, externalIBAN, models.NewMoney(100)),
			satisfied: true,
		},
		{
			name:      "cash deposit to external bank account",
			cmd:       models.NewDeposit(externalIBAN, models.NewMoney(100)),
			satisfied: false,
		},
		{
			name:      "external to external",
			cmd:       models.NewTransfer(externalIBAN, externalIBAN, models.NewMoney(100)),
			satisfied: false,
		},
		{
			name:      "cash to cash",
			cmd:       models.TransferCommand{From: models.Cash, To: models.Cash, Amount: models.NewMoney(100)},
			satisfied: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AccountInOurBankPolicy(context.Background(), candidate(tt.cmd), env)

			require.NoError(t, err)
			assert.Equal(t, tt.satisfied, result.Satisfied)
			if !tt.satisfied {
				assert.Equal(t, CauseNoAccountOfOurBank, result.Cause)
			}
		})
	}
}

func TestAccountExistsPolicy(t *testing.T) {
	env := fixedEnv(defaultAccounts(), nil)

	t.Run("existing account", func(t *testing.T) {
		tx := candidate(models.NewDeposit(ourChecking, models.NewMoney(100)))

		result, err := AccountExistsPolicy(context.Background(), tx, env)

		require.NoError(t, err)
		assert.True(t, result.Satisfied)
	})

	t.Run("missing account of our bank", func(t *testing.T) {
		tx := candidate(models.NewDeposit(ourMissing, models.NewMoney(100)))

		result, err := AccountExistsPolicy(context.Background(), tx, env)

		require.NoError(t, err)
		assert.False(t, result.Satisfied)
		assert.Equal(t, "Account "+string(ourMissing)+" doesn't exist", result.Cause)
	})

	t.Run("external account is not checked", func(t *testing.T) {
		tx := candidate(models.NewTransfer(ourChecking, externalIBAN, models.NewMoney(100)))

		result, err := AccountExistsPolicy(context.Background(), tx, env)

		require.NoError(t, err)
		assert.True(t, result.Satisfied)
	})
}

func TestSameAccountPolicy(t *testing.T) {
	t.Run("same account on both legs", func(t *testing.T) {
		tx := candidate(models.NewTransfer(ourChecking, ourChecking, models.NewMoney(100)))

		result, err := SameAccountPolicy(context.Background(), tx, nil)

		require.NoError(t, err)
		assert.False(t, result.Satisfied)
		assert.Equal(t, CauseSameAccount, result.Cause)
	})

	t.Run("distinct accounts", func(t *testing.T) {
		tx := candidate(models.NewTransfer(ourChecking, ourSavings, models.NewMoney(100)))

		result, err := SameAccountPolicy(context.Background(), tx, nil)

		require.NoError(t, err)
		assert.True(t, result.Satisfied)
	})

	t.Run("cash on both legs is not this policy's concern", func(t *testing.T) {
		tx := candidate(models.TransferCommand{From: models.Cash, To: models.Cash, Amount: models.NewMoney(100)})

		result, err := SameAccountPolicy(context.Background(), tx, nil)

		require.NoError(t, err)
		assert.True(t, result.Satisfied)
	})
}

func TestOverdraftPolicy(t *testing.T) {
	tests := []struct {
		name      string
		balances  map[models.IBAN]int64
		cmd       models.TransferCommand
		satisfied bool
	}{
		{
			name:      "sufficient funds",
			balances:  map[models.IBAN]int64{ourChecking: 150},
			cmd:       models.NewWithdrawal(ourChecking, models.NewMoney(100)),
			satisfied: true,
		},
		{
			name:      "exact balance",
			balances:  map[models.IBAN]int64{ourChecking: 100},
			cmd:       models.NewWithdrawal(ourChecking, models.NewMoney(100)),
			satisfied: true,
		},
		{
			name:      "insufficient funds",
			balances:  map[models.IBAN]int64{ourChecking: 50},
			cmd:       models.NewWithdrawal(ourChecking, models.NewMoney(100)),
			satisfied: false,
		},
		{
			name:      "empty account",
			balances:  nil,
			cmd:       models.NewWithdrawal(ourChecking, models.NewMoney(1)),
			satisfied: false,
		},
		{
			name:      "withdrawal from external account is not checked",
			balances:  nil,
			cmd:       models.NewTransfer(externalIBAN, ourChecking, models.NewMoney(100)),
			satisfied: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := fixedEnv(defaultAccounts(), tt.balances)

			result, err := OverdraftPolicy(context.Background(), candidate(tt.cmd), env)

			require.NoError(t, err)
			assert.Equal(t, tt.satisfied, result.Satisfied)
			if !tt.satisfied {
				assert.Equal(t, CauseOverdraft, result.Cause)
			}
		})
	}
}

func TestWithdrawalPolicy(t *testing.T) {
	env := fixedEnv(defaultAccounts(), nil)

	tests := []struct {
		name      string
		cmd       models.TransferCommand
		satisfied bool
		cause     string
	}{
		{
			name:      "checking withdraws to cash",
			cmd:       models.NewWithdrawal(ourChecking, models.NewMoney(100)),
			satisfied: true,
		},
		{
			name:      "checking transfers anywhere",
			cmd:       models.NewTransfer(ourChecking, externalIBAN, models.NewMoney(100)),
			satisfied: true,
		},
		{
			name:      "savings into its reference checking account",
			cmd:       models.NewTransfer(ourSavings, ourChecking, models.NewMoney(100)),
			satisfied: true,
		},
		{
			name:      "savings to cash",
			cmd:       models.NewWithdrawal(ourSavings, models.NewMoney(100)),
			satisfied: false,
			cause:     CauseSavingsWithdrawal,
		},
		{
			name:      "savings to another account",
			cmd:       models.NewTransfer(ourSavings, ourLoan, models.NewMoney(100)),
			satisfied: false,
			cause:     CauseSavingsWithdrawal,
		},
		{
			name:      "personal loan to cash",
			cmd:       models.NewWithdrawal(ourLoan, models.NewMoney(100)),
			satisfied: false,
			cause:     CausePersonalLoanWithdrawal,
		},
		{
			name:      "personal loan to checking",
			cmd:       models.NewTransfer(ourLoan, ourChecking, models.NewMoney(100)),
			satisfied: false,
			cause:     CausePersonalLoanWithdrawal,
		},
		{
			name:      "deposit has no withdrawal leg",
			cmd:       models.NewDeposit(ourLoan, models.NewMoney(100)),
			satisfied: true,
		},
		{
			name:      "withdrawal from unknown account is not policed here",
			cmd:       models.NewTransfer(externalIBAN, ourChecking, models.NewMoney(100)),
			satisfied: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := WithdrawalPolicy(context.Background(), candidate(tt.cmd), env)

			require.NoError(t, err)
			assert.Equal(t, tt.satisfied, result.Satisfied)
			if !tt.satisfied {
				assert.Equal(t, tt.cause, result.Cause)
			}
		})
	}
}

func TestDepositPolicy(t *testing.T) {
	result, err := DepositPolicy(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.True(t, result.Satisfied)
}
