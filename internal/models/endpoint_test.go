package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpoint(t *testing.T) {
	account := AccountOf("DE44500105170123456789")

	t.Run("cash", func(t *testing.T) {
		assert.True(t, Cash.IsCash())
		assert.Equal(t, "CASH", Cash.String())
		_, ok := Cash.IBAN()
		assert.False(t, ok)
	})

	t.Run("account", func(t *testing.T) {
		assert.False(t, account.IsCash())
		iban, ok := account.IBAN()
		assert.True(t, ok)
		assert.Equal(t, IBAN("DE44500105170123456789"), iban)
		assert.Equal(t, "DE44500105170123456789", account.String())
	})

	t.Run("equality is structural", func(t *testing.T) {
		assert.Equal(t, account, AccountOf("DE44500105170123456789"))
		assert.NotEqual(t, account, AccountOf("DE21500105179876543210"))
		assert.Equal(t, Cash, Endpoint{})
	})

	t.Run("zero value is cash, never an implicit nil leg", func(t *testing.T) {
		var e Endpoint
		assert.True(t, e.IsCash())
	})

	t.Run("parse round-trips the wire form", func(t *testing.T) {
		assert.Equal(t, Cash, ParseEndpoint("CASH"))
		assert.Equal(t, account, ParseEndpoint("DE44500105170123456789"))
	})
}

func TestTransferCommandConstructors(t *testing.T) {
	iban := IBAN("DE44500105170123456789")
	other := IBAN("DE21500105179876543210")
	amount := NewMoney(100)

	t.Run("deposit always has a bank-side to leg", func(t *testing.T) {
		cmd := NewDeposit(iban, amount)
		assert.Equal(t, Cash, cmd.From)
		assert.Equal(t, AccountOf(iban), cmd.To)
	})

	t.Run("withdrawal always has a bank-side from leg", func(t *testing.T) {
		cmd := NewWithdrawal(iban, amount)
		assert.Equal(t, AccountOf(iban), cmd.From)
		assert.Equal(t, Cash, cmd.To)
	})

	t.Run("transfer carries both accounts", func(t *testing.T) {
		cmd := NewTransfer(iban, other, amount)
		assert.Equal(t, AccountOf(iban), cmd.From)
		assert.Equal(t, AccountOf(other), cmd.To)
	})
}

func TestSavingsReferenceProperty(t *testing.T) {
	checking := IBAN("DE44500105170123456789")
	savings := NewSavingsAccount("DE21500105179876543210", checking)

	ref, ok := savings.ReferenceCheckingAccount()
	assert.True(t, ok)
	assert.Equal(t, checking, ref)

	_, ok = NewCheckingAccount(checking).ReferenceCheckingAccount()
	assert.False(t, ok)
}
