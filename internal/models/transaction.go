package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is one committed entry of the ledger. Transactions are immutable
// once created; the ledger holds no balance field anywhere, the transaction
// history is the sole unit of truth.
type Transaction struct {
	Timestamp time.Time `db:"created_at"`
	From      Endpoint  `db:"from_iban"`
	To        Endpoint  `db:"to_iban"`
	Amount    Money     `db:"amount"`
	ID        uuid.UUID `db:"id"`
}

// TransferCommand is a request to move money. It is the input to the admission
// service and is never persisted directly; an admitted command becomes a
// Transaction with a fresh id and timestamp.
type TransferCommand struct {
	From   Endpoint
	To     Endpoint
	Amount Money
}

// NewDeposit is a cash deposit into a bank account.
func NewDeposit(to IBAN, amount Money) TransferCommand {
	return TransferCommand{From: Cash, To: AccountOf(to), Amount: amount}
}

// NewWithdrawal is a cash withdrawal from a bank account.
func NewWithdrawal(from IBAN, amount Money) TransferCommand {
	return TransferCommand{From: AccountOf(from), To: Cash, Amount: amount}
}

// NewTransfer moves money across two accounts.
func NewTransfer(from, to IBAN, amount Money) TransferCommand {
	return TransferCommand{From: AccountOf(from), To: AccountOf(to), Amount: amount}
}
