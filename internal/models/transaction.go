package models

import (
	"github.com/shopspring/decimal"
)

// TimeLayout is the timestamp format used in persisted records.
const TimeLayout = "2006-01-02 15:04:05"

// TransactionKind represents the direction of a transaction
type TransactionKind string

const (
	TransactionDeposit  TransactionKind = "deposit"
	TransactionWithdraw TransactionKind = "withdraw"
)

// Transaction is one immutable deposit or withdrawal event in an account's log
type Transaction struct {
	Timestamp string          `json:"timestamp"`
	Kind      TransactionKind `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
}

// Signed returns the amount with the sign its kind implies: deposits add,
// everything else subtracts.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == TransactionDeposit {
		return t.Amount
	}
	return t.Amount.Neg()
}
