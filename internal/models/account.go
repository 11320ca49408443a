package models

import (
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of bank account
type AccountType string

const (
	AccountTypeSavings AccountType = "Savings"
	AccountTypeCurrent AccountType = "Current"
)

// Account is one bank-account balance plus its append-only transaction log.
// The balance always equals the opening balance implied by the log plus the
// signed sum of all transactions.
type Account struct {
	AccountID    string          `json:"account_id"`
	AccountType  AccountType     `json:"account_type"`
	BankName     string          `json:"bank_name"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
}
