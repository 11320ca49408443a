package store

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/bankbook/bankbook/internal/models"
)

// legacyAccountID is assigned when a legacy record carries no account number.
const legacyAccountID = "ACCT-1"

// migrate normalizes a legacy single-account record into the current
// multi-account shape. A record that already carries accounts is returned
// unchanged, which makes migration idempotent. Migration never fails:
// unparseable legacy amounts are zeroed rather than rejected.
func migrate(rec userRecord, now string) userRecord {
	if len(rec.Accounts) > 0 {
		return rec
	}

	accountID := rec.LegacyAccountID
	if accountID == "" {
		accountID = legacyAccountID
	}

	acct := models.Account{
		AccountID:   accountID,
		AccountType: models.AccountTypeSavings,
		BankName:    rec.LegacyBankName,
		Balance:     coerceAmount(rec.LegacyBalance),
	}
	for _, tx := range rec.LegacyTransactions {
		ts := tx.Timestamp
		if ts == "" {
			ts = now
		}
		kind := models.TransactionKind(tx.Kind)
		if kind == "" {
			kind = models.TransactionDeposit
		}
		acct.Transactions = append(acct.Transactions, models.Transaction{
			Timestamp: ts,
			Kind:      kind,
			Amount:    coerceAmount(tx.Amount),
		})
	}

	rec.Accounts = []models.Account{acct}
	return rec
}

// coerceAmount parses a loosely-typed legacy amount. Absent or non-numeric
// values become zero (tolerant-migration policy, not a validation policy).
func coerceAmount(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Zero
	}
	return d
}
