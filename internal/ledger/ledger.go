// Package ledger derives reporting views from an account's transaction log.
// It is read-only: nothing here mutates an account.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/bankbook/bankbook/internal/models"
)

// Row pairs a transaction with the running balance after applying it.
type Row struct {
	Transaction models.Transaction
	Balance     decimal.Decimal
}

// Reconstruct derives the opening balance implied by the transaction log and
// replays the log in stored order. The balance on the final row equals the
// account's current balance exactly; that equality is the integrity check for
// the whole model. An account with no transactions yields no rows and an
// opening balance equal to the current balance.
func Reconstruct(acct models.Account) (decimal.Decimal, []Row) {
	net := decimal.Zero
	for _, tx := range acct.Transactions {
		net = net.Add(tx.Signed())
	}
	opening := acct.Balance.Sub(net)

	rows := make([]Row, 0, len(acct.Transactions))
	running := opening
	for _, tx := range acct.Transactions {
		running = running.Add(tx.Signed())
		rows = append(rows, Row{Transaction: tx, Balance: running})
	}
	return opening, rows
}
