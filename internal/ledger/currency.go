package ledger

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// inrPrinter applies English-locale digit grouping, matching the rendering the
// stored reports have always used.
var inrPrinter = message.NewPrinter(language.English)

// FormatINR renders an amount as a fixed two-decimal, thousands-grouped INR
// string, e.g. 19900 -> "₹19,900.00". Pure formatting, no side effects.
func FormatINR(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return inrPrinter.Sprintf("₹%.2f", f)
}
