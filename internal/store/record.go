package store

import (
	"encoding/json"

	"github.com/bankbook/bankbook/internal/models"
)

// userRecord is the on-disk shape of one line: the current multi-account profile
// plus the legacy flat single-account fields still accepted on load. The legacy
// fields are never written back; Save always emits the current shape.
type userRecord struct {
	models.User

	LegacyBankName     string              `json:"bank_name,omitempty"`
	LegacyAccountID    string              `json:"account_number,omitempty"`
	LegacyBalance      json.RawMessage     `json:"balance,omitempty"`
	LegacyTransactions []legacyTransaction `json:"transactions,omitempty"`
}

// legacyTransaction is a pre-migration transaction. The amount is kept raw so
// the migrator can zero unparseable values instead of rejecting the record.
type legacyTransaction struct {
	Timestamp string          `json:"timestamp"`
	Kind      string          `json:"type"`
	Amount    json.RawMessage `json:"amount"`
}

func recordFromUser(u models.User) userRecord {
	return userRecord{User: u}
}
