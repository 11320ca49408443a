package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankbook/bankbook/internal/models"
)

const testNow = "2024-05-01 12:00:00"

func TestMigrateWrapsLegacyRecord(t *testing.T) {
	legacy := userRecord{
		User:            models.User{Email: "old@example.com", CreatedAt: testNow},
		LegacyBankName:  "X",
		LegacyAccountID: "OLD-7",
		LegacyBalance:   json.RawMessage(`"42.50"`),
		LegacyTransactions: []legacyTransaction{
			{Timestamp: "2024-01-01 00:00:00", Kind: "withdraw", Amount: json.RawMessage(`5`)},
			{Amount: json.RawMessage(`"bad"`)},
		},
	}

	got := migrate(legacy, testNow)

	require.Len(t, got.Accounts, 1)
	acct := got.Accounts[0]
	assert.Equal(t, "OLD-7", acct.AccountID)
	assert.Equal(t, models.AccountTypeSavings, acct.AccountType)
	assert.Equal(t, "X", acct.BankName)
	assert.Equal(t, "42.5", acct.Balance.String())

	require.Len(t, acct.Transactions, 2)
	assert.Equal(t, models.TransactionWithdraw, acct.Transactions[0].Kind)
	assert.Equal(t, "2024-01-01 00:00:00", acct.Transactions[0].Timestamp)
	assert.Equal(t, "5", acct.Transactions[0].Amount.String())

	// absent type and timestamp are defaulted, unparseable amount is zeroed
	assert.Equal(t, models.TransactionDeposit, acct.Transactions[1].Kind)
	assert.Equal(t, testNow, acct.Transactions[1].Timestamp)
	assert.True(t, acct.Transactions[1].Amount.IsZero())
}

func TestMigrateDefaultsAccountID(t *testing.T) {
	legacy := userRecord{User: models.User{Email: "old@example.com"}}

	got := migrate(legacy, testNow)

	require.Len(t, got.Accounts, 1)
	assert.Equal(t, "ACCT-1", got.Accounts[0].AccountID)
	assert.True(t, got.Accounts[0].Balance.IsZero())
	assert.Empty(t, got.Accounts[0].Transactions)
}

func TestMigrateIdempotent(t *testing.T) {
	legacy := userRecord{
		User:           models.User{Email: "old@example.com"},
		LegacyBankName: "X",
		LegacyBalance:  json.RawMessage(`10`),
		LegacyTransactions: []legacyTransaction{
			{Timestamp: "2024-01-01 00:00:00", Kind: "deposit", Amount: json.RawMessage(`10`)},
		},
	}

	once := migrate(legacy, testNow)
	twice := migrate(once, testNow)
	assert.Equal(t, once, twice)
}

func TestMigrateLeavesCurrentShapeUnchanged(t *testing.T) {
	current := userRecord{
		User: models.User{
			Email: "new@example.com",
			Accounts: []models.Account{
				{AccountID: "SB-1", AccountType: models.AccountTypeCurrent, BankName: "SBI"},
			},
		},
	}

	assert.Equal(t, current, migrate(current, testNow))
}

func TestLoadMigratesLegacyLine(t *testing.T) {
	st := newTestStore(t)
	writeLines(t, st,
		`{"bank_name":"X","email":"old@example.com","balance":"42.50","transactions":[{"amount":"bad"}]}`,
	)

	users, report, err := st.Load()
	require.NoError(t, err)

	user := users["old@example.com"]
	require.Len(t, user.Accounts, 1)
	acct := user.Accounts[0]
	assert.Equal(t, "ACCT-1", acct.AccountID)
	assert.Equal(t, models.AccountTypeSavings, acct.AccountType)
	assert.Equal(t, "42.5", acct.Balance.String())
	require.Len(t, acct.Transactions, 1)
	assert.Equal(t, models.TransactionDeposit, acct.Transactions[0].Kind)
	assert.True(t, acct.Transactions[0].Amount.IsZero())
	assert.NotEmpty(t, acct.Transactions[0].Timestamp)

	assert.Equal(t, []string{"old@example.com"}, report.Migrated)

	// re-saving writes the current shape, so the next load needs no migration
	require.NoError(t, st.Save(users))
	reloaded, report, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, report.Migrated)
	assertStoreEqual(t, users, reloaded)
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare number", raw: `42.5`, want: "42.5"},
		{name: "quoted number", raw: `"42.50"`, want: "42.5"},
		{name: "unparseable string", raw: `"bad"`, want: "0"},
		{name: "absent", raw: ``, want: "0"},
		{name: "null", raw: `null`, want: "0"},
		{name: "object", raw: `{}`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coerceAmount(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, got.String())
		})
	}
}
