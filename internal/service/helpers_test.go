package service

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankbook/bankbook/internal/models"
	"github.com/bankbook/bankbook/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "accounts.txt"))
	return New(st, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// seedUser creates a user with one Savings account at HDFC.
func seedUser(t *testing.T, svc *Service, email, startingBalance string) models.User {
	t.Helper()
	user, err := svc.CreateUser(NewUserParams{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     email,
		Password:  "secret",
		Account: NewAccountParams{
			AccountID:       "SB-1",
			AccountType:     models.AccountTypeSavings,
			BankName:        "HDFC",
			StartingBalance: decimal.RequireFromString(startingBalance),
		},
	})
	require.NoError(t, err)
	return user
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, code, se.Code)
}
