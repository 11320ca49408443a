package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankbook/bankbook/internal/models"
)

func TestCreateUser(t *testing.T) {
	svc := newTestService(t)

	user := seedUser(t, svc, "asha@example.com", "100")

	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotEmpty(t, user.CreatedAt)
	require.Len(t, user.Accounts, 1)

	// positive starting balance is recorded as an initial deposit
	acct := user.Accounts[0]
	assert.Equal(t, "100", acct.Balance.String())
	require.Len(t, acct.Transactions, 1)
	assert.Equal(t, models.TransactionDeposit, acct.Transactions[0].Kind)
	assert.Equal(t, "100", acct.Transactions[0].Amount.String())

	// user is retrievable and persisted
	stored, err := svc.LookupUser("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.CreatedAt, stored.CreatedAt)
	require.Len(t, stored.Accounts, 1)
}

func TestCreateUserZeroStartingBalance(t *testing.T) {
	svc := newTestService(t)

	user := seedUser(t, svc, "asha@example.com", "0")

	require.Len(t, user.Accounts, 1)
	assert.True(t, user.Accounts[0].Balance.IsZero())
	assert.Empty(t, user.Accounts[0].Transactions)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "asha@example.com", "100")

	_, err := svc.CreateUser(NewUserParams{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "asha@example.com",
		Password:  "pw",
		Account:   NewAccountParams{AccountID: "SB-2", BankName: "SBI"},
	})

	assertCode(t, err, ErrCodeAlreadyExists)
	assert.True(t, errors.Is(err, models.ErrAlreadyExists))
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*NewUserParams)
		wantCode string
	}{
		{
			name:     "missing first name",
			mutate:   func(p *NewUserParams) { p.FirstName = "" },
			wantCode: ErrCodeValidation,
		},
		{
			name:     "missing last name",
			mutate:   func(p *NewUserParams) { p.LastName = " " },
			wantCode: ErrCodeValidation,
		},
		{
			name:     "missing password",
			mutate:   func(p *NewUserParams) { p.Password = "" },
			wantCode: ErrCodeValidation,
		},
		{
			name:     "bad email",
			mutate:   func(p *NewUserParams) { p.Email = "not-an-email" },
			wantCode: ErrCodeValidation,
		},
		{
			name:     "missing account id",
			mutate:   func(p *NewUserParams) { p.Account.AccountID = "" },
			wantCode: ErrCodeValidation,
		},
		{
			name:     "missing bank name",
			mutate:   func(p *NewUserParams) { p.Account.BankName = "" },
			wantCode: ErrCodeValidation,
		},
		{
			name:     "unknown account type",
			mutate:   func(p *NewUserParams) { p.Account.AccountType = "Demat" },
			wantCode: ErrCodeValidation,
		},
		{
			name:     "negative starting balance",
			mutate:   func(p *NewUserParams) { p.Account.StartingBalance = decimal.RequireFromString("-1") },
			wantCode: ErrCodeInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			p := NewUserParams{
				FirstName: "Asha",
				LastName:  "Rao",
				Email:     "asha@example.com",
				Password:  "secret",
				Account: NewAccountParams{
					AccountID:   "SB-1",
					AccountType: models.AccountTypeSavings,
					BankName:    "HDFC",
				},
			}
			tt.mutate(&p)

			_, err := svc.CreateUser(p)
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestLookupUserNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.LookupUser("nobody@example.com")

	assertCode(t, err, ErrCodeNotFound)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "asha@example.com", "100")

	t.Run("success", func(t *testing.T) {
		user, err := svc.Authenticate("asha@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("asha@example.com", "wrong")
		assertCode(t, err, ErrCodeInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate("nobody@example.com", "secret")
		assertCode(t, err, ErrCodeNotFound)
	})
}

func TestResetPassword(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "asha@example.com", "100")

	require.NoError(t, svc.ResetPassword("asha@example.com", "newsecret"))

	_, err := svc.Authenticate("asha@example.com", "secret")
	assertCode(t, err, ErrCodeInvalidCredentials)

	_, err = svc.Authenticate("asha@example.com", "newsecret")
	assert.NoError(t, err)
}

func TestResetPasswordErrors(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "asha@example.com", "100")

	assertCode(t, svc.ResetPassword("nobody@example.com", "pw"), ErrCodeNotFound)
	assertCode(t, svc.ResetPassword("asha@example.com", " "), ErrCodeValidation)
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "asha@example.com", "100")

	user, err := svc.UpdateProfile("asha@example.com", "Aisha", "", 0, "Axis")
	require.NoError(t, err)

	// blank fields keep stored values
	assert.Equal(t, "Aisha", user.FirstName)
	assert.Equal(t, "Rao", user.LastName)
	assert.Equal(t, "Axis", user.Accounts[0].BankName)

	stored, err := svc.LookupUser("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Aisha", stored.FirstName)
	assert.Equal(t, "Axis", stored.Accounts[0].BankName)
}
