package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bankbook/bankbook/internal/ledger"
	"github.com/bankbook/bankbook/internal/models"
)

// AccountSummary is one row of ListAccounts, ready for display.
type AccountSummary struct {
	Index       int
	AccountID   string
	AccountType models.AccountType
	BankName    string
	Balance     decimal.Decimal
}

// Label renders the selector label for this account.
func (a AccountSummary) Label() string {
	return fmt.Sprintf("%s - %s (%s)", a.AccountType, a.AccountID, a.BankName)
}

// ListAccounts returns ordered summaries of a user's accounts.
func ListAccounts(user models.User) []AccountSummary {
	summaries := make([]AccountSummary, 0, len(user.Accounts))
	for i, acct := range user.Accounts {
		summaries = append(summaries, AccountSummary{
			Index:       i,
			AccountID:   acct.AccountID,
			AccountType: acct.AccountType,
			BankName:    acct.BankName,
			Balance:     acct.Balance,
		})
	}
	return summaries
}

// SelectAccount resolves an account by index. An out-of-range index clamps to
// the first account; a user with no accounts yields not_found.
func SelectAccount(user models.User, index int) (models.Account, error) {
	if len(user.Accounts) == 0 {
		return models.Account{}, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "user has no accounts",
			Err:     models.ErrNotFound,
		}
	}
	return user.Accounts[clampIndex(index, len(user.Accounts))], nil
}

// Deposit adds amount to the indexed account and appends a deposit record.
func (s *Service) Deposit(email string, accountIndex int, amount decimal.Decimal) (models.Account, error) {
	if err := ValidateAmount(amount); err != nil {
		return models.Account{}, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, user, acct, err := s.resolveAccount(email, accountIndex)
	if err != nil {
		return models.Account{}, err
	}

	acct.Balance = acct.Balance.Add(amount)
	acct.Transactions = append(acct.Transactions, models.Transaction{
		Timestamp: s.timestamp(),
		Kind:      models.TransactionDeposit,
		Amount:    amount,
	})
	users[email] = user

	if err := s.save(users); err != nil {
		return *acct, err
	}
	s.logger.Info("deposit recorded",
		"email", email, "account_id", acct.AccountID, "amount", amount)
	return *acct, nil
}

// Withdraw subtracts amount from the indexed account and appends a withdraw
// record. A withdrawal exceeding the balance is rejected and leaves the
// account untouched.
func (s *Service) Withdraw(email string, accountIndex int, amount decimal.Decimal) (models.Account, error) {
	if err := ValidateAmount(amount); err != nil {
		return models.Account{}, &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, user, acct, err := s.resolveAccount(email, accountIndex)
	if err != nil {
		return models.Account{}, err
	}
	if amount.GreaterThan(acct.Balance) {
		return models.Account{}, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: "insufficient balance for this withdrawal",
		}
	}

	acct.Balance = acct.Balance.Sub(amount)
	acct.Transactions = append(acct.Transactions, models.Transaction{
		Timestamp: s.timestamp(),
		Kind:      models.TransactionWithdraw,
		Amount:    amount,
	})
	users[email] = user

	if err := s.save(users); err != nil {
		return *acct, err
	}
	s.logger.Info("withdrawal recorded",
		"email", email, "account_id", acct.AccountID, "amount", amount)
	return *acct, nil
}

// AddAccount appends another account to an existing user and persists.
func (s *Service) AddAccount(email string, p NewAccountParams) (models.Account, error) {
	if err := s.validateNewAccount(p); err != nil {
		return models.Account{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return models.Account{}, err
	}
	user, ok := users[email]
	if !ok {
		return models.Account{}, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "no user found with that email",
			Err:     models.ErrNotFound,
		}
	}

	acct := s.newAccount(p)
	user.Accounts = append(user.Accounts, acct)
	users[email] = user

	if err := s.save(users); err != nil {
		return acct, err
	}
	s.logger.Info("account added", "email", email, "account_id", acct.AccountID)
	return acct, nil
}

// GetHistory reconstructs the opening balance and running-balance rows for an
// account. Read-only; see the ledger package.
func (s *Service) GetHistory(acct models.Account) (decimal.Decimal, []ledger.Row) {
	return ledger.Reconstruct(acct)
}

// resolveAccount loads the store and returns the user plus a pointer into its
// account slice. Callers must hold s.mu and write users[email] back after
// mutating through the pointer.
func (s *Service) resolveAccount(email string, index int) (models.Store, models.User, *models.Account, error) {
	users, err := s.load()
	if err != nil {
		return nil, models.User{}, nil, err
	}
	user, ok := users[email]
	if !ok {
		return nil, models.User{}, nil, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "no user found with that email",
			Err:     models.ErrNotFound,
		}
	}
	if len(user.Accounts) == 0 {
		return nil, models.User{}, nil, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "user has no accounts",
			Err:     models.ErrNotFound,
		}
	}
	return users, user, &user.Accounts[clampIndex(index, len(user.Accounts))], nil
}

func clampIndex(index, length int) int {
	if index < 0 || index >= length {
		return 0
	}
	return index
}
