package service

import (
	"github.com/shopspring/decimal"

	"github.com/bankbook/bankbook/internal/models"
)

// NewAccountParams describes one bank account to create.
type NewAccountParams struct {
	AccountID       string
	AccountType     models.AccountType
	BankName        string
	StartingBalance decimal.Decimal
}

// NewUserParams describes a profile to create together with its first account.
type NewUserParams struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Account   NewAccountParams
}

// LookupUser returns the profile stored under email.
func (s *Service) LookupUser(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return models.User{}, err
	}
	user, ok := users[email]
	if !ok {
		return models.User{}, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "no user found with that email",
			Err:     models.ErrNotFound,
		}
	}
	return user, nil
}

// Authenticate checks the given credentials against the stored profile.
func (s *Service) Authenticate(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return models.User{}, err
	}
	user, ok := users[email]
	if !ok {
		return models.User{}, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "no user found with that email",
			Err:     models.ErrNotFound,
		}
	}
	if user.Password != password {
		return models.User{}, &ServiceError{
			Code:    ErrCodeInvalidCredentials,
			Message: "incorrect password",
		}
	}
	return user, nil
}

// CreateUser creates a profile with exactly one account and persists the
// store. The email is the store key; a duplicate fails with already_exists.
func (s *Service) CreateUser(p NewUserParams) (models.User, error) {
	if err := s.validateNewUser(p); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return models.User{}, err
	}
	if _, ok := users[p.Email]; ok {
		return models.User{}, &ServiceError{
			Code:    ErrCodeAlreadyExists,
			Message: "a user with this email already exists",
			Err:     models.ErrAlreadyExists,
		}
	}

	user := models.User{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Password:  p.Password,
		CreatedAt: s.timestamp(),
		Accounts:  []models.Account{s.newAccount(p.Account)},
	}
	users[p.Email] = user

	if err := s.save(users); err != nil {
		return user, err
	}
	s.logger.Info("user created", "email", p.Email, "account_id", p.Account.AccountID)
	return user, nil
}

// ResetPassword overwrites the stored password for email and persists.
func (s *Service) ResetPassword(email, newPassword string) error {
	if err := ValidateRequired("new password", newPassword); err != nil {
		return &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	user, ok := users[email]
	if !ok {
		return &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "no user found with that email",
			Err:     models.ErrNotFound,
		}
	}

	user.Password = newPassword
	users[email] = user

	if err := s.save(users); err != nil {
		return err
	}
	s.logger.Info("password reset", "email", email)
	return nil
}

// UpdateProfile edits the user's name and the selected account's bank name.
// Blank values keep the stored ones.
func (s *Service) UpdateProfile(email, firstName, lastName string, accountIndex int, bankName string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return models.User{}, err
	}
	user, ok := users[email]
	if !ok {
		return models.User{}, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "no user found with that email",
			Err:     models.ErrNotFound,
		}
	}

	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	if bankName != "" && len(user.Accounts) > 0 {
		user.Accounts[clampIndex(accountIndex, len(user.Accounts))].BankName = bankName
	}
	users[email] = user

	if err := s.save(users); err != nil {
		return user, err
	}
	return user, nil
}

func (s *Service) validateNewUser(p NewUserParams) error {
	for _, check := range []struct {
		field, value string
	}{
		{"first name", p.FirstName},
		{"last name", p.LastName},
		{"password", p.Password},
	} {
		if err := ValidateRequired(check.field, check.value); err != nil {
			return &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
		}
	}
	if err := ValidateEmail(p.Email); err != nil {
		return &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}
	return s.validateNewAccount(p.Account)
}

func (s *Service) validateNewAccount(p NewAccountParams) error {
	if err := ValidateRequired("account id", p.AccountID); err != nil {
		return &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}
	if err := ValidateRequired("bank name", p.BankName); err != nil {
		return &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}
	if p.AccountType != "" {
		if err := ValidateAccountType(p.AccountType); err != nil {
			return &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
		}
	}
	if p.StartingBalance.IsNegative() {
		return &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: "starting balance cannot be negative",
		}
	}
	return nil
}

// newAccount builds an account from validated params. A positive starting
// balance is recorded as an initial deposit, so the transaction log alone is
// always sufficient to reconstruct the balance from zero.
func (s *Service) newAccount(p NewAccountParams) models.Account {
	accountType := p.AccountType
	if accountType == "" {
		accountType = models.AccountTypeSavings
	}
	acct := models.Account{
		AccountID:   p.AccountID,
		AccountType: accountType,
		BankName:    p.BankName,
		Balance:     p.StartingBalance,
	}
	if p.StartingBalance.IsPositive() {
		acct.Transactions = append(acct.Transactions, models.Transaction{
			Timestamp: s.timestamp(),
			Kind:      models.TransactionDeposit,
			Amount:    p.StartingBalance,
		})
	}
	return acct
}
