package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/bankbook/bankbook/internal/models"
)

// ValidateEmail applies the rule the persisted records were created under:
// an email must contain both '@' and '.' and no whitespace.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if strings.ContainsFunc(email, unicode.IsSpace) {
		return fmt.Errorf("email must not contain whitespace")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("invalid email format: must contain '@' and '.'")
	}
	return nil
}

// ValidateAmount checks that a deposit or withdrawal amount is positive
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be greater than 0")
	}
	return nil
}

// ValidateRequired checks that a required field is not blank
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateAccountType checks the account type is one of the known kinds.
func ValidateAccountType(t models.AccountType) error {
	switch t {
	case models.AccountTypeSavings, models.AccountTypeCurrent:
		return nil
	default:
		return fmt.Errorf("invalid account type: %q (must be %s or %s)",
			t, models.AccountTypeSavings, models.AccountTypeCurrent)
	}
}
