package service

import "fmt"

// ServiceError represents a business-rule failure with a stable code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeValidation         = "validation_error"
	ErrCodeInvalidAmount      = "invalid_amount"
	ErrCodeInsufficientFunds  = "insufficient_funds"
	ErrCodeAlreadyExists      = "already_exists"
	ErrCodeNotFound           = "not_found"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeStorageIO          = "storage_io"
)
