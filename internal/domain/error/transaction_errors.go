// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("amount must be greater than 0")

	// ErrInvalidTransactionCategory is returned when the category is not in the closed set.
	ErrInvalidTransactionCategory = errors.New("invalid category")

	// ErrInvalidTransactionDate is returned when the transaction date is missing or invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrMissingDescription is returned when the transaction description is empty.
	ErrMissingDescription = errors.New("description is required")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType     TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionCategory TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionDate     TransactionErrorCode = "TXN-010004"
	ErrCodeMissingDescription         TransactionErrorCode = "TXN-010005"
	ErrCodeDescriptionTooLong         TransactionErrorCode = "TXN-010006"

	// Access errors (02XXXX)
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-020001"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
