// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Budget and analytics domain errors.
var (
	// ErrNegativeBudget is returned when a negative budget value is supplied.
	ErrNegativeBudget = errors.New("budget must be non-negative")

	// ErrInvalidMonths is returned when the analytics months parameter is below 1.
	ErrInvalidMonths = errors.New("months must be at least 1")

	// ErrEmptyTrend is returned when a summary is requested over an empty trend.
	ErrEmptyTrend = errors.New("trend requires at least one point")

	// ErrInvalidPeriod is returned when a dashboard period is not week, month, or year.
	ErrInvalidPeriod = errors.New("period must be: week, month, or year")

	// ErrInvalidDateRange is returned when a date range ends before it starts.
	ErrInvalidDateRange = errors.New("date range must not end before it starts")
)

// BudgetErrorCode defines error codes for budget and analytics errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeBudget   BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidMonths    BudgetErrorCode = "BGT-010002"
	ErrCodeEmptyTrend       BudgetErrorCode = "BGT-010003"
	ErrCodeInvalidPeriod    BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidDateRange BudgetErrorCode = "BGT-010005"
)

// BudgetError represents a budget or analytics error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
