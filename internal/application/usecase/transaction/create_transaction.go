// Package transaction contains use cases for transaction management.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const maxDescriptionLength = 200

// CreateTransactionInput represents the input for creating a transaction.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    entity.Category
	Description string
	Date        time.Time
}

// CreateTransactionOutput represents the result of creating a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles recording a new transaction.
type CreateTransactionUseCase struct {
	transactionRepository adapter.TransactionRepository
	expenseCreatedHook    adapter.ExpenseCreatedHook
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepository adapter.TransactionRepository,
	expenseCreatedHook adapter.ExpenseCreatedHook,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepository: transactionRepository,
		expenseCreatedHook:    expenseCreatedHook,
	}
}

// Execute validates and persists a new transaction. For expenses, the budget
// alert hook runs after the write; hook errors never fail the operation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Type, input.Amount, input.Category, input.Description, input.Date); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Type,
		input.Amount,
		input.Category,
		strings.TrimSpace(input.Description),
		input.Date,
	)

	if err := uc.transactionRepository.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if transaction.Type == entity.TransactionTypeExpense && uc.expenseCreatedHook != nil {
		if err := uc.expenseCreatedHook.NotifyExpenseCreated(ctx, input.UserID, transaction.Amount, time.Now().UTC()); err != nil {
			slog.Warn("expense created hook failed",
				"user_id", input.UserID,
				"transaction_id", transaction.ID,
				"error", err,
			)
		}
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}

func validateTransactionFields(
	transactionType entity.TransactionType,
	amount decimal.Decimal,
	category entity.Category,
	description string,
	date time.Time,
) error {
	if !entity.IsValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be either expense or income",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a positive number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !entity.IsValidCategory(category) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCategory,
			fmt.Sprintf("category must be one of the supported categories, got %q", category),
			domainerror.ErrInvalidTransactionCategory,
		)
	}

	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}
	if len(trimmed) > maxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must be at most %d characters", maxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	return nil
}
