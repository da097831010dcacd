package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	Category      *entity.Category
	Description   *string
	Date          *time.Time
}

// UpdateTransactionOutput represents the updated transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles partial updates of an existing transaction.
type UpdateTransactionUseCase struct {
	transactionRepository adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepository adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{transactionRepository: transactionRepository}
}

// Execute applies the provided fields to a transaction owned by the user. The
// merged result is validated as a whole before persisting.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepository.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}
	if input.Description != nil {
		transaction.Description = strings.TrimSpace(*input.Description)
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}

	if err := validateTransactionFields(transaction.Type, transaction.Amount, transaction.Category, transaction.Description, transaction.Date); err != nil {
		return nil, err
	}

	transaction.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepository.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
