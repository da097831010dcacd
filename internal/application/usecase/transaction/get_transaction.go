package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetTransactionInput represents the input for retrieving a single transaction.
type GetTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// GetTransactionOutput represents the retrieved transaction.
type GetTransactionOutput struct {
	Transaction *entity.Transaction
}

// GetTransactionUseCase handles retrieving a single transaction.
type GetTransactionUseCase struct {
	transactionRepository adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepository adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{transactionRepository: transactionRepository}
}

// Execute retrieves a transaction owned by the given user. Transactions owned
// by other users are reported as not found.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
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
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	return &GetTransactionOutput{Transaction: transaction}, nil
}
