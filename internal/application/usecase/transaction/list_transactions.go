package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	Type      *entity.TransactionType
	Category  *entity.Category
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
	Page      int
	Limit     int
}

// ListTransactionsOutput represents the paginated list result.
type ListTransactionsOutput struct {
	Result *entity.TransactionListResult
}

// ListTransactionsUseCase handles listing transactions with filters and pagination.
type ListTransactionsUseCase struct {
	transactionRepository adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepository adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepository: transactionRepository}
}

// Execute lists the user's transactions matching the filters, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Type != nil && !entity.IsValidTransactionType(*input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be either expense or income",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if input.Category != nil && !entity.IsValidCategory(*input.Category) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCategory,
			fmt.Sprintf("category must be one of the supported categories, got %q", *input.Category),
			domainerror.ErrInvalidTransactionCategory,
		)
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidDateRange,
			"end date must not be before start date",
			domainerror.ErrInvalidDateRange,
		)
	}

	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	result, err := uc.transactionRepository.FindByFilter(ctx,
		adapter.TransactionFilter{
			UserID:    input.UserID,
			Type:      input.Type,
			Category:  input.Category,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Search:    input.Search,
		},
		adapter.TransactionPagination{Page: page, Limit: limit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Result: result}, nil
}
