package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

const topCategoriesLimit = 5

// GetStatsInput represents the input for retrieving account statistics.
type GetStatsInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// TopCategory represents one of the user's highest-spend categories.
type TopCategory struct {
	Category entity.Category
	Total    decimal.Decimal
	Count    int
}

// GetStatsOutput represents lifetime account statistics.
type GetStatsOutput struct {
	TransactionCount int64
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	TopCategories    []TopCategory
	AccountAgeDays   int
}

// GetStatsUseCase computes lifetime account statistics for a user.
type GetStatsUseCase struct {
	userRepository        adapter.UserRepository
	transactionRepository adapter.TransactionRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(
	userRepository adapter.UserRepository,
	transactionRepository adapter.TransactionRepository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
	}
}

// Execute computes totals over the user's full transaction history.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	user, err := uc.userRepository.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	transactions, err := uc.transactionRepository.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	count, err := uc.transactionRepository.CountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	incomeType := entity.TransactionTypeIncome
	expenseType := entity.TransactionTypeExpense
	income := ledger.Aggregate(transactions, ledger.Filter{Type: &incomeType})
	expenses := ledger.Aggregate(transactions, ledger.Filter{Type: &expenseType})

	rollups := ledger.AggregateByCategory(transactions, ledger.Filter{Type: &expenseType})
	if len(rollups) > topCategoriesLimit {
		rollups = rollups[:topCategoriesLimit]
	}
	topCategories := make([]TopCategory, 0, len(rollups))
	for _, r := range rollups {
		topCategories = append(topCategories, TopCategory{Category: r.Category, Total: r.Total, Count: r.Count})
	}

	ageDays := int(input.Now.Sub(user.CreatedAt).Hours() / 24)
	if ageDays < 0 {
		ageDays = 0
	}

	return &GetStatsOutput{
		TransactionCount: count,
		TotalIncome:      income.Total,
		TotalExpenses:    expenses.Total,
		TopCategories:    topCategories,
		AccountAgeDays:   ageDays,
	}, nil
}
