// Package budget contains use cases for budget management and analytics.
package budget

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

// GetBudgetInput represents the input for retrieving the current budget snapshot.
type GetBudgetInput struct {
	UserID uuid.UUID
	Now    time.Time
}

// GetBudgetOutput represents a budget snapshot for the month containing Now.
type GetBudgetOutput struct {
	Budget          decimal.Decimal
	CurrentExpenses decimal.Decimal
	Remaining       decimal.Decimal
	UsagePercent    float64
	IsOverBudget    bool
	Month           string
	PeriodStart     time.Time
	PeriodEnd       time.Time
}

// GetBudgetUseCase handles computing the current-month budget snapshot.
type GetBudgetUseCase struct {
	userRepository        adapter.UserRepository
	transactionRepository adapter.TransactionRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(
	userRepository adapter.UserRepository,
	transactionRepository adapter.TransactionRepository,
) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
	}
}

// Execute computes the budget snapshot for the calendar month containing input.Now.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	user, err := uc.userRepository.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	from, to := ledger.MonthBounds(input.Now)
	transactions, err := uc.transactionRepository.FindByDateRange(ctx, input.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	expenseType := entity.TransactionTypeExpense
	agg := ledger.Aggregate(transactions, ledger.Filter{Type: &expenseType})

	snapshot := computeSnapshot(user.Budget, agg.Total)
	snapshot.Month = ledger.MonthKey(from)
	snapshot.PeriodStart = from
	snapshot.PeriodEnd = to
	return snapshot, nil
}

// computeSnapshot derives the usage figures for a single month. Usage is zero
// when no budget is set, and the displayed percentage is capped at 100 even
// though the over-budget flag reflects the uncapped comparison.
func computeSnapshot(budget, expenses decimal.Decimal) *GetBudgetOutput {
	usage := 0.0
	if budget.IsPositive() {
		usage, _ = expenses.Div(budget).Mul(decimal.NewFromInt(100)).Float64()
	}

	displayUsage := usage
	if displayUsage > 100 {
		displayUsage = 100
	}

	remaining := budget.Sub(expenses)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return &GetBudgetOutput{
		Budget:          budget,
		CurrentExpenses: expenses,
		Remaining:       remaining,
		UsagePercent:    displayUsage,
		IsOverBudget:    expenses.GreaterThan(budget),
	}
}

// rawUsagePercent returns the uncapped usage percentage, zero when no budget
// is set. Alerting compares against this value, not the capped display one.
func rawUsagePercent(budget, expenses decimal.Decimal) float64 {
	if !budget.IsPositive() {
		return 0
	}
	usage, _ := expenses.Div(budget).Mul(decimal.NewFromInt(100)).Float64()
	return usage
}
