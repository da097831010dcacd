// Package dashboard contains use cases for dashboard statistics.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

// Supported dashboard periods.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

const recentTransactionsLimit = 5

// GetStatsInput represents the input for retrieving dashboard statistics.
type GetStatsInput struct {
	UserID uuid.UUID
	Period string
	Now    time.Time
}

// PeriodSummary aggregates income and expenses over the selected period.
type PeriodSummary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	Balance          decimal.Decimal
	TransactionCount int
}

// CategoryStat represents expense totals for one category within the period.
type CategoryStat struct {
	Category entity.Category
	Total    decimal.Decimal
	Count    int
}

// TrendPoint represents income and expense totals for one calendar month.
type TrendPoint struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// GetStatsOutput represents the dashboard statistics result.
type GetStatsOutput struct {
	Period        string
	Summary       PeriodSummary
	CategoryStats []CategoryStat
	Recent        []*entity.Transaction
	MonthlyTrend  []TrendPoint
}

// GetStatsUseCase computes dashboard statistics for a user.
type GetStatsUseCase struct {
	transactionRepository adapter.TransactionRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(transactionRepository adapter.TransactionRepository) *GetStatsUseCase {
	return &GetStatsUseCase{transactionRepository: transactionRepository}
}

// Execute computes period summary, expense breakdown by category, the most
// recent transactions, and a monthly trend since the start of the year.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	periodStart, err := resolvePeriodStart(input.Period, input.Now)
	if err != nil {
		return nil, err
	}

	yearStart := time.Date(input.Now.Year(), time.January, 1, 0, 0, 0, 0, input.Now.Location())
	fetchStart := yearStart
	if periodStart.Before(fetchStart) {
		fetchStart = periodStart
	}
	// The trend covers the whole current month, including transactions dated
	// after Now.
	_, fetchEnd := ledger.MonthBounds(input.Now)
	transactions, err := uc.transactionRepository.FindByDateRange(ctx, input.UserID, fetchStart, fetchEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	recent, err := uc.transactionRepository.FindRecent(ctx, input.UserID, recentTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	incomeType := entity.TransactionTypeIncome
	expenseType := entity.TransactionTypeExpense

	income := ledger.Aggregate(transactions, ledger.Filter{Type: &incomeType, From: periodStart, To: input.Now})
	expenses := ledger.Aggregate(transactions, ledger.Filter{Type: &expenseType, From: periodStart, To: input.Now})

	rollups := ledger.AggregateByCategory(transactions, ledger.Filter{Type: &expenseType, From: periodStart, To: input.Now})
	categoryStats := make([]CategoryStat, 0, len(rollups))
	for _, r := range rollups {
		categoryStats = append(categoryStats, CategoryStat{Category: r.Category, Total: r.Total, Count: r.Count})
	}

	return &GetStatsOutput{
		Period: input.Period,
		Summary: PeriodSummary{
			TotalIncome:      income.Total,
			TotalExpenses:    expenses.Total,
			Balance:          income.Total.Sub(expenses.Total),
			TransactionCount: income.Count + expenses.Count,
		},
		CategoryStats: categoryStats,
		Recent:        recent,
		MonthlyTrend:  monthlyTrend(transactions, input.Now),
	}, nil
}

// resolvePeriodStart resolves the inclusive start of the summary window.
func resolvePeriodStart(period string, now time.Time) (time.Time, error) {
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), nil
	case PeriodMonth:
		start, _ := ledger.MonthBounds(now)
		return start, nil
	case PeriodYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be one of: week, month, year",
			domainerror.ErrInvalidPeriod,
		)
	}
}

// monthlyTrend aggregates income and expenses per calendar month from January
// of the current year through the month containing now.
func monthlyTrend(transactions []*entity.Transaction, now time.Time) []TrendPoint {
	incomeType := entity.TransactionTypeIncome
	expenseType := entity.TransactionTypeExpense

	months := int(now.Month())
	trend := make([]TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		from, to := ledger.MonthBoundsAt(now, i)
		income := ledger.Aggregate(transactions, ledger.Filter{Type: &incomeType, From: from, To: to})
		expenses := ledger.Aggregate(transactions, ledger.Filter{Type: &expenseType, From: from, To: to})
		trend = append(trend, TrendPoint{
			Month:    ledger.MonthKey(from),
			Income:   income.Total,
			Expenses: expenses.Total,
		})
	}
	return trend
}
