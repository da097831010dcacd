package budget

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

// Recommendation types emitted by the analytics summary.
const (
	RecommendationIncreaseBudget = "increase_budget"
	RecommendationOptimizeBudget = "optimize_budget"
)

// GetAnalyticsInput represents the input for retrieving budget analytics.
type GetAnalyticsInput struct {
	UserID uuid.UUID
	Months int
	Now    time.Time
}

// MonthlyPoint represents one month of the spending trend, oldest first.
type MonthlyPoint struct {
	Month        string
	Expenses     decimal.Decimal
	Budget       decimal.Decimal
	Savings      decimal.Decimal
	UsagePercent float64
	IsOverBudget bool
}

// Recommendation represents a suggested budget adjustment.
type Recommendation struct {
	Type            string
	Message         string
	SuggestedBudget decimal.Decimal
}

// AnalyticsSummary aggregates the trend into headline figures.
type AnalyticsSummary struct {
	AverageExpenses  decimal.Decimal
	TotalSavings     decimal.Decimal
	MonthsOverBudget int
	AdherenceRate    float64
}

// GetAnalyticsOutput represents the multi-month budget analytics result.
type GetAnalyticsOutput struct {
	Trend           []MonthlyPoint
	Summary         AnalyticsSummary
	Recommendations []Recommendation
}

// GetAnalyticsUseCase computes the spending trend, summary and budget
// recommendations over a trailing window of calendar months.
type GetAnalyticsUseCase struct {
	userRepository        adapter.UserRepository
	transactionRepository adapter.TransactionRepository
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(
	userRepository adapter.UserRepository,
	transactionRepository adapter.TransactionRepository,
) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
	}
}

// Execute computes analytics over the input.Months calendar months ending with
// the month containing input.Now. The current budget applies retroactively to
// every month in the window.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	if input.Months < 1 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonths,
			"months must be a positive integer",
			domainerror.ErrInvalidMonths,
		)
	}

	user, err := uc.userRepository.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	windowStart, _ := ledger.MonthBoundsAt(input.Now, input.Months-1)
	_, windowEnd := ledger.MonthBounds(input.Now)
	transactions, err := uc.transactionRepository.FindByDateRange(ctx, input.UserID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	expenseType := entity.TransactionTypeExpense
	trend := make([]MonthlyPoint, 0, input.Months)
	for i := input.Months - 1; i >= 0; i-- {
		from, to := ledger.MonthBoundsAt(input.Now, i)
		agg := ledger.Aggregate(transactions, ledger.Filter{Type: &expenseType, From: from, To: to})
		snapshot := computeSnapshot(user.Budget, agg.Total)
		trend = append(trend, MonthlyPoint{
			Month:        ledger.MonthKey(from),
			Expenses:     agg.Total,
			Budget:       user.Budget,
			Savings:      snapshot.Remaining,
			UsagePercent: snapshot.UsagePercent,
			IsOverBudget: snapshot.IsOverBudget,
		})
	}

	summary, err := summarize(trend)
	if err != nil {
		return nil, err
	}

	return &GetAnalyticsOutput{
		Trend:           trend,
		Summary:         *summary,
		Recommendations: recommend(user.Budget, summary.AverageExpenses),
	}, nil
}

// summarize reduces the trend into average spending and budget adherence.
func summarize(trend []MonthlyPoint) (*AnalyticsSummary, error) {
	if len(trend) == 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyTrend,
			"cannot summarize an empty trend",
			domainerror.ErrEmptyTrend,
		)
	}

	total := decimal.Zero
	savings := decimal.Zero
	overCount := 0
	for _, point := range trend {
		total = total.Add(point.Expenses)
		savings = savings.Add(point.Savings)
		if point.IsOverBudget {
			overCount++
		}
	}

	months := int64(len(trend))
	average := total.Div(decimal.NewFromInt(months)).Round(2)
	adherence := float64(len(trend)-overCount) / float64(len(trend)) * 100

	return &AnalyticsSummary{
		AverageExpenses:  average,
		TotalSavings:     savings,
		MonthsOverBudget: overCount,
		AdherenceRate:    math.Round(adherence*100) / 100,
	}, nil
}

// recommend derives budget adjustment suggestions from average spending. The
// two rules are evaluated independently and can both fire in the same result.
func recommend(budget, averageExpenses decimal.Decimal) []Recommendation {
	recommendations := make([]Recommendation, 0, 2)

	if averageExpenses.GreaterThan(budget) {
		suggested := averageExpenses.Mul(decimal.NewFromFloat(1.1)).Ceil()
		recommendations = append(recommendations, Recommendation{
			Type:            RecommendationIncreaseBudget,
			Message:         fmt.Sprintf("Your average spending of %s exceeds your budget. Consider increasing it to %s.", averageExpenses.StringFixed(2), suggested.StringFixed(2)),
			SuggestedBudget: suggested,
		})
	}

	threshold := averageExpenses.Mul(decimal.NewFromFloat(1.5))
	if budget.GreaterThan(threshold) {
		suggested := averageExpenses.Mul(decimal.NewFromFloat(1.2)).Ceil()
		recommendations = append(recommendations, Recommendation{
			Type:            RecommendationOptimizeBudget,
			Message:         fmt.Sprintf("Your budget is well above your average spending of %s. You could lower it to %s.", averageExpenses.StringFixed(2), suggested.StringFixed(2)),
			SuggestedBudget: suggested,
		})
	}

	return recommendations
}
