// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
)

// PeriodSummaryResponse represents income and expense totals for a period.
type PeriodSummaryResponse struct {
	TotalIncome      string `json:"total_income"`
	TotalExpenses    string `json:"total_expenses"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transaction_count"`
}

// CategoryStatResponse represents expense totals for one category.
type CategoryStatResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

// TrendPointResponse represents income and expense totals for one month.
type TrendPointResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// DashboardStatsResponse represents the dashboard statistics result.
type DashboardStatsResponse struct {
	Period        string                `json:"period"`
	Summary       PeriodSummaryResponse `json:"summary"`
	CategoryStats []CategoryStatResponse `json:"category_stats"`
	Recent        []TransactionResponse `json:"recent_transactions"`
	MonthlyTrend  []TrendPointResponse  `json:"monthly_trend"`
}

// ToDashboardStatsResponse converts a GetStatsOutput to a DashboardStatsResponse.
func ToDashboardStatsResponse(output *dashboard.GetStatsOutput) DashboardStatsResponse {
	categoryStats := make([]CategoryStatResponse, len(output.CategoryStats))
	for i, stat := range output.CategoryStats {
		categoryStats[i] = CategoryStatResponse{
			Category: string(stat.Category),
			Total:    stat.Total.StringFixed(2),
			Count:    stat.Count,
		}
	}

	recent := make([]TransactionResponse, len(output.Recent))
	for i, txn := range output.Recent {
		recent[i] = ToTransactionResponse(txn)
	}

	trend := make([]TrendPointResponse, len(output.MonthlyTrend))
	for i, point := range output.MonthlyTrend {
		trend[i] = TrendPointResponse{
			Month:    point.Month,
			Income:   point.Income.StringFixed(2),
			Expenses: point.Expenses.StringFixed(2),
		}
	}

	return DashboardStatsResponse{
		Period: output.Period,
		Summary: PeriodSummaryResponse{
			TotalIncome:      output.Summary.TotalIncome.StringFixed(2),
			TotalExpenses:    output.Summary.TotalExpenses.StringFixed(2),
			Balance:          output.Summary.Balance.StringFixed(2),
			TransactionCount: output.Summary.TransactionCount,
		},
		CategoryStats: categoryStats,
		Recent:        recent,
		MonthlyTrend:  trend,
	}
}
