// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/budget"
)

// SetBudgetRequest represents the request body for setting the monthly budget.
type SetBudgetRequest struct {
	Budget float64 `json:"budget"`
}

// SetBudgetResponse represents the response for setting the monthly budget.
type SetBudgetResponse struct {
	Budget string `json:"budget"`
}

// BudgetSnapshotResponse represents the current-month budget snapshot.
type BudgetSnapshotResponse struct {
	Budget          string  `json:"budget"`
	CurrentExpenses string  `json:"current_expenses"`
	Remaining       string  `json:"remaining"`
	UsagePercent    float64 `json:"usage_percent"`
	IsOverBudget    bool    `json:"is_over_budget"`
	Month           string  `json:"month"`
	PeriodStart     string  `json:"period_start"`
	PeriodEnd       string  `json:"period_end"`
}

// MonthlyPointResponse represents one month of the analytics trend.
type MonthlyPointResponse struct {
	Month        string  `json:"month"`
	Expenses     string  `json:"expenses"`
	Budget       string  `json:"budget"`
	Savings      string  `json:"savings"`
	UsagePercent float64 `json:"usage_percent"`
	IsOverBudget bool    `json:"is_over_budget"`
}

// AnalyticsSummaryResponse represents the analytics headline figures.
type AnalyticsSummaryResponse struct {
	AverageExpenses  string  `json:"average_expenses"`
	TotalSavings     string  `json:"total_savings"`
	MonthsOverBudget int     `json:"months_over_budget"`
	AdherenceRate    float64 `json:"adherence_rate"`
}

// RecommendationResponse represents a budget adjustment suggestion.
type RecommendationResponse struct {
	Type            string `json:"type"`
	Message         string `json:"message"`
	SuggestedBudget string `json:"suggested_budget"`
}

// AnalyticsResponse represents the budget analytics result.
type AnalyticsResponse struct {
	Trend           []MonthlyPointResponse   `json:"trend"`
	Summary         AnalyticsSummaryResponse `json:"summary"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// ToBudgetSnapshotResponse converts a GetBudgetOutput to a BudgetSnapshotResponse.
func ToBudgetSnapshotResponse(output *budget.GetBudgetOutput) BudgetSnapshotResponse {
	return BudgetSnapshotResponse{
		Budget:          output.Budget.StringFixed(2),
		CurrentExpenses: output.CurrentExpenses.StringFixed(2),
		Remaining:       output.Remaining.StringFixed(2),
		UsagePercent:    output.UsagePercent,
		IsOverBudget:    output.IsOverBudget,
		Month:           output.Month,
		PeriodStart:     output.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       output.PeriodEnd.Format("2006-01-02"),
	}
}

// ToAnalyticsResponse converts a GetAnalyticsOutput to an AnalyticsResponse.
func ToAnalyticsResponse(output *budget.GetAnalyticsOutput) AnalyticsResponse {
	trend := make([]MonthlyPointResponse, len(output.Trend))
	for i, point := range output.Trend {
		trend[i] = MonthlyPointResponse{
			Month:        point.Month,
			Expenses:     point.Expenses.StringFixed(2),
			Budget:       point.Budget.StringFixed(2),
			Savings:      point.Savings.StringFixed(2),
			UsagePercent: point.UsagePercent,
			IsOverBudget: point.IsOverBudget,
		}
	}

	recommendations := make([]RecommendationResponse, len(output.Recommendations))
	for i, rec := range output.Recommendations {
		recommendations[i] = RecommendationResponse{
			Type:            rec.Type,
			Message:         rec.Message,
			SuggestedBudget: rec.SuggestedBudget.StringFixed(2),
		}
	}

	return AnalyticsResponse{
		Trend: trend,
		Summary: AnalyticsSummaryResponse{
			AverageExpenses:  output.Summary.AverageExpenses.StringFixed(2),
			TotalSavings:     output.Summary.TotalSavings.StringFixed(2),
			MonthsOverBudget: output.Summary.MonthsOverBudget,
			AdherenceRate:    output.Summary.AdherenceRate,
		},
		Recommendations: recommendations,
	}
}
