// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/user"
)

// UpdateProfileRequest represents the request body for profile update.
type UpdateProfileRequest struct {
	Name               *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
}

// ChangePasswordRequest represents the request body for password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ProfileResponse represents the user profile.
type ProfileResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Budget             string    `json:"budget"`
	EmailNotifications bool      `json:"email_notifications"`
	CreatedAt          time.Time `json:"created_at"`
}

// UpdateProfileResponse represents the response for profile update.
type UpdateProfileResponse struct {
	Name               string `json:"name"`
	EmailNotifications bool   `json:"email_notifications"`
}

// ChangePasswordResponse represents the response for password change.
type ChangePasswordResponse struct {
	Message string `json:"message"`
}

// TopCategoryResponse represents one of the user's highest-spend categories.
type TopCategoryResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

// UserStatsResponse represents lifetime account statistics.
type UserStatsResponse struct {
	TransactionCount int64                 `json:"transaction_count"`
	TotalIncome      string                `json:"total_income"`
	TotalExpenses    string                `json:"total_expenses"`
	TopCategories    []TopCategoryResponse `json:"top_categories"`
	AccountAgeDays   int                   `json:"account_age_days"`
}

// ToProfileResponse converts a GetProfileOutput to a ProfileResponse.
func ToProfileResponse(output *user.GetProfileOutput) ProfileResponse {
	return ProfileResponse{
		ID:                 output.ID.String(),
		Email:              output.Email,
		Name:               output.Name,
		Budget:             output.Budget.StringFixed(2),
		EmailNotifications: output.EmailNotifications,
		CreatedAt:          output.CreatedAt,
	}
}

// ToUserStatsResponse converts a GetStatsOutput to a UserStatsResponse.
func ToUserStatsResponse(output *user.GetStatsOutput) UserStatsResponse {
	topCategories := make([]TopCategoryResponse, len(output.TopCategories))
	for i, category := range output.TopCategories {
		topCategories[i] = TopCategoryResponse{
			Category: string(category.Category),
			Total:    category.Total.StringFixed(2),
			Count:    category.Count,
		}
	}

	return UserStatsResponse{
		TransactionCount: output.TransactionCount,
		TotalIncome:      output.TotalIncome.StringFixed(2),
		TotalExpenses:    output.TotalExpenses.StringFixed(2),
		TopCategories:    topCategories,
		AccountAgeDays:   output.AccountAgeDays,
	}
}
