// Package user contains use cases for user profile management.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetProfileInput represents the input for retrieving a user profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the user profile.
type GetProfileOutput struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	Budget             decimal.Decimal
	EmailNotifications bool
	CreatedAt          time.Time
}

// GetProfileUseCase handles retrieving a user's profile.
type GetProfileUseCase struct {
	userRepository adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepository adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepository: userRepository}
}

// Execute retrieves the profile of the given user.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := uc.userRepository.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &GetProfileOutput{
		ID:                 user.ID,
		Email:              user.Email,
		Name:               user.Name,
		Budget:             user.Budget,
		EmailNotifications: user.EmailNotifications,
		CreatedAt:          user.CreatedAt,
	}, nil
}
