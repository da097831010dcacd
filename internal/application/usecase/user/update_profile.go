package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for updating a user profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID             uuid.UUID
	Name               *string
	EmailNotifications *bool
}

// UpdateProfileOutput represents the updated profile.
type UpdateProfileOutput struct {
	Name               string
	EmailNotifications bool
}

// UpdateProfileUseCase handles partial updates of a user's profile.
type UpdateProfileUseCase struct {
	userRepository adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepository adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepository: userRepository}
}

// Execute applies the provided fields to the user's profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
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

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeMissingFields,
				"name must not be empty",
				nil,
			)
		}
		user.Name = name
	}
	if input.EmailNotifications != nil {
		user.EmailNotifications = *input.EmailNotifications
	}

	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepository.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{
		Name:               user.Name,
		EmailNotifications: user.EmailNotifications,
	}, nil
}
