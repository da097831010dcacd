package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SetBudgetInput represents the input for updating the monthly budget.
type SetBudgetInput struct {
	UserID uuid.UUID
	Budget decimal.Decimal
}

// SetBudgetOutput represents the result of a budget update.
type SetBudgetOutput struct {
	Budget decimal.Decimal
}

// SetBudgetUseCase handles updating a user's monthly budget.
type SetBudgetUseCase struct {
	userRepository adapter.UserRepository
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(userRepository adapter.UserRepository) *SetBudgetUseCase {
	return &SetBudgetUseCase{userRepository: userRepository}
}

// Execute updates the user's monthly budget. A budget of zero means no budget
// is configured.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if input.Budget.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudget,
			"budget must be a non-negative number",
			domainerror.ErrNegativeBudget,
		)
	}

	user, err := uc.userRepository.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Budget = input.Budget
	if err := uc.userRepository.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &SetBudgetOutput{Budget: user.Budget}, nil
}
