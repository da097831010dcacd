package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/ledger"
)

// alertUsageThreshold is the raw usage percentage at which an alert fires.
const alertUsageThreshold = 80.0

// EvaluateBudgetAlertUseCase checks a user's budget usage after an expense is
// recorded and dispatches an alert email when the threshold is crossed. It
// implements adapter.ExpenseCreatedHook.
type EvaluateBudgetAlertUseCase struct {
	userRepository        adapter.UserRepository
	transactionRepository adapter.TransactionRepository
	notificationService   adapter.NotificationService
}

// NewEvaluateBudgetAlertUseCase creates a new EvaluateBudgetAlertUseCase instance.
func NewEvaluateBudgetAlertUseCase(
	userRepository adapter.UserRepository,
	transactionRepository adapter.TransactionRepository,
	notificationService adapter.NotificationService,
) *EvaluateBudgetAlertUseCase {
	return &EvaluateBudgetAlertUseCase{
		userRepository:        userRepository,
		transactionRepository: transactionRepository,
		notificationService:   notificationService,
	}
}

// NotifyExpenseCreated evaluates the user's current-month usage and sends a
// budget alert when raw usage reaches the threshold. Alerts only fire for
// users with a budget set and email notifications enabled. Dispatch failures
// are logged and never returned to the caller.
func (uc *EvaluateBudgetAlertUseCase) NotifyExpenseCreated(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if !user.HasBudget() || !user.EmailNotifications {
		return nil
	}

	from, to := ledger.MonthBounds(now)
	transactions, err := uc.transactionRepository.FindByDateRange(ctx, userID, from, to)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	expenseType := entity.TransactionTypeExpense
	agg := ledger.Aggregate(transactions, ledger.Filter{Type: &expenseType})

	usage := rawUsagePercent(user.Budget, agg.Total)
	if usage < alertUsageThreshold {
		return nil
	}

	remaining := user.Budget.Sub(agg.Total)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	if err := uc.notificationService.SendBudgetAlert(ctx, adapter.BudgetAlertInput{
		To:              user.Email,
		Name:            user.Name,
		UsagePercent:    usage,
		CurrentExpenses: agg.Total,
		Budget:          user.Budget,
		Remaining:       remaining,
	}); err != nil {
		slog.Error("failed to send budget alert email",
			"user_id", userID,
			"usage_percent", usage,
			"error", err,
		)
	}

	return nil
}
