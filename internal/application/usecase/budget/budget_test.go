package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeUserRepository struct {
	user *entity.User
	err  error
}

func (f *fakeUserRepository) Create(ctx context.Context, user *entity.User) error { return nil }

func (f *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	f.user = user
	return nil
}

func (f *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return f.user != nil, nil
}

type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	err          error
}

func (f *fakeTransactionRepository) Create(ctx context.Context, t *entity.Transaction) error {
	f.transactions = append(f.transactions, t)
	return nil
}

func (f *fakeTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}

func (f *fakeTransactionRepository) FindByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matched []*entity.Transaction
	for _, t := range f.transactions {
		if t.Date.Before(from) || t.Date.After(to) {
			continue
		}
		matched = append(matched, t)
	}
	return matched, nil
}

func (f *fakeTransactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepository) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return int64(len(f.transactions)), nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, t *entity.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeNotificationService struct {
	alerts   []adapter.BudgetAlertInput
	welcomes []adapter.WelcomeEmailInput
	err      error
}

func (f *fakeNotificationService) SendBudgetAlert(ctx context.Context, input adapter.BudgetAlertInput) error {
	if f.err != nil {
		return f.err
	}
	f.alerts = append(f.alerts, input)
	return nil
}

func (f *fakeNotificationService) SendWelcomeEmail(ctx context.Context, input adapter.WelcomeEmailInput) error {
	f.welcomes = append(f.welcomes, input)
	return nil
}

func newTestUser(budget string) *entity.User {
	return &entity.User{
		ID:                 uuid.New(),
		Email:              "jane@example.com",
		Name:               "Jane",
		Budget:             decimal.RequireFromString(budget),
		EmailNotifications: true,
	}
}

func expenseOn(userID uuid.UUID, amount string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:       uuid.New(),
		UserID:   userID,
		Type:     entity.TransactionTypeExpense,
		Amount:   decimal.RequireFromString(amount),
		Category: entity.CategoryFood,
		Date:     date,
	}
}

func TestGetBudgetUseCase_Execute(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("computes usage within budget", func(t *testing.T) {
		user := newTestUser("1000")
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "500", time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)),
			expenseOn(user.ID, "350", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		}}
		uc := NewGetBudgetUseCase(&fakeUserRepository{user: user}, txnRepo)

		output, err := uc.Execute(context.Background(), GetBudgetInput{UserID: user.ID, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.CurrentExpenses.Equal(decimal.RequireFromString("850")) {
			t.Errorf("expected expenses 850, got %s", output.CurrentExpenses)
		}
		if output.UsagePercent != 85 {
			t.Errorf("expected usage 85, got %v", output.UsagePercent)
		}
		if output.IsOverBudget {
			t.Error("expected not over budget")
		}
		if !output.Remaining.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected remaining 150, got %s", output.Remaining)
		}
		if output.Month != "2024-06" {
			t.Errorf("expected month 2024-06, got %s", output.Month)
		}
		if !output.PeriodStart.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected period start 2024-06-01, got %s", output.PeriodStart)
		}
		if output.PeriodEnd.Format("2006-01-02") != "2024-06-30" {
			t.Errorf("expected period end 2024-06-30, got %s", output.PeriodEnd)
		}
	})

	t.Run("zero budget yields zero usage", func(t *testing.T) {
		user := newTestUser("0")
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "400", time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)),
		}}
		uc := NewGetBudgetUseCase(&fakeUserRepository{user: user}, txnRepo)

		output, err := uc.Execute(context.Background(), GetBudgetInput{UserID: user.ID, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.UsagePercent != 0 {
			t.Errorf("expected usage 0, got %v", output.UsagePercent)
		}
		if output.IsOverBudget != true {
			t.Error("expected over budget with expenses and no budget")
		}
	})

	t.Run("caps displayed usage at 100 when over budget", func(t *testing.T) {
		user := newTestUser("1000")
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "1200", time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)),
		}}
		uc := NewGetBudgetUseCase(&fakeUserRepository{user: user}, txnRepo)

		output, err := uc.Execute(context.Background(), GetBudgetInput{UserID: user.ID, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.UsagePercent != 100 {
			t.Errorf("expected capped usage 100, got %v", output.UsagePercent)
		}
		if !output.IsOverBudget {
			t.Error("expected over budget")
		}
		if !output.Remaining.IsZero() {
			t.Errorf("expected remaining 0, got %s", output.Remaining)
		}
	})

	t.Run("ignores transactions outside the current month", func(t *testing.T) {
		user := newTestUser("1000")
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "999", time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC)),
			expenseOn(user.ID, "100", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		}}
		uc := NewGetBudgetUseCase(&fakeUserRepository{user: user}, txnRepo)

		output, err := uc.Execute(context.Background(), GetBudgetInput{UserID: user.ID, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.CurrentExpenses.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected expenses 100, got %s", output.CurrentExpenses)
		}
	})
}

func TestSetBudgetUseCase_Execute(t *testing.T) {
	t.Run("updates budget", func(t *testing.T) {
		user := newTestUser("500")
		repo := &fakeUserRepository{user: user}
		uc := NewSetBudgetUseCase(repo)

		output, err := uc.Execute(context.Background(), SetBudgetInput{
			UserID: user.ID,
			Budget: decimal.RequireFromString("1500"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Budget.Equal(decimal.RequireFromString("1500")) {
			t.Errorf("expected budget 1500, got %s", output.Budget)
		}
		if !repo.user.Budget.Equal(decimal.RequireFromString("1500")) {
			t.Errorf("expected persisted budget 1500, got %s", repo.user.Budget)
		}
	})

	t.Run("rejects negative budget", func(t *testing.T) {
		uc := NewSetBudgetUseCase(&fakeUserRepository{user: newTestUser("500")})

		_, err := uc.Execute(context.Background(), SetBudgetInput{
			UserID: uuid.New(),
			Budget: decimal.RequireFromString("-1"),
		})
		if !errors.Is(err, domainerror.ErrNegativeBudget) {
			t.Errorf("expected ErrNegativeBudget, got %v", err)
		}
	})

	t.Run("allows zero to clear the budget", func(t *testing.T) {
		uc := NewSetBudgetUseCase(&fakeUserRepository{user: newTestUser("500")})

		output, err := uc.Execute(context.Background(), SetBudgetInput{
			UserID: uuid.New(),
			Budget: decimal.Zero,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Budget.IsZero() {
			t.Errorf("expected zero budget, got %s", output.Budget)
		}
	})
}

func TestGetAnalyticsUseCase_Execute(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	monthlyExpenses := func(userID uuid.UUID, amounts ...string) []*entity.Transaction {
		transactions := make([]*entity.Transaction, 0, len(amounts))
		for i, amount := range amounts {
			month := time.Month(int(time.January) + i)
			transactions = append(transactions, expenseOn(userID, amount, time.Date(2024, month, 10, 0, 0, 0, 0, time.UTC)))
		}
		return transactions
	}

	t.Run("computes trend summary and increase recommendation", func(t *testing.T) {
		user := newTestUser("1000")
		txnRepo := &fakeTransactionRepository{
			transactions: monthlyExpenses(user.ID, "900", "1100", "950", "1300", "800", "1000"),
		}
		uc := NewGetAnalyticsUseCase(&fakeUserRepository{user: user}, txnRepo)

		output, err := uc.Execute(context.Background(), GetAnalyticsInput{UserID: user.ID, Months: 6, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Trend) != 6 {
			t.Fatalf("expected 6 trend points, got %d", len(output.Trend))
		}
		if output.Trend[0].Month != "2024-01" || output.Trend[5].Month != "2024-06" {
			t.Errorf("expected trend 2024-01..2024-06, got %s..%s", output.Trend[0].Month, output.Trend[5].Month)
		}
		if !output.Trend[3].IsOverBudget {
			t.Error("expected April (1300) to be over budget")
		}
		if output.Trend[0].IsOverBudget {
			t.Error("expected January (900) to be within budget")
		}
		if !output.Trend[0].Savings.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected January savings 100, got %s", output.Trend[0].Savings)
		}
		if !output.Trend[3].Savings.IsZero() {
			t.Errorf("expected April savings 0, got %s", output.Trend[3].Savings)
		}

		if !output.Summary.AverageExpenses.Equal(decimal.RequireFromString("1008.33")) {
			t.Errorf("expected average 1008.33, got %s", output.Summary.AverageExpenses)
		}
		if output.Summary.MonthsOverBudget != 2 {
			t.Errorf("expected 2 months over budget, got %d", output.Summary.MonthsOverBudget)
		}
		if output.Summary.AdherenceRate != 66.67 {
			t.Errorf("expected adherence 66.67, got %v", output.Summary.AdherenceRate)
		}
		if !output.Summary.TotalSavings.Equal(decimal.RequireFromString("350")) {
			t.Errorf("expected total savings 350, got %s", output.Summary.TotalSavings)
		}

		if len(output.Recommendations) != 1 {
			t.Fatalf("expected 1 recommendation, got %d", len(output.Recommendations))
		}
		rec := output.Recommendations[0]
		if rec.Type != RecommendationIncreaseBudget {
			t.Errorf("expected increase_budget, got %s", rec.Type)
		}
		if !rec.SuggestedBudget.Equal(decimal.RequireFromString("1110")) {
			t.Errorf("expected suggested budget 1110, got %s", rec.SuggestedBudget)
		}
	})

	t.Run("recommends lowering an oversized budget", func(t *testing.T) {
		user := newTestUser("2000")
		txnRepo := &fakeTransactionRepository{
			transactions: monthlyExpenses(user.ID, "1000", "1000", "1000"),
		}
		uc := NewGetAnalyticsUseCase(&fakeUserRepository{user: user}, txnRepo)

		output, err := uc.Execute(context.Background(), GetAnalyticsInput{UserID: user.ID, Months: 3, Now: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Recommendations) != 1 {
			t.Fatalf("expected 1 recommendation, got %d", len(output.Recommendations))
		}
		rec := output.Recommendations[0]
		if rec.Type != RecommendationOptimizeBudget {
			t.Errorf("expected optimize_budget, got %s", rec.Type)
		}
		if !rec.SuggestedBudget.Equal(decimal.RequireFromString("1200")) {
			t.Errorf("expected suggested budget 1200, got %s", rec.SuggestedBudget)
		}
	})

	t.Run("recommends lowering the budget when nothing was spent", func(t *testing.T) {
		user := newTestUser("1000")
		uc := NewGetAnalyticsUseCase(&fakeUserRepository{user: user}, &fakeTransactionRepository{})

		output, err := uc.Execute(context.Background(), GetAnalyticsInput{UserID: user.ID, Months: 2, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Recommendations) != 1 {
			t.Fatalf("expected 1 recommendation, got %d", len(output.Recommendations))
		}
		if output.Recommendations[0].Type != RecommendationOptimizeBudget {
			t.Errorf("expected optimize_budget, got %s", output.Recommendations[0].Type)
		}
	})

	t.Run("recommends an increase when spending without a budget", func(t *testing.T) {
		user := newTestUser("0")
		txnRepo := &fakeTransactionRepository{
			transactions: monthlyExpenses(user.ID, "500", "500"),
		}
		uc := NewGetAnalyticsUseCase(&fakeUserRepository{user: user}, txnRepo)

		output, err := uc.Execute(context.Background(), GetAnalyticsInput{UserID: user.ID, Months: 2, Now: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Recommendations) != 1 {
			t.Fatalf("expected 1 recommendation, got %d", len(output.Recommendations))
		}
		rec := output.Recommendations[0]
		if rec.Type != RecommendationIncreaseBudget {
			t.Errorf("expected increase_budget, got %s", rec.Type)
		}
		if !rec.SuggestedBudget.Equal(decimal.RequireFromString("550")) {
			t.Errorf("expected suggested budget 550, got %s", rec.SuggestedBudget)
		}
	})

	t.Run("no recommendations when spending matches budget", func(t *testing.T) {
		user := newTestUser("1000")
		txnRepo := &fakeTransactionRepository{
			transactions: monthlyExpenses(user.ID, "1000", "1000"),
		}
		uc := NewGetAnalyticsUseCase(&fakeUserRepository{user: user}, txnRepo)

		output, err := uc.Execute(context.Background(), GetAnalyticsInput{UserID: user.ID, Months: 2, Now: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %d", len(output.Recommendations))
		}
	})

	t.Run("months without transactions report zero expenses", func(t *testing.T) {
		user := newTestUser("1000")
		uc := NewGetAnalyticsUseCase(&fakeUserRepository{user: user}, &fakeTransactionRepository{})

		output, err := uc.Execute(context.Background(), GetAnalyticsInput{UserID: user.ID, Months: 3, Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, point := range output.Trend {
			if !point.Expenses.IsZero() {
				t.Errorf("expected zero expenses for %s, got %s", point.Month, point.Expenses)
			}
			if point.IsOverBudget {
				t.Errorf("expected %s within budget", point.Month)
			}
		}
		if output.Summary.AdherenceRate != 100 {
			t.Errorf("expected adherence 100, got %v", output.Summary.AdherenceRate)
		}
	})

	t.Run("rejects non-positive months", func(t *testing.T) {
		uc := NewGetAnalyticsUseCase(&fakeUserRepository{user: newTestUser("1000")}, &fakeTransactionRepository{})

		_, err := uc.Execute(context.Background(), GetAnalyticsInput{UserID: uuid.New(), Months: 0, Now: now})
		if !errors.Is(err, domainerror.ErrInvalidMonths) {
			t.Errorf("expected ErrInvalidMonths, got %v", err)
		}
	})

	t.Run("window crossing a year boundary", func(t *testing.T) {
		user := newTestUser("1000")
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "700", time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)),
			expenseOn(user.ID, "800", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)),
		}}
		uc := NewGetAnalyticsUseCase(&fakeUserRepository{user: user}, txnRepo)

		output, err := uc.Execute(context.Background(), GetAnalyticsInput{
			UserID: user.ID,
			Months: 4,
			Now:    time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Trend[0].Month != "2024-11" {
			t.Errorf("expected first month 2024-11, got %s", output.Trend[0].Month)
		}
		if !output.Trend[0].Expenses.Equal(decimal.RequireFromString("700")) {
			t.Errorf("expected 700 in 2024-11, got %s", output.Trend[0].Expenses)
		}
		if !output.Trend[2].Expenses.Equal(decimal.RequireFromString("800")) {
			t.Errorf("expected 800 in 2025-01, got %s", output.Trend[2].Expenses)
		}
	})
}

func TestEvaluateBudgetAlertUseCase_NotifyExpenseCreated(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("sends alert at threshold", func(t *testing.T) {
		user := newTestUser("1000")
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "800", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		}}
		notifier := &fakeNotificationService{}
		uc := NewEvaluateBudgetAlertUseCase(&fakeUserRepository{user: user}, txnRepo, notifier)

		if err := uc.NotifyExpenseCreated(context.Background(), user.ID, decimal.RequireFromString("800"), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifier.alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(notifier.alerts))
		}
		if notifier.alerts[0].UsagePercent != 80 {
			t.Errorf("expected usage 80, got %v", notifier.alerts[0].UsagePercent)
		}
	})

	t.Run("reports uncapped usage when over budget", func(t *testing.T) {
		user := newTestUser("1000")
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "1200", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		}}
		notifier := &fakeNotificationService{}
		uc := NewEvaluateBudgetAlertUseCase(&fakeUserRepository{user: user}, txnRepo, notifier)

		if err := uc.NotifyExpenseCreated(context.Background(), user.ID, decimal.RequireFromString("1200"), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifier.alerts) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(notifier.alerts))
		}
		if notifier.alerts[0].UsagePercent != 120 {
			t.Errorf("expected usage 120, got %v", notifier.alerts[0].UsagePercent)
		}
		if !notifier.alerts[0].Remaining.IsZero() {
			t.Errorf("expected remaining 0, got %s", notifier.alerts[0].Remaining)
		}
	})

	t.Run("no alert below threshold", func(t *testing.T) {
		user := newTestUser("1000")
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "799", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		}}
		notifier := &fakeNotificationService{}
		uc := NewEvaluateBudgetAlertUseCase(&fakeUserRepository{user: user}, txnRepo, notifier)

		if err := uc.NotifyExpenseCreated(context.Background(), user.ID, decimal.RequireFromString("799"), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifier.alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(notifier.alerts))
		}
	})

	t.Run("no alert without a budget", func(t *testing.T) {
		user := newTestUser("0")
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "5000", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		}}
		notifier := &fakeNotificationService{}
		uc := NewEvaluateBudgetAlertUseCase(&fakeUserRepository{user: user}, txnRepo, notifier)

		if err := uc.NotifyExpenseCreated(context.Background(), user.ID, decimal.RequireFromString("5000"), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifier.alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(notifier.alerts))
		}
	})

	t.Run("no alert when notifications disabled", func(t *testing.T) {
		user := newTestUser("1000")
		user.EmailNotifications = false
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "900", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		}}
		notifier := &fakeNotificationService{}
		uc := NewEvaluateBudgetAlertUseCase(&fakeUserRepository{user: user}, txnRepo, notifier)

		if err := uc.NotifyExpenseCreated(context.Background(), user.ID, decimal.RequireFromString("900"), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(notifier.alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(notifier.alerts))
		}
	})

	t.Run("dispatch failure is swallowed", func(t *testing.T) {
		user := newTestUser("1000")
		txnRepo := &fakeTransactionRepository{transactions: []*entity.Transaction{
			expenseOn(user.ID, "950", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)),
		}}
		notifier := &fakeNotificationService{err: errors.New("provider unavailable")}
		uc := NewEvaluateBudgetAlertUseCase(&fakeUserRepository{user: user}, txnRepo, notifier)

		if err := uc.NotifyExpenseCreated(context.Background(), user.ID, decimal.RequireFromString("950"), now); err != nil {
			t.Errorf("expected nil error on dispatch failure, got %v", err)
		}
	})
}
