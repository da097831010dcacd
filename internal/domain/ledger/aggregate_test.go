package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func txn(t *testing.T, txnType entity.TransactionType, amount string, category entity.Category, date string) *entity.Transaction {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("invalid date %q: %v", date, err)
	}
	return entity.NewTransaction(uuid.New(), txnType, decimal.RequireFromString(amount), category, "test", d)
}

func TestAggregate(t *testing.T) {
	transactions := []*entity.Transaction{
		txn(t, entity.TransactionTypeExpense, "300.00", entity.CategoryFood, "2025-03-05"),
		txn(t, entity.TransactionTypeExpense, "700.00", entity.CategoryRent, "2025-03-01"),
		txn(t, entity.TransactionTypeIncome, "2500.00", entity.CategorySalary, "2025-03-01"),
		txn(t, entity.TransactionTypeExpense, "50.00", entity.CategoryFood, "2025-04-02"),
	}

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)

	t.Run("sums a single type over a closed interval", func(t *testing.T) {
		result := Aggregate(transactions, TypeFilter(entity.TransactionTypeExpense, from, to))
		if !result.Total.Equal(decimal.RequireFromString("1000.00")) {
			t.Errorf("expected total 1000.00, got %s", result.Total)
		}
		if result.Count != 2 {
			t.Errorf("expected count 2, got %d", result.Count)
		}
	})

	t.Run("income and expense do not mix", func(t *testing.T) {
		result := Aggregate(transactions, TypeFilter(entity.TransactionTypeIncome, from, to))
		if !result.Total.Equal(decimal.RequireFromString("2500.00")) {
			t.Errorf("expected total 2500.00, got %s", result.Total)
		}
	})

	t.Run("empty match set yields zero result", func(t *testing.T) {
		result := Aggregate(nil, TypeFilter(entity.TransactionTypeExpense, from, to))
		if !result.Total.IsZero() || result.Count != 0 {
			t.Errorf("expected zero aggregation, got total=%s count=%d", result.Total, result.Count)
		}
	})

	t.Run("date bounds are inclusive on both ends", func(t *testing.T) {
		first := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		result := Aggregate(transactions, Filter{From: first, To: last})
		if result.Count != 2 {
			t.Errorf("expected 2 transactions on the boundary day, got %d", result.Count)
		}
	})

	t.Run("zero bounds leave the interval open", func(t *testing.T) {
		result := Aggregate(transactions, Filter{})
		if result.Count != 4 {
			t.Errorf("expected all 4 transactions, got %d", result.Count)
		}
	})

	t.Run("category filter narrows the match", func(t *testing.T) {
		food := entity.CategoryFood
		result := Aggregate(transactions, Filter{Category: &food})
		if !result.Total.Equal(decimal.RequireFromString("350.00")) {
			t.Errorf("expected total 350.00, got %s", result.Total)
		}
	})
}

func TestAggregateByCategory(t *testing.T) {
	transactions := []*entity.Transaction{
		txn(t, entity.TransactionTypeExpense, "100.00", entity.CategoryFood, "2025-03-05"),
		txn(t, entity.TransactionTypeExpense, "100.00", entity.CategoryFood, "2025-03-10"),
		txn(t, entity.TransactionTypeExpense, "100.00", entity.CategoryFood, "2025-03-15"),
		txn(t, entity.TransactionTypeExpense, "700.00", entity.CategoryRent, "2025-03-01"),
		txn(t, entity.TransactionTypeIncome, "2500.00", entity.CategorySalary, "2025-03-01"),
	}

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	filter := TypeFilter(entity.TransactionTypeExpense, from, to)

	t.Run("orders rollups by total descending", func(t *testing.T) {
		rollups := AggregateByCategory(transactions, filter)
		if len(rollups) != 2 {
			t.Fatalf("expected 2 rollups, got %d", len(rollups))
		}
		if rollups[0].Category != entity.CategoryRent || !rollups[0].Total.Equal(decimal.RequireFromString("700.00")) {
			t.Errorf("expected Rent:700.00 first, got %s:%s", rollups[0].Category, rollups[0].Total)
		}
		if rollups[1].Category != entity.CategoryFood || rollups[1].Count != 3 {
			t.Errorf("expected Food with 3 records second, got %s with %d", rollups[1].Category, rollups[1].Count)
		}
	})

	t.Run("ties broken by category name ascending", func(t *testing.T) {
		tied := []*entity.Transaction{
			txn(t, entity.TransactionTypeExpense, "50.00", entity.CategoryTravel, "2025-03-02"),
			txn(t, entity.TransactionTypeExpense, "50.00", entity.CategoryBills, "2025-03-03"),
			txn(t, entity.TransactionTypeExpense, "50.00", entity.CategoryShopping, "2025-03-04"),
		}
		rollups := AggregateByCategory(tied, filter)
		want := []entity.Category{entity.CategoryBills, entity.CategoryShopping, entity.CategoryTravel}
		for i, category := range want {
			if rollups[i].Category != category {
				t.Errorf("position %d: expected %s, got %s", i, category, rollups[i].Category)
			}
		}
	})

	t.Run("rollup totals sum to the unscoped aggregation", func(t *testing.T) {
		rollups := AggregateByCategory(transactions, filter)
		sum := decimal.Zero
		for _, rollup := range rollups {
			sum = sum.Add(rollup.Total)
		}
		unscoped := Aggregate(transactions, filter)
		if !sum.Equal(unscoped.Total) {
			t.Errorf("rollup sum %s does not match unscoped total %s", sum, unscoped.Total)
		}
	})

	t.Run("empty match set yields empty slice", func(t *testing.T) {
		rollups := AggregateByCategory(nil, filter)
		if len(rollups) != 0 {
			t.Errorf("expected no rollups, got %d", len(rollups))
		}
	})
}
