package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// Aggregation is the result of reducing a filtered transaction subset.
type Aggregation struct {
	Total decimal.Decimal
	Count int
}

// CategoryRollup is a grouped aggregation for a single category.
type CategoryRollup struct {
	Category entity.Category
	Total    decimal.Decimal
	Count    int
}

// Aggregate sums amounts over all transactions matching the filter.
// An empty match set yields a zero result, never an error.
func Aggregate(transactions []*entity.Transaction, filter Filter) Aggregation {
	result := Aggregation{Total: decimal.Zero}
	for _, t := range transactions {
		if !filter.Matches(t) {
			continue
		}
		result.Total = result.Total.Add(t.Amount)
		result.Count++
	}
	return result
}

// AggregateByCategory groups matching transactions by category and returns
// rollups ordered by total descending, ties broken by category name ascending.
func AggregateByCategory(transactions []*entity.Transaction, filter Filter) []CategoryRollup {
	totals := make(map[entity.Category]*CategoryRollup)
	for _, t := range transactions {
		if !filter.Matches(t) {
			continue
		}
		rollup, ok := totals[t.Category]
		if !ok {
			rollup = &CategoryRollup{Category: t.Category, Total: decimal.Zero}
			totals[t.Category] = rollup
		}
		rollup.Total = rollup.Total.Add(t.Amount)
		rollup.Count++
	}

	rollups := make([]CategoryRollup, 0, len(totals))
	for _, rollup := range totals {
		rollups = append(rollups, *rollup)
	}

	sort.Slice(rollups, func(i, j int) bool {
		cmp := rollups[i].Total.Cmp(rollups[j].Total)
		if cmp != 0 {
			return cmp > 0
		}
		return rollups[i].Category < rollups[j].Category
	})

	return rollups
}
