// Package ledger implements the aggregation engine over a user's transaction
// records: filter predicates, reductions, and calendar-period math. Everything
// here is a pure function of its inputs, independent of the storage layer.
package ledger

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// Filter selects a subset of a transaction ledger. Date bounds are inclusive
// on both ends; a zero From or To leaves that side unbounded.
type Filter struct {
	Type     *entity.TransactionType
	Category *entity.Category
	From     time.Time
	To       time.Time
}

// Matches reports whether the transaction satisfies the filter.
func (f Filter) Matches(t *entity.Transaction) bool {
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.Category != nil && t.Category != *f.Category {
		return false
	}
	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.Date.After(f.To) {
		return false
	}
	return true
}

// TypeFilter returns a filter scoped to one transaction type over a closed
// date interval.
func TypeFilter(transactionType entity.TransactionType, from, to time.Time) Filter {
	t := transactionType
	return Filter{Type: &t, From: from, To: to}
}
