// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCreatedHook is invoked synchronously after an expense-type transaction
// has been persisted. Implementations are advisory: a hook failure must never
// fail or roll back the triggering write.
type ExpenseCreatedHook interface {
	// NotifyExpenseCreated signals that an expense of the given amount was
	// recorded for the user at the given time.
	NotifyExpenseCreated(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, now time.Time) error
}
