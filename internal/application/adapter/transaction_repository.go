// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID    uuid.UUID
	Type      *entity.TransactionType
	Category  *entity.Category
	StartDate *time.Time
	EndDate   *time.Time
	Search    string // Case-insensitive description match
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for the transaction ledger.
// It is the query contract the aggregation engine consumes; the engine itself
// never talks to storage directly.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination,
	// ordered by date descending with creation time as tie-break.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindByDateRange retrieves all of a user's transactions with a date inside
	// the closed interval [from, to], ordered by date ascending.
	FindByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error)

	// FindByUser retrieves all transactions for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindRecent retrieves the most recent transactions for a user.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)

	// CountByUser counts all transactions belonging to a user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete permanently removes a transaction. Deletion is final; there is no
	// soft-delete or tombstone.
	Delete(ctx context.Context, id uuid.UUID) error
}
