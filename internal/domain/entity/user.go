// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents a user in the Expense Tracker system.
// Budget is the monthly spending target; zero means no budget is set.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	Budget             decimal.Decimal
	EmailNotifications bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		Budget:             decimal.Zero,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// HasBudget reports whether the user has configured a monthly budget.
func (u *User) HasBudget() bool {
	return u.Budget.IsPositive()
}
