// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValidTransactionType reports whether the given type is a known transaction type.
func IsValidTransactionType(transactionType TransactionType) bool {
	return transactionType == TransactionTypeExpense || transactionType == TransactionTypeIncome
}

// Category represents a transaction category from the fixed closed set.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryRent          Category = "Rent"
	CategoryShopping      Category = "Shopping"
	CategoryBills         Category = "Bills"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEntertainment Category = "Entertainment"
	CategoryEducation     Category = "Education"
	CategorySalary        Category = "Salary"
	CategoryFreelance     Category = "Freelance"
	CategoryInvestment    Category = "Investment"
	CategoryOthers        Category = "Others"
)

// Categories returns the closed set of valid transaction categories.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTravel,
		CategoryRent,
		CategoryShopping,
		CategoryBills,
		CategoryHealthcare,
		CategoryEntertainment,
		CategoryEducation,
		CategorySalary,
		CategoryFreelance,
		CategoryInvestment,
		CategoryOthers,
	}
}

// IsValidCategory reports whether the given category belongs to the closed set.
func IsValidCategory(category Category) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// Transaction represents a financial transaction in the Expense Tracker system.
// Amount is always positive; Type distinguishes income from expense.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Category    Category
	Description string
	Date        time.Time // Economic date, distinct from CreatedAt
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category Category,
	description string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
