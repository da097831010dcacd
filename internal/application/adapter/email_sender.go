// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// BudgetAlertInput carries the fields rendered into a budget alert message.
type BudgetAlertInput struct {
	To              string
	Name            string
	UsagePercent    float64
	CurrentExpenses decimal.Decimal
	Budget          decimal.Decimal
	Remaining       decimal.Decimal
}

// WelcomeEmailInput carries the fields rendered into a welcome message.
type WelcomeEmailInput struct {
	To   string
	Name string
}

// NotificationService defines the interface for dispatching user-facing
// notifications. Dispatch is best-effort: callers log failures and move on.
type NotificationService interface {
	// SendBudgetAlert dispatches a budget threshold alert.
	SendBudgetAlert(ctx context.Context, input BudgetAlertInput) error

	// SendWelcomeEmail dispatches a post-registration welcome message.
	SendWelcomeEmail(ctx context.Context, input WelcomeEmailInput) error
}
