// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// Service implements adapter.NotificationService by rendering notification
// templates and dispatching them through an EmailSender.
type Service struct {
	sender adapter.EmailSender
}

// NewService creates a new notification service.
func NewService(sender adapter.EmailSender) *Service {
	return &Service{
		sender: sender,
	}
}

// SendBudgetAlert sends a budget threshold alert email.
func (s *Service) SendBudgetAlert(ctx context.Context, input adapter.BudgetAlertInput) error {
	subject := fmt.Sprintf("Budget Alert - %.0f%% Used", input.UsagePercent)

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #e74c3c;">Budget Alert</h2>
  <p>Hi %s,</p>
  <p>You have used <strong>%.1f%%</strong> of your monthly budget.</p>
  <table style="width: 100%%; border-collapse: collapse; margin: 16px 0;">
    <tr><td style="padding: 8px; border-bottom: 1px solid #eee;">Monthly budget</td><td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">%s</td></tr>
    <tr><td style="padding: 8px; border-bottom: 1px solid #eee;">Spent so far</td><td style="padding: 8px; border-bottom: 1px solid #eee; text-align: right;">%s</td></tr>
    <tr><td style="padding: 8px;">Remaining</td><td style="padding: 8px; text-align: right;">%s</td></tr>
  </table>
  <p>Consider reviewing your spending for the rest of the month.</p>
  <p style="color: #999; font-size: 12px;">You receive this alert because email notifications are enabled in your profile.</p>
</div>`,
		input.Name,
		input.UsagePercent,
		input.Budget.StringFixed(2),
		input.CurrentExpenses.StringFixed(2),
		input.Remaining.StringFixed(2),
	)

	text := fmt.Sprintf(
		"Hi %s, you have used %.1f%% of your monthly budget. Budget: %s, spent: %s, remaining: %s.",
		input.Name,
		input.UsagePercent,
		input.Budget.StringFixed(2),
		input.CurrentExpenses.StringFixed(2),
		input.Remaining.StringFixed(2),
	)

	if _, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.To,
		Name:    input.Name,
		Subject: subject,
		HTML:    html,
		Text:    text,
	}); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailSendFailed,
			"failed to send budget alert email",
			err,
		)
	}

	return nil
}

// SendWelcomeEmail sends a post-registration welcome email.
func (s *Service) SendWelcomeEmail(ctx context.Context, input adapter.WelcomeEmailInput) error {
	subject := "Welcome to Expense Tracker"

	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #27ae60;">Welcome, %s!</h2>
  <p>Your Expense Tracker account is ready.</p>
  <p>Start by recording your first transaction and setting a monthly budget. We will let you know when your spending approaches the limit.</p>
</div>`, input.Name)

	text := fmt.Sprintf("Welcome, %s! Your Expense Tracker account is ready.", input.Name)

	if _, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.To,
		Name:    input.Name,
		Subject: subject,
		HTML:    html,
		Text:    text,
	}); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailSendFailed,
			"failed to send welcome email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.NotificationService.
var _ adapter.NotificationService = (*Service)(nil)
