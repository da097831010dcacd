package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

const (
	defaultUserEmail    = "user@example.com"
	defaultUserName     = "Test User"
	defaultUserPassword = "Password123"
)

// registerDomainSteps registers steps that set up users, budgets and transactions.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^I am authenticated$`, iAmAuthenticated)
	ctx.Step(`^my monthly budget is "([^"]*)"$`, myMonthlyBudgetIs)
	ctx.Step(`^email notifications are disabled$`, emailNotificationsAreDisabled)
	ctx.Step(`^I have recorded an (expense|income) of "([^"]*)" in "([^"]*)" this month$`, iHaveRecordedATransactionThisMonth)
	ctx.Step(`^I have recorded an expense of "([^"]*)" in "([^"]*)" (\d+) months? ago$`, iHaveRecordedAnExpenseMonthsAgo)
	ctx.Step(`^a budget alert email should have been sent$`, aBudgetAlertEmailShouldHaveBeenSent)
	ctx.Step(`^no budget alert email should have been sent$`, noBudgetAlertEmailShouldHaveBeenSent)
	ctx.Step(`^the last email subject should contain "([^"]*)"$`, theLastEmailSubjectShouldContain)
}

// registerUser registers a user via the API and captures the issued tokens.
func (tc *TestContext) registerUser(email, name, password string) error {
	err := tc.sendJSON(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    email,
		"name":     name,
		"password": password,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to register user, status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &body); err != nil {
		return fmt.Errorf("failed to parse registration response: %w", err)
	}

	tc.accessToken = body.AccessToken
	tc.refreshToken = body.RefreshToken
	return nil
}

// createTransaction records a transaction via the API for the authenticated user.
func (tc *TestContext) createTransaction(transactionType, amount, category, date string) error {
	parsedAmount, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	err = tc.sendJSON(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type":        transactionType,
		"amount":      parsedAmount,
		"category":    category,
		"description": "Test " + transactionType,
		"date":        date,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to create transaction, status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

// budgetAlertEmails returns sent emails whose subject marks them as budget alerts.
// Welcome emails from registration are excluded.
func (tc *TestContext) budgetAlertEmails() []string {
	var subjects []string
	for _, sent := range tc.emailSender.SentEmails {
		if strings.Contains(sent.Subject, "Budget Alert") {
			subjects = append(subjects, sent.Subject)
		}
	}
	return subjects
}

// Step implementations

func aRegisteredUserWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.registerUser(email, defaultUserName, password)
}

func iAmAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.registerUser(defaultUserEmail, defaultUserName, defaultUserPassword)
}

func myMonthlyBudgetIs(ctx context.Context, budget string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	parsedBudget, err := strconv.ParseFloat(budget, 64)
	if err != nil {
		return fmt.Errorf("invalid budget %q: %w", budget, err)
	}

	if err := tc.sendJSON(http.MethodPut, "/api/v1/budget", map[string]any{"budget": parsedBudget}); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to set budget, status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func emailNotificationsAreDisabled(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	err := tc.sendJSON(http.MethodPatch, "/api/v1/users/profile", map[string]any{
		"email_notifications": false,
	})
	if err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to disable notifications, status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func iHaveRecordedATransactionThisMonth(ctx context.Context, transactionType, amount, category string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	date := time.Now().UTC().Format("2006-01-02")
	return tc.createTransaction(transactionType, amount, category, date)
}

func iHaveRecordedAnExpenseMonthsAgo(ctx context.Context, amount, category string, monthsAgo int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	// Mid-month date avoids month-arithmetic overflow near the 31st.
	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	date := firstOfMonth.AddDate(0, -monthsAgo, 14).Format("2006-01-02")

	return tc.createTransaction("expense", amount, category, date)
}

func aBudgetAlertEmailShouldHaveBeenSent(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(tc.budgetAlertEmails()) == 0 {
		return fmt.Errorf("expected a budget alert email, none were sent")
	}
	return nil
}

func noBudgetAlertEmailShouldHaveBeenSent(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if alerts := tc.budgetAlertEmails(); len(alerts) > 0 {
		return fmt.Errorf("expected no budget alert emails, got %d: %v", len(alerts), alerts)
	}
	return nil
}

func theLastEmailSubjectShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(tc.emailSender.SentEmails) == 0 {
		return fmt.Errorf("no emails were sent")
	}
	subject := tc.emailSender.SentEmails[len(tc.emailSender.SentEmails)-1].Subject
	if !strings.Contains(subject, expected) {
		return fmt.Errorf("last email subject %q does not contain %q", subject, expected)
	}
	return nil
}
