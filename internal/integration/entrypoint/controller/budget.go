// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/budget"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

const defaultAnalyticsMonths = 6

// BudgetController handles budget endpoints.
type BudgetController struct {
	getBudgetUseCase    *budget.GetBudgetUseCase
	setBudgetUseCase    *budget.SetBudgetUseCase
	getAnalyticsUseCase *budget.GetAnalyticsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	getBudgetUseCase *budget.GetBudgetUseCase,
	setBudgetUseCase *budget.SetBudgetUseCase,
	getAnalyticsUseCase *budget.GetAnalyticsUseCase,
) *BudgetController {
	return &BudgetController{
		getBudgetUseCase:    getBudgetUseCase,
		setBudgetUseCase:    setBudgetUseCase,
		getAnalyticsUseCase: getAnalyticsUseCase,
	}
}

// Get handles GET /budget requests.
// It returns the budget snapshot for the current calendar month.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budget.GetBudgetInput{
		UserID: userID,
		Now:    time.Now().UTC(),
	}

	output, err := c.getBudgetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetSnapshotResponse(output))
}

// Set handles PUT /budget requests.
func (c *BudgetController) Set(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeNegativeBudget),
		})
		return
	}

	input := budget.SetBudgetInput{
		UserID: userID,
		Budget: decimal.NewFromFloat(req.Budget),
	}

	output, err := c.setBudgetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SetBudgetResponse{
		Budget: output.Budget.StringFixed(2),
	})
}

// GetAnalytics handles GET /budget/analytics requests.
// The months query parameter selects the trailing window size and defaults to 6.
func (c *BudgetController) GetAnalytics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	months := defaultAnalyticsMonths
	if monthsParam := ctx.Query("months"); monthsParam != "" {
		parsed, err := strconv.Atoi(monthsParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid months parameter",
				Code:  string(domainerror.ErrCodeInvalidMonths),
			})
			return
		}
		months = parsed
	}

	input := budget.GetAnalyticsInput{
		UserID: userID,
		Months: months,
		Now:    time.Now().UTC(),
	}

	output, err := c.getAnalyticsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeNegativeBudget,
		domainerror.ErrCodeInvalidMonths,
		domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeInvalidDateRange:
		return http.StatusBadRequest
	case domainerror.ErrCodeEmptyTrend:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
