// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getStatsUseCase *dashboard.GetStatsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getStatsUseCase *dashboard.GetStatsUseCase) *DashboardController {
	return &DashboardController{
		getStatsUseCase: getStatsUseCase,
	}
}

// GetStats handles GET /dashboard/stats requests.
// The period query parameter selects week, month or year and defaults to month.
func (c *DashboardController) GetStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	period := ctx.DefaultQuery("period", dashboard.PeriodMonth)

	input := dashboard.GetStatsInput{
		UserID: userID,
		Period: period,
		Now:    time.Now().UTC(),
	}

	output, err := c.getStatsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
