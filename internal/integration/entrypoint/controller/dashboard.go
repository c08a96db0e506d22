// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/gateway/internal/application/usecase/dashboard"
	"github.com/expense-tracker/gateway/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getSummaryUseCase           *dashboard.GetSummaryUseCase
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	getMonthlyTrendsUseCase     *dashboard.GetMonthlyTrendsUseCase
	getDataRangeUseCase         *dashboard.GetDataRangeUseCase
	presenter                   *dto.Presenter
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getSummaryUseCase *dashboard.GetSummaryUseCase,
	getCategoryBreakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	getMonthlyTrendsUseCase *dashboard.GetMonthlyTrendsUseCase,
	getDataRangeUseCase *dashboard.GetDataRangeUseCase,
	presenter *dto.Presenter,
) *DashboardController {
	return &DashboardController{
		getSummaryUseCase:           getSummaryUseCase,
		getCategoryBreakdownUseCase: getCategoryBreakdownUseCase,
		getMonthlyTrendsUseCase:     getMonthlyTrendsUseCase,
		getDataRangeUseCase:         getDataRangeUseCase,
		presenter:                   presenter,
	}
}

// dashboardInput builds the shared input from the session and query string.
func dashboardInput(ctx *gin.Context) (dashboard.DashboardInput, bool) {
	session, ok := currentSession(ctx)
	if !ok {
		return dashboard.DashboardInput{}, false
	}

	filter, err := parseFilter(ctx)
	if err != nil {
		handleError(ctx, err)
		return dashboard.DashboardInput{}, false
	}

	return dashboard.DashboardInput{Session: session, Filter: filter}, true
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	input, ok := dashboardInput(ctx)
	if !ok {
		return
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.presenter.ToSummaryResponse(output))
}

// GetCategoryBreakdown handles GET /dashboard/category-breakdown requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	input, ok := dashboardInput(ctx)
	if !ok {
		return
	}

	output, err := c.getCategoryBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.presenter.ToCategoryBreakdownResponse(output))
}

// GetMonthlyTrends handles GET /dashboard/monthly-trends requests.
func (c *DashboardController) GetMonthlyTrends(ctx *gin.Context) {
	input, ok := dashboardInput(ctx)
	if !ok {
		return
	}

	output, err := c.getMonthlyTrendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.presenter.ToMonthlyTrendsResponse(output))
}

// GetDataRange handles GET /dashboard/data-range requests.
func (c *DashboardController) GetDataRange(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	output, err := c.getDataRangeUseCase.Execute(ctx.Request.Context(), dashboard.DashboardInput{Session: session})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDataRangeResponse(output))
}
