// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/application/usecase/budget"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
	"github.com/expense-tracker/gateway/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase   *budget.ListBudgetsUseCase
	createUseCase *budget.CreateBudgetUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
	presenter     *dto.Presenter
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	presenter *dto.Presenter,
) *BudgetController {
	return &BudgetController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		presenter:     presenter,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), session)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.presenter.ToBudgetListResponse(output))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	input, err := bindBudgetInput(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		Session:     session,
		BudgetInput: input,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, c.presenter.ToBudgetResponse(*created))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	input, err := bindBudgetInput(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		Session:     session,
		ID:          ctx.Param("id"),
		BudgetInput: input,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.presenter.ToBudgetResponse(*updated))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), session, ctx.Param("id")); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func bindBudgetInput(ctx *gin.Context) (budget.BudgetInput, error) {
	var req dto.BudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return budget.BudgetInput{}, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"Invalid request body",
			err,
		)
	}

	amount := decimal.Zero
	if req.Amount != nil {
		amount = *req.Amount
	}

	return budget.BudgetInput{
		Amount:     amount,
		Month:      req.Month,
		CategoryID: req.CategoryID,
	}, nil
}
