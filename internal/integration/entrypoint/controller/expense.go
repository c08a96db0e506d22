// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/gateway/internal/application/usecase/expense"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
	"github.com/expense-tracker/gateway/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	exportUseCase *expense.ExportExpensesUseCase
	presenter     *dto.Presenter
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	exportUseCase *expense.ExportExpensesUseCase,
	presenter *dto.Presenter,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		exportUseCase: exportUseCase,
		presenter:     presenter,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	filter, err := parseFilter(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}
	limit, err := parseLimit(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		Session: session,
		Filter:  filter,
		Limit:   limit,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.presenter.ToExpenseListResponse(output))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	input, err := bindExpenseInput(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), expense.CreateExpenseInput{
		Session:      session,
		ExpenseInput: input,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, c.presenter.ToExpenseResponse(*created))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	input, err := bindExpenseInput(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		Session:      session,
		ID:           ctx.Param("id"),
		ExpenseInput: input,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.presenter.ToExpenseResponse(*updated))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
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

// Export handles GET /expenses/export requests.
func (c *ExpenseController) Export(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	filter, err := parseFilter(ctx)
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), expense.ExportExpensesInput{
		Session: session,
		Filter:  filter,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// bindExpenseInput decodes the request body. Malformed amounts and dates are
// rejected here; the use case validates the rest.
func bindExpenseInput(ctx *gin.Context) (expense.ExpenseInput, error) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return expense.ExpenseInput{}, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"Invalid request body",
			err,
		)
	}

	if req.Amount == nil {
		return expense.ExpenseInput{}, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount is required",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	var date time.Time
	if raw := strings.TrimSpace(req.Date); raw != "" {
		parsed, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return expense.ExpenseInput{}, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseDate,
				"date must be in YYYY-MM-DD format",
				domainerror.ErrInvalidExpenseDate,
			)
		}
		date = parsed
	}

	return expense.ExpenseInput{
		Amount:      *req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Date:        date,
		Note:        req.Note,
	}, nil
}
