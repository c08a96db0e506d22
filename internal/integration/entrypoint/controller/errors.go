// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
	"github.com/expense-tracker/gateway/internal/integration/entrypoint/dto"
)

// handleError writes the response for any error returned by a use case.
func handleError(ctx *gin.Context, err error) {
	var (
		authErr      *domainerror.AuthError
		expenseErr   *domainerror.ExpenseError
		budgetErr    *domainerror.BudgetError
		dashboardErr *domainerror.DashboardError
		remoteErr    *domainerror.RemoteError
	)

	switch {
	case errors.As(err, &authErr):
		writeError(ctx, getStatusCodeForAuthError(authErr.Code), authErr.Message, string(authErr.Code))
	case errors.As(err, &expenseErr):
		writeError(ctx, getStatusCodeForExpenseError(expenseErr.Code), expenseErr.Message, string(expenseErr.Code))
	case errors.As(err, &budgetErr):
		writeError(ctx, getStatusCodeForBudgetError(budgetErr.Code), budgetErr.Message, string(budgetErr.Code))
	case errors.As(err, &dashboardErr):
		writeError(ctx, getStatusCodeForDashboardError(dashboardErr.Code), dashboardErr.Message, string(dashboardErr.Code))
	case errors.As(err, &remoteErr):
		writeError(ctx, getStatusCodeForRemoteError(remoteErr.Code), remoteErr.Message, string(remoteErr.Code))
	default:
		slog.Error("Unhandled error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	if ctx.Writer.Status() >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
	}
}

func writeError(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeEmptyDescription,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeNoteTooLong,
		domainerror.ErrCodeMissingCategory,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeInvalidFilter:
		return http.StatusBadRequest
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetMonth,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFormat:
		return http.StatusBadRequest
	case domainerror.ErrCodeSnapshotUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForRemoteError maps remote error codes to HTTP status codes.
func getStatusCodeForRemoteError(code domainerror.RemoteErrorCode) int {
	switch code {
	case domainerror.ErrCodeRemoteUnauthorized:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRemoteNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRemoteRejected:
		return http.StatusBadRequest
	case domainerror.ErrCodeReadOnlyDataSource:
		return http.StatusMethodNotAllowed
	case domainerror.ErrCodeRemoteUnavailable,
		domainerror.ErrCodeMalformedPayload:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
