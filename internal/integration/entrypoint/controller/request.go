package controller

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/gateway/internal/domain/analytics"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
	"github.com/expense-tracker/gateway/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/gateway/internal/integration/entrypoint/middleware"
)

// currentSession returns the caller's session or writes a 401.
func currentSession(ctx *gin.Context) (entity.Session, bool) {
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return entity.Session{}, false
	}
	return session, true
}

// parseFilter reads search, category_id, start_date and end_date from the
// query string. Blank values mean no constraint.
func parseFilter(ctx *gin.Context) (analytics.FilterSpec, error) {
	spec := analytics.FilterSpec{
		SearchTerm: ctx.Query("search"),
		CategoryID: strings.TrimSpace(ctx.Query("category_id")),
	}

	var err error
	if spec.StartDate, err = parseDateParam(ctx, "start_date"); err != nil {
		return analytics.FilterSpec{}, err
	}
	if spec.EndDate, err = parseDateParam(ctx, "end_date"); err != nil {
		return analytics.FilterSpec{}, err
	}
	return spec, nil
}

func parseDateParam(ctx *gin.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(ctx.Query(name))
	if raw == "" {
		return nil, nil
	}
	date, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateFormat,
			"Invalid "+name+" format, expected YYYY-MM-DD",
			domainerror.ErrInvalidDateFormat,
		)
	}
	return &date, nil
}

// parseLimit reads a non-negative limit; zero means no limit.
func parseLimit(ctx *gin.Context) (int, error) {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidFilter,
			"limit must be a non-negative integer",
			err,
		)
	}
	return limit, nil
}
