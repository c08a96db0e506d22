// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/gateway/internal/application/usecase/user"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
	"github.com/expense-tracker/gateway/internal/integration/entrypoint/dto"
)

// UserController handles profile endpoints.
type UserController struct {
	getProfileUseCase    *user.GetProfileUseCase
	updateProfileUseCase *user.UpdateProfileUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *user.GetProfileUseCase,
	updateProfileUseCase *user.UpdateProfileUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
	}
}

// GetProfile handles GET /users/profile requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	profile, err := c.getProfileUseCase.Execute(ctx.Request.Context(), session)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(profile))
}

// UpdateProfile handles PUT /users/profile requests, including the dark mode preference.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	session, ok := currentSession(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	profile, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), user.UpdateProfileInput{
		Session:  session,
		Name:     req.Name,
		DarkMode: req.DarkMode,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(profile))
}
