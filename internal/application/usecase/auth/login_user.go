// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken string
	User        *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	accounts adapter.AccountService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(accounts adapter.AccountService) *LoginUserUseCase {
	return &LoginUserUseCase{
		accounts: accounts,
	}
}

// Execute performs the user login against the remote service.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"email and password are required",
			nil,
		)
	}

	result, err := uc.accounts.Login(ctx, email, input.Password)
	if err != nil {
		// Return generic error to prevent email enumeration
		if errors.Is(err, domainerror.ErrRemoteUnauthorized) || errors.Is(err, domainerror.ErrRemoteNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"invalid email or password",
				domainerror.ErrInvalidCredentials,
			)
		}
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	return &LoginUserOutput{
		AccessToken: result.AccessToken,
		User:        result.User,
	}, nil
}
