// Package user contains profile-related use cases.
package user

import (
	"context"
	"fmt"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// GetProfileUseCase handles retrieving the caller's profile.
type GetProfileUseCase struct {
	accounts adapter.AccountService
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(accounts adapter.AccountService) *GetProfileUseCase {
	return &GetProfileUseCase{accounts: accounts}
}

// Execute returns the profile of the session owner.
func (uc *GetProfileUseCase) Execute(ctx context.Context, session entity.Session) (*entity.User, error) {
	user, err := uc.accounts.GetProfile(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return user, nil
}
