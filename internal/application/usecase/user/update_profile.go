// Package user contains profile-related use cases.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// MaxNameLength is the longest display name accepted.
const MaxNameLength = 100

// UpdateProfileInput represents the input for updating a profile.
type UpdateProfileInput struct {
	Session  entity.Session
	Name     *string
	DarkMode *bool
}

// UpdateProfileUseCase handles profile changes, including the theme preference.
type UpdateProfileUseCase struct {
	accounts adapter.AccountService
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(accounts adapter.AccountService) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{accounts: accounts}
}

// Execute applies the update and returns the stored profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*entity.User, error) {
	update := adapter.ProfileUpdate{DarkMode: input.DarkMode}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || len(name) > MaxNameLength {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeMissingFields,
				fmt.Sprintf("name must be between 1 and %d characters", MaxNameLength),
				nil,
			)
		}
		update.Name = &name
	}

	if update.Name == nil && update.DarkMode == nil {
		return uc.accounts.GetProfile(ctx, input.Session)
	}

	user, err := uc.accounts.UpdateProfile(ctx, input.Session, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}
