// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// ProfileUpdate holds the user-editable profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name     *string
	DarkMode *bool
}

// AccountService defines the interface for account operations owned by the remote service.
type AccountService interface {
	// Login exchanges credentials for an access token.
	Login(ctx context.Context, email, password string) (*entity.AuthResult, error)

	// Register creates an account and returns its first access token.
	Register(ctx context.Context, email, password, name string) (*entity.AuthResult, error)

	// GetProfile retrieves the profile of the session owner.
	GetProfile(ctx context.Context, session entity.Session) (*entity.User, error)

	// UpdateProfile changes the profile of the session owner.
	UpdateProfile(ctx context.Context, session entity.Session, update ProfileUpdate) (*entity.User, error)
}
