package remote

import (
	"context"
	"net/http"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name     *string `json:"name,omitempty"`
	DarkMode *bool   `json:"darkMode,omitempty"`
}

// AccountService implements adapter.AccountService over the remote service.
type AccountService struct {
	client *Client
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(client *Client) *AccountService {
	return &AccountService{client: client}
}

// Login exchanges credentials for an access token.
func (s *AccountService) Login(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	resp, err := doJSON[authResponse](ctx, s.client, http.MethodPost, "/auth/login", "", loginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return authResult(*resp)
}

// Register creates an account.
func (s *AccountService) Register(ctx context.Context, email, password, name string) (*entity.AuthResult, error) {
	resp, err := doJSON[authResponse](ctx, s.client, http.MethodPost, "/users/register", "", registerRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return authResult(*resp)
}

// GetProfile retrieves the caller's profile.
func (s *AccountService) GetProfile(ctx context.Context, session entity.Session) (*entity.User, error) {
	resp, err := doJSON[userPayload](ctx, s.client, http.MethodGet, "/users/profile", session.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	return resp.toEntity(), nil
}

// UpdateProfile changes the caller's profile.
func (s *AccountService) UpdateProfile(ctx context.Context, session entity.Session, update adapter.ProfileUpdate) (*entity.User, error) {
	resp, err := doJSON[userPayload](ctx, s.client, http.MethodPut, "/users/profile", session.AccessToken, profileRequest{
		Name:     update.Name,
		DarkMode: update.DarkMode,
	})
	if err != nil {
		return nil, err
	}
	return resp.toEntity(), nil
}

func authResult(resp authResponse) (*entity.AuthResult, error) {
	result, err := resp.toEntity()
	if err != nil {
		return nil, malformed("auth response", err)
	}
	return result, nil
}
