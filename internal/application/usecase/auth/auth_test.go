package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

type stubAccounts struct {
	err          error
	lastEmail    string
	lastPassword string
	lastName     string
}

func (s *stubAccounts) Login(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	s.lastEmail, s.lastPassword = email, password
	if s.err != nil {
		return nil, s.err
	}
	return &entity.AuthResult{AccessToken: "token", User: &entity.User{ID: "1", Email: email}}, nil
}

func (s *stubAccounts) Register(ctx context.Context, email, password, name string) (*entity.AuthResult, error) {
	s.lastEmail, s.lastPassword, s.lastName = email, password, name
	if s.err != nil {
		return nil, s.err
	}
	return &entity.AuthResult{AccessToken: "token", User: &entity.User{ID: "1", Email: email, Name: name}}, nil
}

func (s *stubAccounts) GetProfile(ctx context.Context, session entity.Session) (*entity.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAccounts) UpdateProfile(ctx context.Context, session entity.Session, update adapter.ProfileUpdate) (*entity.User, error) {
	return nil, errors.New("not implemented")
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	return authErr.Code
}

func TestLoginUserUseCase(t *testing.T) {
	t.Run("returns token on success", func(t *testing.T) {
		accounts := &stubAccounts{}
		uc := NewLoginUserUseCase(accounts)

		out, err := uc.Execute(context.Background(), LoginUserInput{Email: " a@b.io ", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken != "token" {
			t.Errorf("expected token, got %s", out.AccessToken)
		}
		if accounts.lastEmail != "a@b.io" {
			t.Errorf("expected trimmed email, got %q", accounts.lastEmail)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewLoginUserUseCase(&stubAccounts{})
		_, err := uc.Execute(context.Background(), LoginUserInput{Email: "a@b.io"})
		if code := authCode(t, err); code != domainerror.ErrCodeMissingFields {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeMissingFields, code)
		}
	})

	t.Run("remote rejection becomes invalid credentials", func(t *testing.T) {
		remoteErr := domainerror.NewRemoteError(domainerror.ErrCodeRemoteUnauthorized, 401, "unauthorized", domainerror.ErrRemoteUnauthorized)
		uc := NewLoginUserUseCase(&stubAccounts{err: remoteErr})

		_, err := uc.Execute(context.Background(), LoginUserInput{Email: "a@b.io", Password: "x"})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("outage is passed through", func(t *testing.T) {
		remoteErr := domainerror.NewRemoteError(domainerror.ErrCodeRemoteUnavailable, 502, "down", domainerror.ErrRemoteUnavailable)
		uc := NewLoginUserUseCase(&stubAccounts{err: remoteErr})

		_, err := uc.Execute(context.Background(), LoginUserInput{Email: "a@b.io", Password: "x"})
		if !errors.Is(err, domainerror.ErrRemoteUnavailable) {
			t.Errorf("expected ErrRemoteUnavailable, got %v", err)
		}
	})
}

func TestRegisterUserUseCase(t *testing.T) {
	tests := []struct {
		name  string
		input RegisterUserInput
		want  domainerror.AuthErrorCode
	}{
		{"missing name", RegisterUserInput{Email: "a@b.io", Password: "secret1"}, domainerror.ErrCodeMissingFields},
		{"bad email", RegisterUserInput{Email: "nope", Name: "A", Password: "secret1"}, domainerror.ErrCodeInvalidEmail},
		{"short password", RegisterUserInput{Email: "a@b.io", Name: "A", Password: "12345"}, domainerror.ErrCodeWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUserUseCase(&stubAccounts{})
			_, err := uc.Execute(context.Background(), tt.input)
			if code := authCode(t, err); code != tt.want {
				t.Errorf("expected %s, got %s", tt.want, code)
			}
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		remoteErr := domainerror.NewRemoteError(domainerror.ErrCodeRemoteRejected, 409, "exists", domainerror.ErrRemoteRejected)
		uc := NewRegisterUserUseCase(&stubAccounts{err: remoteErr})

		_, err := uc.Execute(context.Background(), RegisterUserInput{Email: "a@b.io", Name: "A", Password: "secret1"})
		if code := authCode(t, err); code != domainerror.ErrCodeEmailExists {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeEmailExists, code)
		}
	})

	t.Run("success", func(t *testing.T) {
		accounts := &stubAccounts{}
		uc := NewRegisterUserUseCase(accounts)

		out, err := uc.Execute(context.Background(), RegisterUserInput{Email: "a@b.io", Name: " Ann ", Password: "secret1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Name != "Ann" {
			t.Errorf("expected trimmed name Ann, got %q", out.User.Name)
		}
	})
}
