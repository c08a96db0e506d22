package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestTokenService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	tests := []struct {
		name    string
		verify  bool
		secret  string
		claims  jwt.MapClaims
		wantID  string
		wantErr error
	}{
		{
			name:   "subject claim",
			verify: true,
			secret: testSecret,
			claims: jwt.MapClaims{"sub": "u-1", "email": "ana@example.com", "exp": future},
			wantID: "u-1",
		},
		{
			name:   "numeric legacy id",
			verify: true,
			secret: testSecret,
			claims: jwt.MapClaims{"id": 42, "exp": future},
			wantID: "42",
		},
		{
			name:   "unverified accepts any signature",
			verify: false,
			secret: "other-secret",
			claims: jwt.MapClaims{"user_id": "u-2"},
			wantID: "u-2",
		},
		{
			name:    "wrong signature",
			verify:  true,
			secret:  "other-secret",
			claims:  jwt.MapClaims{"sub": "u-1", "exp": future},
			wantErr: domainerror.ErrInvalidToken,
		},
		{
			name:    "expired",
			verify:  false,
			secret:  testSecret,
			claims:  jwt.MapClaims{"sub": "u-1", "exp": past},
			wantErr: domainerror.ErrExpiredToken,
		},
		{
			name:    "expired with verification",
			verify:  true,
			secret:  testSecret,
			claims:  jwt.MapClaims{"sub": "u-1", "exp": past},
			wantErr: domainerror.ErrExpiredToken,
		},
		{
			name:    "no user id",
			verify:  true,
			secret:  testSecret,
			claims:  jwt.MapClaims{"email": "ana@example.com"},
			wantErr: domainerror.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewTokenService(testSecret, tt.verify)
			claims, err := service.ValidateAccessToken(ctx, signToken(t, tt.secret, tt.claims))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				var authErr *domainerror.AuthError
				if !errors.As(err, &authErr) {
					t.Errorf("expected AuthError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claims.UserID != tt.wantID {
				t.Errorf("UserID = %q, want %q", claims.UserID, tt.wantID)
			}
		})
	}

	t.Run("garbage token", func(t *testing.T) {
		_, err := NewTokenService("", false).ValidateAccessToken(ctx, "not-a-jwt")
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
