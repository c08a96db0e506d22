// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

// AccessClaims are the claims the expense service puts in its access tokens.
// Older tokens carry the user id in "id" instead of "sub".
type AccessClaims struct {
	LegacyID interface{} `json:"id,omitempty"`
	UserID   string      `json:"user_id,omitempty"`
	Email    string      `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// subject returns the first non-empty user identifier.
func (c *AccessClaims) subject() string {
	switch {
	case c.Subject != "":
		return c.Subject
	case c.UserID != "":
		return c.UserID
	}

	switch id := c.LegacyID.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret []byte
	verify bool
	parser *jwt.Parser
	now    func() time.Time
}

// NewTokenService creates a token service. Signatures are verified with the
// shared HS256 secret only when verify is set; otherwise the remote service
// stays the authority and the gateway only reads the claims.
func NewTokenService(secret string, verify bool) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		verify: verify && secret != "",
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
		now:    time.Now,
	}
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	userID := claims.subject()
	if userID == "" {
		return nil, invalidToken("token has no user id", nil)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
		if !s.now().Before(expiresAt) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"token has expired",
				domainerror.ErrExpiredToken,
			)
		}
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: expiresAt,
	}, nil
}

// parseJWT reads the claims, checking the signature when verification is on.
// Expiry is checked by the caller against the service clock.
func (s *tokenService) parseJWT(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}

	if !s.verify {
		if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
			return nil, invalidToken("failed to parse token", err)
		}
		return claims, nil
	}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, invalidToken("failed to parse token", err)
	}
	if !token.Valid {
		return nil, invalidToken("invalid token claims", nil)
	}
	return claims, nil
}

func invalidToken(message string, cause error) error {
	err := domainerror.ErrInvalidToken
	if cause != nil {
		err = fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, cause)
	}
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, message, err)
}
