package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failure classes. The HTTP layer collapses all of them
// into a single unauthenticated outcome; the classes exist for logging and tests.
var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenClaims    = errors.New("token claims are invalid")
)

// SessionManager issues and verifies signed session tokens. Tokens are
// self-contained: verification needs no server-side session lookup.
type SessionManager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewSessionManager creates a new session manager
func NewSessionManager(secret string, tokenTTL time.Duration) *SessionManager {
	return &SessionManager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Issue stamps the claims with issued-at and expiry timestamps and returns
// an HS256-signed token. Each call embeds a unique token ID, so two calls
// with the same identity never produce the same token.
func (m *SessionManager) Issue(claims domain.SessionClaims) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  claims.UserID,
		"email":    claims.Email,
		"name":     claims.Name,
		"is_admin": claims.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(m.tokenTTL).Unix(),
		"jti":      uuid.New().String(),
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Verify validates a session token and returns the caller-supplied identity
// fields. The internal iat/exp stamps are stripped from the result. Pure
// function of the input and current time; no side effects.
func (m *SessionManager) Verify(tokenString string) (*domain.SessionClaims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, ErrTokenMalformed
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, fmt.Errorf("%w: %s", ErrTokenClaims, err)
		}
	}

	if !token.Valid {
		return nil, ErrTokenSignature
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenClaims
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing user_id", ErrTokenClaims)
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing email", ErrTokenClaims)
	}

	name, ok := claims["name"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing name", ErrTokenClaims)
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return &domain.SessionClaims{
		UserID:  userID,
		Email:   email,
		Name:    name,
		IsAdmin: isAdmin,
	}, nil
}

// TokenTTL returns the configured token lifetime
func (m *SessionManager) TokenTTL() time.Duration {
	return m.tokenTTL
}

// TokenTTLSeconds returns the token lifetime in whole seconds, the unit
// used for cookie max-age.
func (m *SessionManager) TokenTTLSeconds() int {
	return int(m.tokenTTL.Seconds())
}
