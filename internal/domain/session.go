package domain

// SessionClaims is the identity payload carried by a session token.
// IssuedAt and ExpiresAt are stamped by the token issuer; callers supply
// only UserID, Email and Name. Expiry is enforced during verification,
// so verified claims never carry the stamps.
type SessionClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsAdmin   bool   `json:"is_admin"`
	IssuedAt  int64  `json:"iat,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
}
