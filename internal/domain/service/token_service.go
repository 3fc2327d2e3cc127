package service

import (
	"keystone/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims defines the claims carried by a session token: the subject
// (account id) and the account's role at issuance.
type SessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim back into an account identifier.
func (c *SessionClaims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and validating session
// tokens. Expiry is the only invalidation path; no revocation exists.
type TokenService interface {
	// Sign produces a signed token asserting the account's identity and role.
	Sign(accountID uuid.UUID, role entity.Role) (string, error)

	// Validate checks a token string and returns its claims when the
	// signature and expiry hold.
	Validate(tokenString string) (*SessionClaims, error)
}
