// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService abstracts token generation and validation so the delivery layer
// does not depend on a concrete JWT implementation. Account management lives
// outside this service; only token verification (and dev-route issuance) is
// needed here.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the given user.
	GenerateAccessToken(userID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateAccessToken checks a token string and returns the parsed token.
	ValidateAccessToken(tokenString string) (*jwt.Token, error)
}
