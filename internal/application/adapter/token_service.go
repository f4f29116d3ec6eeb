package adapter

import (
	"context"
	"time"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	Username  string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations. Tokens are
// stateless: there is no user database to record refresh tokens against, so
// revocation before expiry is out of scope.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair.
	GenerateTokenPair(ctx context.Context, username string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
}

// CredentialService verifies the static dashboard credentials. The user list
// is fixed configuration, not a registry: there is no registration flow.
type CredentialService interface {
	// Verify checks a username/password pair against the configured users.
	Verify(username, password string) error
}
