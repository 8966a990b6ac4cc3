package ports

import "github.com/careerbridge/careerbridge-api/internal/core/domain"

// Claims are the identity facts decoded from a verified bearer token. Nothing
// here may be trusted unless Verify succeeded.
type Claims struct {
	UserID string
	Email  string
	Role   domain.Role
	// TokenID is the token's unique identifier (jti), used for revocation.
	TokenID string
	// ExpiresAt is the unix timestamp after which the token is invalid.
	ExpiresAt int64
}

// TokenService issues and verifies signed bearer tokens.
//
// Verify error contract:
//   - domain.ErrMissingToken when token is empty
//   - domain.ErrTokenExpired when past the validity window
//   - domain.ErrInvalidToken for any signature or structural failure
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*Claims, error)
}
