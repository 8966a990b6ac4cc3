package ports

import (
	"context"
	"time"
)

// TokenDenylist records tokens revoked before their natural expiry (logout).
// Entries only need to live as long as the token itself.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
