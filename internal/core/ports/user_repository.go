package ports

import (
	"context"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

// UserRepository defines persistence for accounts. Email uniqueness is
// enforced by the store's unique index; Create surfaces domain.ErrEmailTaken
// when the index rejects the write, which makes it the final arbiter under
// concurrent registration.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// List returns every account, newest first, password hashes stripped.
	List(ctx context.Context) ([]*domain.User, error)
}
