package ports

import (
	"context"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

// ProfileUpdateInput carries the owner-editable profile fields. Zero values
// mean "leave unchanged" except InterestedServices, which replaces the list
// when non-nil.
type ProfileUpdateInput struct {
	Name               string
	Phone              string
	DateOfBirth        string
	Address            *domain.Address
	Gender             string
	Employment         string
	Education          string
	SalaryExpectation  string
	PreferredLocation  string
	InterestedServices []string
}

// UserService covers self-service account access and the admin user tab.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input ProfileUpdateInput) (*domain.User, error)

	// Admin-only operations; role enforcement happens at the middleware.
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
	ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
}
