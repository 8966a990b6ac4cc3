package ports

import (
	"context"
	"io"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

// RegisterInput is the basic (non-wizard) registration payload. Registration
// always lands on the user tier; admin accounts are promoted afterwards
// through the admin role endpoint.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// ResumeUpload carries an optional resume file through the detailed path.
// Size is the declared size in bytes; the server re-validates it.
type ResumeUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// DetailedRegisterInput is the full wizard payload submitted atomically on the
// final step.
type DetailedRegisterInput struct {
	Name               string
	Email              string
	Password           string
	Phone              string
	DateOfBirth        string
	Address            domain.Address
	Gender             string
	Employment         string
	Education          string
	SalaryExpectation  string
	PreferredLocation  string
	InterestedServices []string
	Resume             *ResumeUpload // optional
}

// AuthResult pairs the created or authenticated account with its session token.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements registration, login, and logout.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	RegisterDetailed(ctx context.Context, input DetailedRegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Logout revokes the presented token for the remainder of its validity.
	Logout(ctx context.Context, claims *Claims) error
}
