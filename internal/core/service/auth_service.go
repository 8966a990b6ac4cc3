package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/careerbridge/careerbridge-api/internal/api/metrics"
	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/ports"
)

// MinPasswordLength is the floor enforced on both registration paths and by
// the wizard's step-1 gate.
const MinPasswordLength = 6

// bcryptCost fixes the hashing work factor. bcrypt.DefaultCost is 10, which
// matches the brute-force resistance the site was designed around.
const bcryptCost = bcrypt.DefaultCost

// dummyHash is compared against when login hits an unknown email, so the
// not-found and wrong-password paths cost roughly the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("careerbridge-timing-pad"), bcryptCost)

// AuthService implements registration (basic and detailed), login, and logout.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	denylist ports.TokenDenylist
	files    ports.FileStore
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, denylist ports.TokenDenylist, files ports.FileStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, denylist: denylist, files: files, log: log}
}

// Register creates an account from the basic form: name, email, password.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if err := validateCredentials(input.Name, input.Email, input.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	return s.finishAuth(created, "basic")
}

// RegisterDetailed creates an account from the full wizard payload, storing
// the optional resume first and rolling the file back if the insert loses the
// uniqueness race. Either the account exists with all its fields, or nothing
// persists.
func (s *AuthService) RegisterDetailed(ctx context.Context, input ports.DetailedRegisterInput) (*ports.AuthResult, error) {
	if err := validateCredentials(input.Name, input.Email, input.Password); err != nil {
		return nil, err
	}
	if len(input.InterestedServices) == 0 {
		return nil, fmt.Errorf("%w: at least one interested service is required", domain.ErrValidation)
	}

	var resumePath string
	if input.Resume != nil {
		if err := domain.ValidateResumeUpload(input.Resume.Filename, input.Resume.Size); err != nil {
			metrics.UploadsRejectedTotal.WithLabelValues("resume").Inc()
			return nil, err
		}
		path, err := s.files.Save(ctx, "resume", input.Resume.Filename, input.Resume.Content)
		if err != nil {
			return nil, fmt.Errorf("store resume: %w", err)
		}
		resumePath = path
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Name:               strings.TrimSpace(input.Name),
		Email:              input.Email,
		PasswordHash:       string(hash),
		Role:               domain.RoleUser,
		Phone:              input.Phone,
		DateOfBirth:        input.DateOfBirth,
		Address:            input.Address,
		Gender:             input.Gender,
		Employment:         input.Employment,
		Education:          input.Education,
		SalaryExpectation:  input.SalaryExpectation,
		PreferredLocation:  input.PreferredLocation,
		InterestedServices: input.InterestedServices,
		ResumePath:         resumePath,
		ProfileCompleted:   true,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		if resumePath != "" {
			if rmErr := s.files.Remove(ctx, resumePath); rmErr != nil {
				s.log.Warn().Err(rmErr).Str("path", resumePath).Msg("orphaned resume not removed")
			}
		}
		return nil, err
	}

	return s.finishAuth(created, "detailed")
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password collapse to the same error, with a bcrypt comparison on both paths
// to keep their latency comparable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{Token: token, User: user.Sanitized()}, nil
}

// Logout puts the token's identifier on the denylist until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *ports.Claims) error {
	if claims == nil || claims.TokenID == "" {
		return domain.ErrInvalidToken
	}
	until := time.Unix(claims.ExpiresAt, 0)
	if err := s.denylist.Revoke(ctx, claims.TokenID, until); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *AuthService) finishAuth(user *domain.User, method string) (*ports.AuthResult, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	metrics.RegistrationsTotal.WithLabelValues(method).Inc()
	s.log.Info().Str("user_id", user.ID).Str("method", method).Msg("account created")
	return &ports.AuthResult{Token: token, User: user.Sanitized()}, nil
}

func validateCredentials(name, email, password string) error {
	if strings.TrimSpace(name) == "" || email == "" || password == "" {
		return fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, MinPasswordLength)
	}
	return nil
}
