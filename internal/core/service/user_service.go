package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/ports"
)

// UserService covers self-service profile access and the admin user tab.
type UserService struct {
	users ports.UserRepository
	files ports.FileStore
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, files ports.FileStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, files: files, log: log}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// UpdateProfile applies the owner-editable fields. Empty strings leave the
// stored value unchanged; a non-nil InterestedServices replaces the list.
func (s *UserService) UpdateProfile(ctx context.Context, id string, input ports.ProfileUpdateInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setIfPresent(&user.Name, input.Name)
	setIfPresent(&user.Phone, input.Phone)
	setIfPresent(&user.DateOfBirth, input.DateOfBirth)
	setIfPresent(&user.Gender, input.Gender)
	setIfPresent(&user.Employment, input.Employment)
	setIfPresent(&user.Education, input.Education)
	setIfPresent(&user.SalaryExpectation, input.SalaryExpectation)
	setIfPresent(&user.PreferredLocation, input.PreferredLocation)
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.InterestedServices != nil {
		user.InterestedServices = input.InterestedServices
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	return updated.Sanitized(), nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out, nil
}

// Delete removes the account and its stored resume, if any.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	if user.ResumePath != "" {
		if err := s.files.Remove(ctx, user.ResumePath); err != nil {
			s.log.Warn().Err(err).Str("path", user.ResumePath).Msg("orphaned resume not removed")
		}
	}
	s.log.Info().Str("user_id", id).Msg("account deleted")
	return nil
}

// ChangeRole elevates or demotes an account. Reached only through the
// admin-gated route.
func (s *UserService) ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Str("role", string(role)).Msg("role changed")
	return updated.Sanitized(), nil
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
