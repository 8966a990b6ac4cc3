package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/ports"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ContentService moderates the public site content: service offerings,
// testimonials, the contact block, and legal pages.
type ContentService struct {
	repo ports.ContentRepository
	log  zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, log zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, log: log}
}

func (s *ContentService) CreateService(ctx context.Context, input ports.ServiceInput) (*domain.ServiceOffering, error) {
	if input.Title == "" || input.Summary == "" {
		return nil, fmt.Errorf("%w: title and summary are required", domain.ErrValidation)
	}
	now := time.Now().UTC()
	return s.repo.CreateService(ctx, &domain.ServiceOffering{
		Title:       input.Title,
		Summary:     input.Summary,
		Description: input.Description,
		Tags:        input.Tags,
		Active:      input.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *ContentService) UpdateService(ctx context.Context, id string, input ports.ServiceInput) (*domain.ServiceOffering, error) {
	if input.Title == "" || input.Summary == "" {
		return nil, fmt.Errorf("%w: title and summary are required", domain.ErrValidation)
	}
	return s.repo.UpdateService(ctx, &domain.ServiceOffering{
		ID:          id,
		Title:       input.Title,
		Summary:     input.Summary,
		Description: input.Description,
		Tags:        input.Tags,
		Active:      input.Active,
		UpdatedAt:   time.Now().UTC(),
	})
}

func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	return s.repo.DeleteService(ctx, id)
}

func (s *ContentService) PublicServices(ctx context.Context) ([]*domain.ServiceOffering, error) {
	return s.repo.ListServices(ctx, true)
}

func (s *ContentService) AllServices(ctx context.Context) ([]*domain.ServiceOffering, error) {
	return s.repo.ListServices(ctx, false)
}

func (s *ContentService) CreateTestimonial(ctx context.Context, input ports.TestimonialInput) (*domain.Testimonial, error) {
	if input.Author == "" || input.Quote == "" {
		return nil, fmt.Errorf("%w: author and quote are required", domain.ErrValidation)
	}
	return s.repo.CreateTestimonial(ctx, &domain.Testimonial{
		Author:     input.Author,
		AuthorRole: input.AuthorRole,
		Quote:      input.Quote,
		Approved:   input.Approved,
		CreatedAt:  time.Now().UTC(),
	})
}

func (s *ContentService) UpdateTestimonial(ctx context.Context, id string, input ports.TestimonialInput) (*domain.Testimonial, error) {
	if input.Author == "" || input.Quote == "" {
		return nil, fmt.Errorf("%w: author and quote are required", domain.ErrValidation)
	}
	return s.repo.UpdateTestimonial(ctx, &domain.Testimonial{
		ID:         id,
		Author:     input.Author,
		AuthorRole: input.AuthorRole,
		Quote:      input.Quote,
		Approved:   input.Approved,
	})
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	return s.repo.DeleteTestimonial(ctx, id)
}

func (s *ContentService) PublicTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	return s.repo.ListTestimonials(ctx, true)
}

func (s *ContentService) AllTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	return s.repo.ListTestimonials(ctx, false)
}

func (s *ContentService) ContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	return s.repo.GetContactInfo(ctx)
}

func (s *ContentService) UpdateContactInfo(ctx context.Context, info domain.ContactInfo) (*domain.ContactInfo, error) {
	if info.Email == "" {
		return nil, fmt.Errorf("%w: contact email is required", domain.ErrValidation)
	}
	info.UpdatedAt = time.Now().UTC()
	if err := s.repo.PutContactInfo(ctx, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// PutLegalPage creates or replaces the page addressed by its slug.
func (s *ContentService) PutLegalPage(ctx context.Context, input ports.LegalPageInput) (*domain.LegalPage, error) {
	if !slugPattern.MatchString(input.Slug) {
		return nil, fmt.Errorf("%w: invalid slug %q", domain.ErrValidation, input.Slug)
	}
	if input.Title == "" || input.Body == "" {
		return nil, fmt.Errorf("%w: title and body are required", domain.ErrValidation)
	}
	return s.repo.UpsertLegalPage(ctx, &domain.LegalPage{
		Slug:      input.Slug,
		Title:     input.Title,
		Body:      input.Body,
		UpdatedAt: time.Now().UTC(),
	})
}

func (s *ContentService) DeleteLegalPage(ctx context.Context, slug string) error {
	return s.repo.DeleteLegalPage(ctx, slug)
}

func (s *ContentService) LegalPage(ctx context.Context, slug string) (*domain.LegalPage, error) {
	return s.repo.GetLegalPage(ctx, slug)
}

func (s *ContentService) ListLegalPages(ctx context.Context) ([]*domain.LegalPage, error) {
	return s.repo.ListLegalPages(ctx)
}
