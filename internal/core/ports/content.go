package ports

import (
	"context"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

// ServiceInput carries the editable fields of a service offering.
type ServiceInput struct {
	Title       string
	Summary     string
	Description string
	Tags        []string
	Active      bool
}

// TestimonialInput carries the editable fields of a testimonial.
type TestimonialInput struct {
	Author     string
	AuthorRole string
	Quote      string
	Approved   bool
}

// LegalPageInput carries the editable fields of a legal page.
type LegalPageInput struct {
	Slug  string
	Title string
	Body  string
}

// ContentRepository persists the moderated site content collections.
type ContentRepository interface {
	CreateService(ctx context.Context, s *domain.ServiceOffering) (*domain.ServiceOffering, error)
	UpdateService(ctx context.Context, s *domain.ServiceOffering) (*domain.ServiceOffering, error)
	DeleteService(ctx context.Context, id string) error
	ListServices(ctx context.Context, activeOnly bool) ([]*domain.ServiceOffering, error)

	CreateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
	ListTestimonials(ctx context.Context, approvedOnly bool) ([]*domain.Testimonial, error)

	GetContactInfo(ctx context.Context) (*domain.ContactInfo, error)
	PutContactInfo(ctx context.Context, info *domain.ContactInfo) error

	UpsertLegalPage(ctx context.Context, p *domain.LegalPage) (*domain.LegalPage, error)
	DeleteLegalPage(ctx context.Context, slug string) error
	GetLegalPage(ctx context.Context, slug string) (*domain.LegalPage, error)
	ListLegalPages(ctx context.Context) ([]*domain.LegalPage, error)
}

// ContentService is the moderation use-case layer over ContentRepository.
type ContentService interface {
	CreateService(ctx context.Context, input ServiceInput) (*domain.ServiceOffering, error)
	UpdateService(ctx context.Context, id string, input ServiceInput) (*domain.ServiceOffering, error)
	DeleteService(ctx context.Context, id string) error
	// PublicServices returns active offerings only.
	PublicServices(ctx context.Context) ([]*domain.ServiceOffering, error)
	AllServices(ctx context.Context) ([]*domain.ServiceOffering, error)

	CreateTestimonial(ctx context.Context, input TestimonialInput) (*domain.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, input TestimonialInput) (*domain.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
	PublicTestimonials(ctx context.Context) ([]*domain.Testimonial, error)
	AllTestimonials(ctx context.Context) ([]*domain.Testimonial, error)

	ContactInfo(ctx context.Context) (*domain.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, info domain.ContactInfo) (*domain.ContactInfo, error)

	PutLegalPage(ctx context.Context, input LegalPageInput) (*domain.LegalPage, error)
	DeleteLegalPage(ctx context.Context, slug string) error
	LegalPage(ctx context.Context, slug string) (*domain.LegalPage, error)
	ListLegalPages(ctx context.Context) ([]*domain.LegalPage, error)
}
