package domain

import "time"

// ServiceOffering is one consultancy service shown on the landing page and
// offered as an interest tag during registration.
type ServiceOffering struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Testimonial is a client quote. Only approved testimonials are served on the
// public routes; moderation happens in the admin back office.
type Testimonial struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	AuthorRole string    `json:"authorRole,omitempty"`
	Quote      string    `json:"quote"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ContactInfo is the site-wide contact block. A single document; updates
// replace it wholesale.
type ContactInfo struct {
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Address     string            `json:"address"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// LegalPage is a slug-addressed static page (terms, privacy, refunds).
type LegalPage struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updatedAt"`
}
