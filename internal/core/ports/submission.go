package ports

import (
	"context"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

// LeadInput is a visitor's interest in a service.
type LeadInput struct {
	Name            string
	Email           string
	Phone           string
	ServiceInterest string
	Message         string
}

// MessageInput is a contact-form message.
type MessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// ApplicationInput is a job application; the resume is optional.
type ApplicationInput struct {
	Name      string
	Email     string
	Phone     string
	Position  string
	CoverNote string
	Resume    *ResumeUpload
}

// FraudReportInput is a scam report; the evidence file is optional.
type FraudReportInput struct {
	ReporterName  string
	ReporterEmail string
	Description   string
	Evidence      *ResumeUpload
}

// SubmissionRepository persists the visitor intake collections.
type SubmissionRepository interface {
	InsertLead(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	InsertMessage(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	InsertApplication(ctx context.Context, a *domain.JobApplication) (*domain.JobApplication, error)
	InsertFraudReport(ctx context.Context, r *domain.FraudReport) (*domain.FraudReport, error)

	ListLeads(ctx context.Context) ([]*domain.Lead, error)
	ListMessages(ctx context.Context) ([]*domain.ContactMessage, error)
	ListApplications(ctx context.Context) ([]*domain.JobApplication, error)
	ListFraudReports(ctx context.Context) ([]*domain.FraudReport, error)

	Delete(ctx context.Context, kind domain.SubmissionKind, id string) error
}

// SubmissionService validates and stores visitor submissions and serves the
// admin review lists.
type SubmissionService interface {
	SubmitLead(ctx context.Context, input LeadInput) (*domain.Lead, error)
	SubmitMessage(ctx context.Context, input MessageInput) (*domain.ContactMessage, error)
	SubmitApplication(ctx context.Context, input ApplicationInput) (*domain.JobApplication, error)
	SubmitFraudReport(ctx context.Context, input FraudReportInput) (*domain.FraudReport, error)

	Leads(ctx context.Context) ([]*domain.Lead, error)
	Messages(ctx context.Context) ([]*domain.ContactMessage, error)
	Applications(ctx context.Context) ([]*domain.JobApplication, error)
	FraudReports(ctx context.Context) ([]*domain.FraudReport, error)

	Delete(ctx context.Context, kind domain.SubmissionKind, id string) error
}
