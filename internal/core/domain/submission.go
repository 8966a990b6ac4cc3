package domain

import "time"

// SubmissionKind discriminates the visitor intake collections.
type SubmissionKind string

const (
	KindLead        SubmissionKind = "lead"
	KindMessage     SubmissionKind = "message"
	KindApplication SubmissionKind = "application"
	KindFraudReport SubmissionKind = "fraud_report"
)

// Lead is a visitor expressing interest in one of the offered services.
type Lead struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	ServiceInterest string    `json:"serviceInterest,omitempty"`
	Message         string    `json:"message,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ContactMessage is a free-form message from the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// JobApplication is a visitor applying to an open position, optionally with a
// resume stored on the file host and referenced by relative path.
type JobApplication struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Position   string    `json:"position"`
	CoverNote  string    `json:"coverNote,omitempty"`
	ResumePath string    `json:"resumePath,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FraudReport is a visitor reporting a scam impersonating the consultancy,
// optionally with an evidence file (image or document).
type FraudReport struct {
	ID            string    `json:"id"`
	ReporterName  string    `json:"reporterName"`
	ReporterEmail string    `json:"reporterEmail"`
	Description   string    `json:"description"`
	EvidencePath  string    `json:"evidencePath,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
