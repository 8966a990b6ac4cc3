package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/careerbridge/careerbridge-api/internal/api/metrics"
	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/ports"
)

// SubmissionService validates and stores visitor intake: leads, contact
// messages, job applications, and fraud reports.
type SubmissionService struct {
	repo  ports.SubmissionRepository
	files ports.FileStore
	log   zerolog.Logger
}

func NewSubmissionService(repo ports.SubmissionRepository, files ports.FileStore, log zerolog.Logger) *SubmissionService {
	return &SubmissionService{repo: repo, files: files, log: log}
}

func (s *SubmissionService) SubmitLead(ctx context.Context, input ports.LeadInput) (*domain.Lead, error) {
	if input.Name == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}
	lead, err := s.repo.InsertLead(ctx, &domain.Lead{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		ServiceInterest: input.ServiceInterest,
		Message:         input.Message,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	metrics.SubmissionsTotal.WithLabelValues(string(domain.KindLead)).Inc()
	return lead, nil
}

func (s *SubmissionService) SubmitMessage(ctx context.Context, input ports.MessageInput) (*domain.ContactMessage, error) {
	if input.Name == "" || input.Email == "" || input.Body == "" {
		return nil, fmt.Errorf("%w: name, email and message are required", domain.ErrValidation)
	}
	msg, err := s.repo.InsertMessage(ctx, &domain.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Body:      input.Body,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	metrics.SubmissionsTotal.WithLabelValues(string(domain.KindMessage)).Inc()
	return msg, nil
}

// SubmitApplication stores a job application. The optional resume is checked
// against the document allow-list before any write happens.
func (s *SubmissionService) SubmitApplication(ctx context.Context, input ports.ApplicationInput) (*domain.JobApplication, error) {
	if input.Name == "" || input.Email == "" || input.Position == "" {
		return nil, fmt.Errorf("%w: name, email and position are required", domain.ErrValidation)
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

	app, err := s.repo.InsertApplication(ctx, &domain.JobApplication{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Position:   input.Position,
		CoverNote:  input.CoverNote,
		ResumePath: resumePath,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		if resumePath != "" {
			if rmErr := s.files.Remove(ctx, resumePath); rmErr != nil {
				s.log.Warn().Err(rmErr).Str("path", resumePath).Msg("orphaned resume not removed")
			}
		}
		return nil, err
	}
	metrics.SubmissionsTotal.WithLabelValues(string(domain.KindApplication)).Inc()
	return app, nil
}

// SubmitFraudReport stores a scam report; evidence files may also be images.
func (s *SubmissionService) SubmitFraudReport(ctx context.Context, input ports.FraudReportInput) (*domain.FraudReport, error) {
	if input.ReporterName == "" || input.ReporterEmail == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: reporter name, email and description are required", domain.ErrValidation)
	}

	var evidencePath string
	if input.Evidence != nil {
		if err := domain.ValidateEvidenceUpload(input.Evidence.Filename, input.Evidence.Size); err != nil {
			metrics.UploadsRejectedTotal.WithLabelValues("evidence").Inc()
			return nil, err
		}
		path, err := s.files.Save(ctx, "evidence", input.Evidence.Filename, input.Evidence.Content)
		if err != nil {
			return nil, fmt.Errorf("store evidence: %w", err)
		}
		evidencePath = path
	}

	report, err := s.repo.InsertFraudReport(ctx, &domain.FraudReport{
		ReporterName:  input.ReporterName,
		ReporterEmail: input.ReporterEmail,
		Description:   input.Description,
		EvidencePath:  evidencePath,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		if evidencePath != "" {
			if rmErr := s.files.Remove(ctx, evidencePath); rmErr != nil {
				s.log.Warn().Err(rmErr).Str("path", evidencePath).Msg("orphaned evidence not removed")
			}
		}
		return nil, err
	}
	metrics.SubmissionsTotal.WithLabelValues(string(domain.KindFraudReport)).Inc()
	return report, nil
}

func (s *SubmissionService) Leads(ctx context.Context) ([]*domain.Lead, error) {
	return s.repo.ListLeads(ctx)
}

func (s *SubmissionService) Messages(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.repo.ListMessages(ctx)
}

func (s *SubmissionService) Applications(ctx context.Context) ([]*domain.JobApplication, error) {
	return s.repo.ListApplications(ctx)
}

func (s *SubmissionService) FraudReports(ctx context.Context) ([]*domain.FraudReport, error) {
	return s.repo.ListFraudReports(ctx)
}

func (s *SubmissionService) Delete(ctx context.Context, kind domain.SubmissionKind, id string) error {
	return s.repo.Delete(ctx, kind, id)
}
