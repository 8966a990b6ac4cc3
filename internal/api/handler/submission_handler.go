package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/ports"
)

// SubmissionHandler receives visitor intake forms and serves the admin review
// lists. Applications and fraud reports arrive as multipart because of their
// optional file attachments; leads and messages are plain JSON.
type SubmissionHandler struct {
	service ports.SubmissionService
}

func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

type leadRequest struct {
	Name            string `json:"name"  validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	ServiceInterest string `json:"serviceInterest"`
	Message         string `json:"message"`
}

type contactMessageRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject"`
	Body    string `json:"body"    validate:"required"`
}

// SubmitLead stores a service-interest lead.
//
// @Summary      Submit a lead
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body      leadRequest  true  "Lead details"
// @Success      201   {object}  domain.Lead
// @Failure      400   {object}  errorResponse
// @Router       /api/leads [post]
func (h *SubmissionHandler) SubmitLead(c echo.Context) error {
	var req leadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	lead, err := h.service.SubmitLead(c.Request().Context(), ports.LeadInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		ServiceInterest: req.ServiceInterest,
		Message:         req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, lead)
}

// SubmitMessage stores a contact-form message.
//
// @Summary      Submit a contact message
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        body  body      contactMessageRequest  true  "Message details"
// @Success      201   {object}  domain.ContactMessage
// @Failure      400   {object}  errorResponse
// @Router       /api/messages [post]
func (h *SubmissionHandler) SubmitMessage(c echo.Context) error {
	var req contactMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	msg, err := h.service.SubmitMessage(c.Request().Context(), ports.MessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, msg)
}

// SubmitApplication stores a job application with an optional resume.
//
// @Summary      Submit a job application
// @Tags         submissions
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  false  "Resume (PDF, DOC, DOCX; max 10 MB)"
// @Success      201     {object}  domain.JobApplication
// @Failure      400     {object}  errorResponse
// @Router       /api/applications [post]
func (h *SubmissionHandler) SubmitApplication(c echo.Context) error {
	input := ports.ApplicationInput{
		Name:      c.FormValue("name"),
		Email:     c.FormValue("email"),
		Phone:     c.FormValue("phone"),
		Position:  c.FormValue("position"),
		CoverNote: c.FormValue("coverNote"),
	}

	upload, err := formUpload(c, "resume")
	if err != nil {
		return err
	}
	input.Resume = upload

	app, err := h.service.SubmitApplication(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// SubmitFraudReport stores a scam report with optional evidence.
//
// @Summary      Submit a fraud report
// @Tags         submissions
// @Accept       multipart/form-data
// @Produce      json
// @Param        evidence  formData  file  false  "Evidence (image, PDF, DOC, DOCX; max 10 MB)"
// @Success      201       {object}  domain.FraudReport
// @Failure      400       {object}  errorResponse
// @Router       /api/fraud-reports [post]
func (h *SubmissionHandler) SubmitFraudReport(c echo.Context) error {
	input := ports.FraudReportInput{
		ReporterName:  c.FormValue("reporterName"),
		ReporterEmail: c.FormValue("reporterEmail"),
		Description:   c.FormValue("description"),
	}

	upload, err := formUpload(c, "evidence")
	if err != nil {
		return err
	}
	input.Evidence = upload

	report, err := h.service.SubmitFraudReport(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, report)
}

// --- Admin review lists ---

func (h *SubmissionHandler) ListLeads(c echo.Context) error {
	items, err := h.service.Leads(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SubmissionHandler) ListMessages(c echo.Context) error {
	items, err := h.service.Messages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SubmissionHandler) ListApplications(c echo.Context) error {
	items, err := h.service.Applications(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SubmissionHandler) ListFraudReports(c echo.Context) error {
	items, err := h.service.FraudReports(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Delete removes one submission of the kind given in the route.
func (h *SubmissionHandler) Delete(kind domain.SubmissionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.service.Delete(c.Request().Context(), kind, c.Param("id")); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, messageResponse{Message: "Submission deleted"})
	}
}

// formUpload extracts an optional multipart file. Absence is not an error;
// an oversized file is rejected before the body is read any further.
func formUpload(c echo.Context, field string) (*ports.ResumeUpload, error) {
	file, err := c.FormFile(field)
	if err != nil || file == nil {
		return nil, nil
	}
	if file.Size > domain.MaxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds %d MB limit", domain.ErrUploadRejected, domain.MaxUploadBytes>>20)
	}
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s upload: %w", field, err)
	}
	// Closed when the request body is discarded by echo.
	return &ports.ResumeUpload{Filename: file.Filename, Size: file.Size, Content: src}, nil
}
