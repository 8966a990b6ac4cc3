package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/ports"
)

// ContentHandler serves the public site content and its admin moderation CRUD.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

type serviceRequest struct {
	Title       string   `json:"title"   validate:"required"`
	Summary     string   `json:"summary" validate:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Active      bool     `json:"active"`
}

type testimonialRequest struct {
	Author     string `json:"author" validate:"required"`
	AuthorRole string `json:"authorRole"`
	Quote      string `json:"quote"  validate:"required"`
	Approved   bool   `json:"approved"`
}

type contactInfoRequest struct {
	Email       string            `json:"email" validate:"required,email"`
	Phone       string            `json:"phone"`
	Address     string            `json:"address"`
	SocialLinks map[string]string `json:"socialLinks"`
}

type legalPageRequest struct {
	Slug  string `json:"slug"  validate:"required"`
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"  validate:"required"`
}

// --- Public routes ---

// PublicServices returns active service offerings.
//
// @Summary      List active services
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.ServiceOffering
// @Router       /api/services [get]
func (h *ContentHandler) PublicServices(c echo.Context) error {
	items, err := h.service.PublicServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// PublicTestimonials returns approved testimonials only.
//
// @Summary      List approved testimonials
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Testimonial
// @Router       /api/testimonials [get]
func (h *ContentHandler) PublicTestimonials(c echo.Context) error {
	items, err := h.service.PublicTestimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ContactInfo returns the site-wide contact block.
//
// @Summary      Contact information
// @Tags         content
// @Produce      json
// @Success      200  {object}  domain.ContactInfo
// @Router       /api/contact-info [get]
func (h *ContentHandler) ContactInfo(c echo.Context) error {
	info, err := h.service.ContactInfo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// LegalPage returns one slug-addressed legal page.
//
// @Summary      Legal page by slug
// @Tags         content
// @Produce      json
// @Param        slug  path      string  true  "Page slug (e.g. privacy-policy)"
// @Success      200   {object}  domain.LegalPage
// @Failure      404   {object}  errorResponse
// @Router       /api/legal/{slug} [get]
func (h *ContentHandler) LegalPage(c echo.Context) error {
	page, err := h.service.LegalPage(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// --- Admin routes ---

func (h *ContentHandler) AdminListServices(c echo.Context) error {
	items, err := h.service.AllServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) CreateService(c echo.Context) error {
	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.service.CreateService(c.Request().Context(), serviceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *ContentHandler) UpdateService(c echo.Context) error {
	var req serviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updated, err := h.service.UpdateService(c.Request().Context(), c.Param("id"), serviceInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ContentHandler) DeleteService(c echo.Context) error {
	if err := h.service.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Service deleted"})
}

func (h *ContentHandler) AdminListTestimonials(c echo.Context) error {
	items, err := h.service.AllTestimonials(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ContentHandler) CreateTestimonial(c echo.Context) error {
	var req testimonialRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	created, err := h.service.CreateTestimonial(c.Request().Context(), testimonialInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *ContentHandler) UpdateTestimonial(c echo.Context) error {
	var req testimonialRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	updated, err := h.service.UpdateTestimonial(c.Request().Context(), c.Param("id"), testimonialInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ContentHandler) DeleteTestimonial(c echo.Context) error {
	if err := h.service.DeleteTestimonial(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Testimonial deleted"})
}

func (h *ContentHandler) UpdateContactInfo(c echo.Context) error {
	var req contactInfoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	info, err := h.service.UpdateContactInfo(c.Request().Context(), domain.ContactInfo{
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		SocialLinks: req.SocialLinks,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

func (h *ContentHandler) AdminListLegalPages(c echo.Context) error {
	pages, err := h.service.ListLegalPages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pages)
}

func (h *ContentHandler) PutLegalPage(c echo.Context) error {
	var req legalPageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	page, err := h.service.PutLegalPage(c.Request().Context(), ports.LegalPageInput{
		Slug:  req.Slug,
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ContentHandler) DeleteLegalPage(c echo.Context) error {
	if err := h.service.DeleteLegalPage(c.Request().Context(), c.Param("slug")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Page deleted"})
}

func serviceInput(req serviceRequest) ports.ServiceInput {
	return ports.ServiceInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Description: req.Description,
		Tags:        req.Tags,
		Active:      req.Active,
	}
}

func testimonialInput(req testimonialRequest) ports.TestimonialInput {
	return ports.TestimonialInput{
		Author:     req.Author,
		AuthorRole: req.AuthorRole,
		Quote:      req.Quote,
		Approved:   req.Approved,
	}
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
