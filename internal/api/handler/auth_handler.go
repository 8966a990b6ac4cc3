package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/careerbridge-api/internal/api/middleware"
	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/ports"
)

// AuthHandler handles registration, login, logout, and the current-session view.
type AuthHandler struct {
	authService ports.AuthService
	userService ports.UserService
}

func NewAuthHandler(authService ports.AuthService, userService ports.UserService) *AuthHandler {
	return &AuthHandler{authService: authService, userService: userService}
}

// Register creates an account from the basic form.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Message: "Registration successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// RegisterDetailed creates an account from the full wizard payload, submitted
// as one multipart request with an optional resume file.
//
// @Summary      Register with a complete profile
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  false  "Resume (PDF, DOC, DOCX; max 10 MB)"
// @Success      201     {object}  authResponse
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/auth/register-detailed [post]
func (h *AuthHandler) RegisterDetailed(c echo.Context) error {
	var interested []string
	if raw := c.FormValue("interestedServices"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &interested); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "interestedServices must be a JSON array")
		}
	}

	input := ports.DetailedRegisterInput{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		Password:    c.FormValue("password"),
		Phone:       c.FormValue("phone"),
		DateOfBirth: c.FormValue("dateOfBirth"),
		Address: domain.Address{
			Line: c.FormValue("addressLine"),
			City: c.FormValue("addressCity"),
			Zip:  c.FormValue("addressZip"),
		},
		Gender:             c.FormValue("gender"),
		Employment:         c.FormValue("employment"),
		Education:          c.FormValue("education"),
		SalaryExpectation:  c.FormValue("salaryExpectation"),
		PreferredLocation:  c.FormValue("preferredLocation"),
		InterestedServices: interested,
	}

	file, err := c.FormFile("resume")
	if err == nil && file != nil {
		// Size and type are re-validated in the service; this guard stops
		// oversized bodies before they are buffered any further.
		if file.Size > domain.MaxUploadBytes {
			return fmt.Errorf("%w: file exceeds %d MB limit", domain.ErrUploadRejected, domain.MaxUploadBytes>>20)
		}
		src, err := file.Open()
		if err != nil {
			return fmt.Errorf("open resume upload: %w", err)
		}
		defer src.Close()
		input.Resume = &ports.ResumeUpload{
			Filename: file.Filename,
			Size:     file.Size,
			Content:  src,
		}
	}

	result, err := h.authService.RegisterDetailed(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{
		Message: "Registration successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// Login authenticates an account and returns a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		// Malformed login input is indistinguishable from bad credentials
		// on purpose.
		return domain.ErrInvalidCredentials
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// Logout revokes the presented token for the remainder of its validity.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := middleware.ContextClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

// Me returns the authenticated account's current view.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.ContextClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	user, err := h.userService.Get(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
