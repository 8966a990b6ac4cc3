package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerbridge/careerbridge-api/internal/api/middleware"
	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/ports"
)

// UserHandler covers self-service profile updates and the admin user tab.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type addressRequest struct {
	Line string `json:"line"`
	City string `json:"city"`
	Zip  string `json:"zip"`
}

type updateProfileRequest struct {
	Name               string          `json:"name,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	DateOfBirth        string          `json:"dateOfBirth,omitempty"`
	Address            *addressRequest `json:"address,omitempty"`
	Gender             string          `json:"gender,omitempty"`
	Employment         string          `json:"employment,omitempty"`
	Education          string          `json:"education,omitempty"`
	SalaryExpectation  string          `json:"salaryExpectation,omitempty"`
	PreferredLocation  string          `json:"preferredLocation,omitempty"`
	InterestedServices []string        `json:"interestedServices,omitempty"`
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// UpdateProfile applies profile edits to the authenticated account only.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields to change"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims := middleware.ContextClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input := ports.ProfileUpdateInput{
		Name:               req.Name,
		Phone:              req.Phone,
		DateOfBirth:        req.DateOfBirth,
		Gender:             req.Gender,
		Employment:         req.Employment,
		Education:          req.Education,
		SalaryExpectation:  req.SalaryExpectation,
		PreferredLocation:  req.PreferredLocation,
		InterestedServices: req.InterestedServices,
	}
	if req.Address != nil {
		input.Address = &domain.Address{Line: req.Address.Line, City: req.Address.City, Zip: req.Address.Zip}
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), claims.UserID, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List returns every account without password hashes.
//
// @Summary      List accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Delete removes an account.
//
// @Summary      Delete an account
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Account deleted"})
}

// ChangeRole elevates or demotes an account.
//
// @Summary      Change an account's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Account id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/users/{id}/role [put]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.ChangeRole(c.Request().Context(), c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
