package handler

import "github.com/careerbridge/careerbridge-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses; rendering happens in the central HTTP error handler.
type errorResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
