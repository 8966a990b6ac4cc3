package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body.Message
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "User already exists"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{"missing token", domain.ErrMissingToken, http.StatusUnauthorized, "missing authentication token"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"resource not found", domain.ErrNotFound, http.StatusNotFound, "resource not found"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := render(t, tc.err)
			if code != tc.code || msg != tc.message {
				t.Fatalf("got %d %q, want %d %q", code, msg, tc.code, tc.message)
			}
		})
	}
}

func TestErrorHandler_TokenFailuresAre403(t *testing.T) {
	for _, err := range []error{domain.ErrInvalidToken, domain.ErrTokenExpired, domain.ErrForbidden} {
		code, _ := render(t, err)
		if code != http.StatusForbidden {
			t.Fatalf("%v: got %d, want 403", err, code)
		}
	}
}

func TestErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	code, msg := render(t, fmt.Errorf("insert account: %w", domain.ErrEmailTaken))
	if code != http.StatusBadRequest || msg != "User already exists" {
		t.Fatalf("wrapped sentinel lost its mapping: %d %q", code, msg)
	}
}

func TestErrorHandler_ValidationMessagePassedThrough(t *testing.T) {
	code, msg := render(t, fmt.Errorf("%w: at least one interested service is required", domain.ErrValidation))
	if code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", code)
	}
	if msg == "" || msg == "internal server error" {
		t.Fatalf("validation detail swallowed: %q", msg)
	}
}

func TestErrorHandler_EchoHTTPErrorPreserved(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized || msg != "missing authorization header" {
		t.Fatalf("got %d %q", code, msg)
	}
}
