// Package client is the HTTP client for the CareerBridge API. It implements
// the wizard's Registrar so the registration flow can submit through it, and
// exposes login/logout/me for session management.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/careerbridge/careerbridge-api/internal/client/wizard"
	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

const defaultRequestTimeout = 30 * time.Second

// Client talks to one CareerBridge API server.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
}

// authPayload mirrors the server's auth response envelope.
type authPayload struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

type apiError struct {
	Message string `json:"message"`
}

// Register performs the basic registration.
func (c *Client) Register(ctx context.Context, name, email, password string) (*wizard.Result, error) {
	body, err := json.Marshal(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	return c.doAuth(ctx, http.MethodPost, "/api/auth/register", "application/json", bytes.NewReader(body), "")
}

// RegisterDetailed submits the full wizard draft plus optional resume as one
// multipart request. It satisfies wizard.Registrar.
func (c *Client) RegisterDetailed(ctx context.Context, draft wizard.Draft, resume *wizard.Resume) (*wizard.Result, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	interested, err := json.Marshal(draft.InterestedServices)
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"name":               draft.Name,
		"email":              draft.Email,
		"password":           draft.Password,
		"phone":              draft.Phone,
		"dateOfBirth":        draft.DateOfBirth,
		"addressLine":        draft.Address.Line,
		"addressCity":        draft.Address.City,
		"addressZip":         draft.Address.Zip,
		"gender":             draft.Gender,
		"employment":         draft.Employment,
		"education":          draft.Education,
		"salaryExpectation":  draft.SalaryExpectation,
		"preferredLocation":  draft.PreferredLocation,
		"interestedServices": string(interested),
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := mw.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("encode form: %w", err)
		}
	}

	if resume != nil {
		part, err := mw.CreateFormFile("resume", resume.Filename)
		if err != nil {
			return nil, fmt.Errorf("encode resume: %w", err)
		}
		// The resume is buffered in the draft, so a retried submission
		// writes the full content again.
		if _, err := part.Write(resume.Data); err != nil {
			return nil, fmt.Errorf("encode resume: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}

	return c.doAuth(ctx, http.MethodPost, "/api/auth/register-detailed", mw.FormDataContentType(), &buf, "")
}

// Login authenticates and returns the fresh session.
func (c *Client) Login(ctx context.Context, email, password string) (*wizard.Result, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	return c.doAuth(ctx, http.MethodPost, "/api/auth/login", "application/json", bytes.NewReader(body), "")
}

// Me fetches the current account view, verifying the stored token server-side.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &user, nil
}

// Logout revokes the token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}
	return nil
}

func (c *Client) doAuth(ctx context.Context, method, path, contentType string, body io.Reader, token string) (*wizard.Result, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, responseError(resp)
	}

	var payload authPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &wizard.Result{Token: payload.Token, User: payload.User}, nil
}

// responseError decodes the server's error envelope and maps the well-known
// messages back onto the domain sentinels, so callers branch on errors.Is
// rather than string compares.
func responseError(resp *http.Response) error {
	var payload apiError
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	switch payload.Message {
	case "User already exists":
		return domain.ErrEmailTaken
	case "Invalid credentials":
		return domain.ErrInvalidCredentials
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrMissingToken
	case http.StatusForbidden:
		return domain.ErrInvalidToken
	}
	if payload.Message == "" {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("server rejected request: %s", payload.Message)
}
