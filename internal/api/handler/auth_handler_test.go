package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careerbridge/careerbridge-api/internal/api"
	"github.com/careerbridge/careerbridge-api/internal/api/handler"
	"github.com/careerbridge/careerbridge-api/internal/api/middleware"
	"github.com/careerbridge/careerbridge-api/internal/core/domain"
	"github.com/careerbridge/careerbridge-api/internal/core/service"
)

type memUserRepo struct {
	byID   map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byID[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	r.byID[user.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u.Sanitized()
		out = append(out, &clone)
	}
	return out, nil
}

type memDenylist struct {
	revoked map[string]bool
}

func (d *memDenylist) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	if d.revoked == nil {
		d.revoked = map[string]bool{}
	}
	d.revoked[tokenID] = true
	return nil
}

func (d *memDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return d.revoked[tokenID], nil
}

type memFileStore struct {
	saved map[string][]byte
}

func (s *memFileStore) Save(_ context.Context, field, filename string, content io.Reader) (string, error) {
	if s.saved == nil {
		s.saved = map[string][]byte{}
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	path := fmt.Sprintf("%s-%d-%s", field, len(s.saved), filename)
	s.saved[path] = data
	return path, nil
}

func (s *memFileStore) Remove(_ context.Context, path string) error {
	delete(s.saved, path)
	return nil
}

type testServer struct {
	echo  *echo.Echo
	users *memUserRepo
	files *memFileStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	tokens, err := service.NewTokenService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	users := newMemUserRepo()
	files := &memFileStore{}
	denylist := &memDenylist{}
	log := zerolog.Nop()

	authService := service.NewAuthService(users, tokens, denylist, files, log)
	userService := service.NewUserService(users, files, log)
	authHandler := handler.NewAuthHandler(authService, userService)

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(log)

	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/register-detailed", authHandler.RegisterDetailed)
	e.POST("/api/auth/login", authHandler.Login)

	requireAuth := middleware.RequireAuth(tokens, denylist)
	e.GET("/api/auth/me", authHandler.Me, requireAuth)
	e.POST("/api/auth/logout", authHandler.Logout, requireAuth)

	return &testServer{echo: e, users: users, files: files}
}

func (ts *testServer) postJSON(path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, vs := range header {
		req.Header[k] = vs
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

type authPayload struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

func decodeAuth(t *testing.T, rec *httptest.ResponseRecorder) authPayload {
	t.Helper()
	var out authPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error response %q: %v", rec.Body.String(), err)
	}
	return out.Message
}

const registerAva = `{"name":"Ava","email":"ava@example.com","password":"secret1"}`

func TestRegister_CreatesAccountWithToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.postJSON("/api/auth/register", registerAva, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	got := decodeAuth(t, rec)
	if got.Token == "" {
		t.Fatalf("expected a token in the response")
	}
	if got.User == nil || got.User.Role != domain.RoleUser {
		t.Fatalf("expected user role, got %+v", got.User)
	}
	if got.User.ProfileCompleted {
		t.Fatalf("basic registration must not mark the profile complete")
	}
	if strings.Contains(rec.Body.String(), "passwordHash") || strings.Contains(rec.Body.String(), "secret1") {
		t.Fatalf("credential material leaked into the response: %s", rec.Body.String())
	}
}

func TestRegister_DuplicateEmailIs400(t *testing.T) {
	ts := newTestServer(t)

	if rec := ts.postJSON("/api/auth/register", registerAva, nil); rec.Code != http.StatusCreated {
		t.Fatalf("first registration: expected 201, got %d", rec.Code)
	}

	rec := ts.postJSON("/api/auth/register", registerAva, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "User already exists" {
		t.Fatalf("expected duplicate-email message, got %q", msg)
	}
}

func TestRegister_SelfServiceCannotClaimAdmin(t *testing.T) {
	ts := newTestServer(t)

	body := `{"name":"Ava","email":"ava@example.com","password":"secret1","role":"admin"}`
	rec := ts.postJSON("/api/auth/register", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeAuth(t, rec); got.User.Role != domain.RoleUser {
		t.Fatalf("unauthenticated registration granted role %q", got.User.Role)
	}
}

func TestLogin_WrongPasswordIs400(t *testing.T) {
	ts := newTestServer(t)
	ts.postJSON("/api/auth/register", registerAva, nil)

	rec := ts.postJSON("/api/auth/login", `{"email":"ava@example.com","password":"wrong-pass"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if msg := errorMessage(t, rec); msg != "Invalid credentials" {
		t.Fatalf("expected credentials message, got %q", msg)
	}
}

func TestLogin_UnknownEmailMatchesWrongPassword(t *testing.T) {
	ts := newTestServer(t)
	ts.postJSON("/api/auth/register", registerAva, nil)

	wrongPass := ts.postJSON("/api/auth/login", `{"email":"ava@example.com","password":"wrong-pass"}`, nil)
	unknown := ts.postJSON("/api/auth/login", `{"email":"nobody@example.com","password":"whatever1"}`, nil)

	if wrongPass.Code != unknown.Code || errorMessage(t, wrongPass) != errorMessage(t, unknown) {
		t.Fatalf("failure responses must be indistinguishable: %d/%s vs %d/%s",
			wrongPass.Code, wrongPass.Body.String(), unknown.Code, unknown.Body.String())
	}
}

func TestLogin_SuccessIssuesWorkingToken(t *testing.T) {
	ts := newTestServer(t)
	ts.postJSON("/api/auth/register", registerAva, nil)

	rec := ts.postJSON("/api/auth/login", `{"email":"ava@example.com","password":"secret1"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decodeAuth(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+got.Token)
	meRec := httptest.NewRecorder()
	ts.echo.ServeHTTP(meRec, req)
	if meRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /me with fresh token, got %d: %s", meRec.Code, meRec.Body.String())
	}
}

func TestMe_WithoutTokenIs401(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	ts := newTestServer(t)
	reg := decodeAuth(t, ts.postJSON("/api/auth/register", registerAva, nil))

	logoutRec := ts.postJSON("/api/auth/logout", "", http.Header{"Authorization": {"Bearer " + reg.Token}})
	if logoutRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from logout, got %d: %s", logoutRec.Code, logoutRec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+reg.Token)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 with a revoked token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func detailedForm(t *testing.T, resumeName string, resumeBody []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name":               "Ava",
		"email":              "ava@example.com",
		"password":           "secret1",
		"phone":              "555-0101",
		"dateOfBirth":        "1992-04-01",
		"addressLine":        "1 Main St",
		"addressCity":        "Springfield",
		"addressZip":         "12345",
		"gender":             "female",
		"employment":         "analyst",
		"education":          "BSc",
		"salaryExpectation":  "90000",
		"preferredLocation":  "remote",
		"interestedServices": `["resume-review","interview-prep"]`,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if resumeName != "" {
		fw, err := mw.CreateFormFile("resume", resumeName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(resumeBody); err != nil {
			t.Fatalf("write resume: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestRegisterDetailed_OneAtomicRequest(t *testing.T) {
	ts := newTestServer(t)
	body, contentType := detailedForm(t, "resume.pdf", []byte("%PDF-1.4 stub"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register-detailed", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decodeAuth(t, rec)
	if !got.User.ProfileCompleted {
		t.Fatalf("detailed registration must mark the profile complete")
	}
	if len(got.User.InterestedServices) != 2 {
		t.Fatalf("expected 2 interested services, got %v", got.User.InterestedServices)
	}
	if got.User.ResumePath == "" {
		t.Fatalf("expected a stored resume path")
	}
	if len(ts.files.saved) != 1 {
		t.Fatalf("expected exactly one stored file, got %d", len(ts.files.saved))
	}
}

func TestRegisterDetailed_RejectedResumeLeavesNothingBehind(t *testing.T) {
	ts := newTestServer(t)
	body, contentType := detailedForm(t, "resume.exe", []byte("MZ"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register-detailed", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(ts.files.saved) != 0 {
		t.Fatalf("rejected upload must not persist a file")
	}
	if len(ts.users.byID) != 0 {
		t.Fatalf("rejected upload must not create an account")
	}
}

func TestRegisterDetailed_RequiresServiceSelection(t *testing.T) {
	ts := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range map[string]string{"name": "Ava", "email": "ava@example.com", "password": "secret1"} {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register-detailed", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(ts.users.byID) != 0 {
		t.Fatalf("account created without a service selection")
	}
}
