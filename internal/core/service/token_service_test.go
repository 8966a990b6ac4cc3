package service

import (
	"errors"
	"testing"
	"time"

	"github.com/careerbridge/careerbridge-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "64f000000000000000000001",
		Name:  "Ava",
		Email: "ava@x.com",
		Role:  domain.RoleUser,
	}
}

func TestTokenService_EmptySecret(t *testing.T) {
	if _, err := NewTokenService("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc, err := NewTokenService("secret", 24*time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	user := testUser()
	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Fatalf("expected email %s, got %s", user.Email, claims.Email)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %s", claims.Role)
	}
	if claims.TokenID == "" {
		t.Fatalf("expected a token id")
	}
}

func TestTokenService_MissingToken(t *testing.T) {
	svc, _ := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify(""); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc, _ := NewTokenService("secret", time.Hour)
	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other, _ := NewTokenService("different-secret", time.Hour)
	if _, err := other.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}

	if _, err := svc.Verify(token + "x"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for mangled token, got %v", err)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc, _ := NewTokenService("secret", 24*time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
