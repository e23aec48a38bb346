package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc, err := NewHMACService("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	tok, err := svc.GenerateAccessToken("u1", "applicant")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != "applicant" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected token id")
	}
	if claims.ExpiresAt != nil {
		t.Fatalf("expected no exp claim")
	}
	if svc.ExpiresIn() != time.Hour {
		t.Fatalf("expected advertised expiry of 1h, got %s", svc.ExpiresIn())
	}
}

func TestHMACService_TokensAreUnique(t *testing.T) {
	svc, _ := NewHMACService("test-secret", time.Hour)
	a, _ := svc.GenerateAccessToken("u1", "")
	b, _ := svc.GenerateAccessToken("u1", "")
	if a == b {
		t.Fatalf("expected distinct tokens")
	}
}

func TestHMACService_RejectsForeignSecret(t *testing.T) {
	a, _ := NewHMACService("", time.Hour)
	b, _ := NewHMACService("", time.Hour)

	tok, err := a.GenerateAccessToken("u1", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := b.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_RejectsGarbage(t *testing.T) {
	svc, _ := NewHMACService("test-secret", time.Hour)
	for _, tok := range []string{"", "mock-token", strings.Repeat("a.", 3)} {
		if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}

func TestHMACService_RequiresUserID(t *testing.T) {
	svc, _ := NewHMACService("test-secret", time.Hour)
	if _, err := svc.GenerateAccessToken("", ""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
