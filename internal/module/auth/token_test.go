package auth

import (
	"testing"
	"time"

	"github.com/aegisx/platform/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, expiresAt, err := svc.Issue("42", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if until := time.Until(expiresAt); until < 59*time.Minute || until > time.Hour {
		t.Errorf("expiry %v; want about one hour out", until)
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if identity.UserID != "42" || identity.Role != domain.RoleUser {
		t.Errorf("identity=%+v; want 42/user", identity)
	}
}

func TestTokenService_ExpiredTokenFails(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Minute)

	token, _, err := svc.Issue("42", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Verify(token); err == nil {
		t.Error("expected expired token to fail verification")
	}
}

func TestTokenService_WrongSecretFails(t *testing.T) {
	issuer := NewTokenService(testSecret, time.Hour)
	verifier := NewTokenService("another-secret-another-secret-32", time.Hour)

	token, _, err := issuer.Issue("42", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Error("expected token signed with a different secret to fail")
	}
}

func TestTokenService_GarbageFails(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := svc.Verify(token); err == nil {
			t.Errorf("Verify(%q): expected error", token)
		}
	}
}
