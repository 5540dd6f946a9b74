package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		SessionExp:  exp,
		TokenIssuer: "skillhunt.test",
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(2 * time.Hour)

	token, expiresAt, err := svc.GenerateSessionToken(KindCompany, 42, "hr@acme.com")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("expiry should be in the future")
	}

	claims, err := svc.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if claims.RecordID != 42 {
		t.Errorf("RecordID = %d, want 42", claims.RecordID)
	}
	if claims.Email != "hr@acme.com" {
		t.Errorf("Email = %q, want hr@acme.com", claims.Email)
	}
	if claims.Kind != KindCompany {
		t.Errorf("Kind = %q, want %q", claims.Kind, KindCompany)
	}
}

func TestValidateSessionTokenExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateSessionToken(KindStudent, 7, "s@mail.com")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	_, err = svc.ValidateSessionToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	token, _, err := newTestJWTService(time.Hour).GenerateSessionToken(KindCompany, 1, "a@b.com")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", SessionExp: time.Hour, TokenIssuer: "skillhunt.test"})
	if _, err := other.ValidateSessionToken(token); err == nil {
		t.Fatal("token signed with another secret must not validate")
	}
}

func TestValidateSessionTokenEmpty(t *testing.T) {
	if _, err := newTestJWTService(time.Hour).ValidateSessionToken(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
