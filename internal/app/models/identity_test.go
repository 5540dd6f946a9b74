package models

import (
	"testing"
	"time"
)

func sp(s string) *string { return &s }

func TestStateOf(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		identity *Identity
		want     RegistrationState
	}{
		{"nil record", nil, StateNew},
		{"challenge outstanding", &Identity{OTPCode: sp("123456"), OTPExpiresAt: &now}, StatePendingOTP},
		{"unverified without code", &Identity{}, StatePendingOTP},
		{"verified no credential", &Identity{Verified: true}, StateVerifiedIncomplete},
		{"verified with credential", &Identity{Verified: true, PasswordHash: sp("$2a$12$x")}, StateActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateOf(tt.identity); got != tt.want {
				t.Errorf("StateOf = %q, want %q", got, tt.want)
			}
		})
	}
}
