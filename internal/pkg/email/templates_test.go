package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationOTPMail(t *testing.T) {
	subject, body := RegistrationOTPMail("Acme Corp", "123456")

	assert.Equal(t, "Your OTP for SkillHunt Registration", subject)
	assert.Contains(t, body, "Acme Corp")
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "2 minutes")
}

func TestRegistrationConfirmationMail(t *testing.T) {
	subject, body := RegistrationConfirmationMail("Priya Sharma", "priya@mail.com")

	assert.Equal(t, "SkillHunt Registration Successful", subject)
	assert.Contains(t, body, "Priya Sharma")
	assert.Contains(t, body, "priya@mail.com")
	// Confirmation never carries a password; fresh ones are mailed per login.
	assert.NotContains(t, body, "temporary login password")
}

func TestLoginPasswordMail(t *testing.T) {
	subject, body := LoginPasswordMail("Acme Corp", "x7kp2mqr")

	assert.Equal(t, "Your SkillHunt Login Password", subject)
	assert.Contains(t, body, "x7kp2mqr")
}
