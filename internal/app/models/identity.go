package models

import "time"

// Identity carries the registration and verification state shared by
// companies and students. The email address is the natural key; a unique
// index on it keeps at most one record per address.
type Identity struct {
	ID               int64      `json:"id" db:"id"`
	Email            string     `json:"email" db:"email"`
	OTPCode          *string    `json:"-" db:"otp_code"`
	OTPExpiresAt     *time.Time `json:"-" db:"otp_expires_at"`
	Verified         bool       `json:"verified" db:"verified"`
	PasswordHash     *string    `json:"-" db:"password_hash"`
	ProfileCompleted bool       `json:"profileCompleted" db:"profile_completed"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time  `json:"updatedAt" db:"updated_at"`
}

// RegistrationState is the derived lifecycle state of an identity record.
type RegistrationState string

const (
	// StateNew - no record exists for the email.
	StateNew RegistrationState = "NEW"
	// StatePendingOTP - record created, challenge outstanding, unverified.
	StatePendingOTP RegistrationState = "PENDING_OTP"
	// StateVerifiedIncomplete - verified but no credential issued yet.
	StateVerifiedIncomplete RegistrationState = "VERIFIED_INCOMPLETE"
	// StateActive - verified with a credential on record.
	StateActive RegistrationState = "ACTIVE"
)

// StateOf derives the registration state from a record. A nil record means no
// row exists for the key.
func StateOf(identity *Identity) RegistrationState {
	switch {
	case identity == nil:
		return StateNew
	case identity.Verified && identity.PasswordHash != nil:
		return StateActive
	case identity.Verified:
		return StateVerifiedIncomplete
	default:
		return StatePendingOTP
	}
}
