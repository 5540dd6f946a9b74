package repositories

import (
	"context"
	"time"

	"github.com/snpzone/skillhunt/internal/app/models"
)

// IdentityStore is the persistence collaborator the registration state
// machine runs against. Companies and students each provide an
// implementation over their own table.
//
// Every mutation is a single conditional statement keyed by email, so two
// concurrent requests for the same key cannot interleave into an
// inconsistent state.
type IdentityStore interface {
	// FindIdentity returns the registration state for an email, or
	// (nil, nil) when no record exists.
	FindIdentity(ctx context.Context, email string) (*models.Identity, error)

	// CreatePending inserts a new unverified record with an outstanding
	// challenge. A duplicate email returns apperrors.ErrConflict.
	CreatePending(ctx context.Context, email, displayName, otpCode string, expiresAt time.Time) error

	// MarkVerified atomically clears the challenge fields and sets
	// verified=true, but only where the stored code matches and the record
	// is still unverified. Returns false when no row was updated.
	MarkVerified(ctx context.Context, email, otpCode string) (bool, error)

	// SetPasswordHash replaces the stored credential hash. The previous
	// hash is discarded entirely.
	SetPasswordHash(ctx context.Context, email, passwordHash string) error
}
