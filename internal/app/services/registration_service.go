package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/snpzone/skillhunt/internal/app/models"
	"github.com/snpzone/skillhunt/internal/app/repositories"
	"github.com/snpzone/skillhunt/internal/pkg/apperrors"
	"github.com/snpzone/skillhunt/internal/pkg/auth"
	"github.com/snpzone/skillhunt/internal/pkg/email"
	"github.com/snpzone/skillhunt/internal/pkg/emailcheck"
	"github.com/snpzone/skillhunt/internal/pkg/otp"
)

// DefaultOTPTTL is how long a challenge code stays valid.
const DefaultOTPTTL = 2 * time.Minute

// cooldownMessage answers any repeat send-otp against a key that already
// holds an outstanding code, whether that shows up in the read or as a lost
// create race.
const cooldownMessage = "Multiple registration attempts detected. Please wait 2 minutes before trying again. Still facing the same problem? Contact us."

// RegistrationService drives the registration state machine:
//
//	NEW -> PENDING_OTP -> VERIFIED_INCOMPLETE -> ACTIVE
//
// One instance exists per identity kind (company, student); the kind's
// repository plugs in as the IdentityStore. All transitions are single
// conditional statements against the record's email key, so concurrent
// requests for the same key resolve to exactly one winner.
type RegistrationService struct {
	kind    auth.IdentityKind
	store   repositories.IdentityStore
	mailer  email.MailService
	checker emailcheck.DomainChecker
	otpTTL  time.Duration
	logger  zerolog.Logger

	// now is replaceable in tests
	now func() time.Time
}

// NewRegistrationService creates a RegistrationService for one identity kind.
func NewRegistrationService(
	kind auth.IdentityKind,
	store repositories.IdentityStore,
	mailer email.MailService,
	checker emailcheck.DomainChecker,
	otpTTL time.Duration,
	logger zerolog.Logger,
) *RegistrationService {
	if otpTTL <= 0 {
		otpTTL = DefaultOTPTTL
	}
	return &RegistrationService{
		kind:    kind,
		store:   store,
		mailer:  mailer,
		checker: checker,
		otpTTL:  otpTTL,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *RegistrationService) notFoundError() error {
	if s.kind == auth.KindCompany {
		return apperrors.ErrCompanyNotFound
	}
	return apperrors.ErrStudentNotFound
}

// IssueChallenge starts a registration: it vets the email domain, rejects
// keys that already moved past NEW, creates the pending record and mails the
// challenge code. The record commits before delivery is attempted; a failed
// send is reported as a delivery failure without undoing the record.
func (s *RegistrationService) IssueChallenge(ctx context.Context, emailAddr, displayName string) error {
	disposable, err := s.checker.IsDisposable(ctx, emailAddr)
	if err != nil {
		return fmt.Errorf("disposable email check failed: %w", err)
	}
	if disposable {
		return apperrors.NewDomainRejectedError("Disposable emails are not allowed")
	}

	deliverable, err := s.checker.HasMailExchanger(ctx, emailAddr)
	if err != nil {
		return fmt.Errorf("mail exchanger check failed: %w", err)
	}
	if !deliverable {
		return apperrors.NewDomainRejectedError("Email domain is invalid")
	}

	identity, err := s.store.FindIdentity(ctx, emailAddr)
	if err != nil {
		return err
	}

	if identity != nil {
		switch models.StateOf(identity) {
		case models.StatePendingOTP:
			// This state implies a stored code, and an outstanding code
			// blocks re-issuance outright; expiry is only consulted at
			// verification time.
			return apperrors.NewConflictError(cooldownMessage)
		case models.StateVerifiedIncomplete:
			return apperrors.NewConflictError("Something went wrong during registration. Please contact us.")
		case models.StateActive:
			return apperrors.NewConflictError("You are already registered. Please go to login.")
		}
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(s.otpTTL)

	if err := s.store.CreatePending(ctx, emailAddr, displayName, code, expiresAt); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// Lost a create race for the same key; same answer as the
			// pending state above.
			return apperrors.NewConflictError(cooldownMessage)
		}
		return err
	}

	s.logger.Info().Str("kind", string(s.kind)).Str("email", emailAddr).Msg("Registration challenge issued")

	subject, body := email.RegistrationOTPMail(displayName, code)
	if err := s.mailer.Send(emailAddr, subject, body); err != nil {
		s.logger.Error().Err(err).Str("email", emailAddr).Msg("Failed to send challenge mail")
		return fmt.Errorf("%w: failed to send OTP email", apperrors.ErrDeliveryFailure)
	}

	return nil
}

// VerifyChallenge validates a submitted code. A match with a live expiry
// clears the challenge fields and sets verified=true; verified never goes
// back to false after that.
func (s *RegistrationService) VerifyChallenge(ctx context.Context, emailAddr, code string) error {
	identity, err := s.store.FindIdentity(ctx, emailAddr)
	if err != nil {
		return err
	}

	if identity == nil || identity.OTPCode == nil || *identity.OTPCode != code {
		return apperrors.ErrInvalidCode
	}

	// Expired codes are rejected even though they still match.
	if identity.OTPExpiresAt == nil || identity.OTPExpiresAt.Before(s.now()) {
		return apperrors.ErrCodeExpired
	}

	updated, err := s.store.MarkVerified(ctx, emailAddr, code)
	if err != nil {
		return err
	}
	if !updated {
		// A concurrent validation won the compare-and-swap.
		return apperrors.ErrInvalidCode
	}

	s.logger.Info().Str("kind", string(s.kind)).Str("email", emailAddr).Msg("Registration challenge verified")
	return nil
}

// GuardCompletion checks the preconditions shared by profile completion and
// credential reissue: the record must exist and be verified.
func (s *RegistrationService) GuardCompletion(ctx context.Context, emailAddr string) (*models.Identity, error) {
	identity, err := s.store.FindIdentity(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, s.notFoundError()
	}
	if !identity.Verified {
		return nil, apperrors.ErrNotVerified
	}
	return identity, nil
}

// NewCredential generates a fresh random login secret and its bcrypt hash.
// Only the hash is ever persisted.
func (s *RegistrationService) NewCredential() (plaintext, hash string, err error) {
	plaintext, err = auth.GenerateTempPassword()
	if err != nil {
		return "", "", err
	}
	hash, err = auth.HashPassword(plaintext)
	if err != nil {
		return "", "", err
	}
	return plaintext, hash, nil
}

// ReissueCredential replaces the stored credential with a fresh one and
// mails the plaintext to the registered address. The old hash is gone after
// this regardless of whether delivery succeeds; the plaintext never travels
// anywhere but the mail.
func (s *RegistrationService) ReissueCredential(ctx context.Context, emailAddr, displayName string) error {
	if _, err := s.GuardCompletion(ctx, emailAddr); err != nil {
		return err
	}

	plaintext, hash, err := s.NewCredential()
	if err != nil {
		return err
	}

	if err := s.store.SetPasswordHash(ctx, emailAddr, hash); err != nil {
		return err
	}

	s.logger.Info().Str("kind", string(s.kind)).Str("email", emailAddr).Msg("Login credential reissued")

	subject, body := email.LoginPasswordMail(displayName, plaintext)
	if err := s.mailer.Send(emailAddr, subject, body); err != nil {
		s.logger.Error().Err(err).Str("email", emailAddr).Msg("Failed to send login password mail")
		return fmt.Errorf("%w: failed to send password email", apperrors.ErrDeliveryFailure)
	}

	return nil
}

// Login checks a submitted secret against the stored hash and returns the
// identity on success.
func (s *RegistrationService) Login(ctx context.Context, emailAddr, password string) (*models.Identity, error) {
	identity, err := s.store.FindIdentity(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, s.notFoundError()
	}
	if !identity.Verified {
		return nil, apperrors.ErrNotVerified
	}
	if identity.PasswordHash == nil || !auth.CheckPassword(*identity.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return identity, nil
}
