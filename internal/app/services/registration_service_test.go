package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/snpzone/skillhunt/internal/app/models"
	"github.com/snpzone/skillhunt/internal/pkg/apperrors"
	"github.com/snpzone/skillhunt/internal/pkg/auth"
)

// --- fakes ---

type fakeIdentityStore struct {
	identity *models.Identity

	createErr  error
	createdOTP string

	markVerifiedResult bool
	markVerifiedErr    error

	passwordHash string
	setPassErr   error
}

func (f *fakeIdentityStore) FindIdentity(ctx context.Context, email string) (*models.Identity, error) {
	return f.identity, nil
}

func (f *fakeIdentityStore) CreatePending(ctx context.Context, email, displayName, otpCode string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdOTP = otpCode
	f.identity = &models.Identity{
		ID:           1,
		Email:        email,
		OTPCode:      &otpCode,
		OTPExpiresAt: &expiresAt,
	}
	return nil
}

func (f *fakeIdentityStore) MarkVerified(ctx context.Context, email, otpCode string) (bool, error) {
	if f.markVerifiedErr != nil {
		return false, f.markVerifiedErr
	}
	if f.markVerifiedResult && f.identity != nil {
		f.identity.OTPCode = nil
		f.identity.OTPExpiresAt = nil
		f.identity.Verified = true
	}
	return f.markVerifiedResult, nil
}

func (f *fakeIdentityStore) SetPasswordHash(ctx context.Context, email, passwordHash string) error {
	if f.setPassErr != nil {
		return f.setPassErr
	}
	f.passwordHash = passwordHash
	if f.identity != nil {
		f.identity.PasswordHash = &passwordHash
	}
	return nil
}

type fakeMailer struct {
	sent    []string
	bodies  []string
	sendErr error
}

func (f *fakeMailer) Send(toEmail, subject, htmlBody string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, toEmail)
	f.bodies = append(f.bodies, htmlBody)
	return nil
}

// mailedSecret matches the highlighted code or password in a mail body.
var mailedSecret = regexp.MustCompile(`margin: 20px 0;">([a-z2-9]+)</div>`)

type fakeChecker struct {
	disposable bool
	hasMX      bool
}

func (f *fakeChecker) IsDisposable(ctx context.Context, email string) (bool, error) {
	return f.disposable, nil
}

func (f *fakeChecker) HasMailExchanger(ctx context.Context, email string) (bool, error) {
	return f.hasMX, nil
}

func newTestService(store *fakeIdentityStore, mailer *fakeMailer, checker *fakeChecker) *RegistrationService {
	return NewRegistrationService(auth.KindCompany, store, mailer, checker, 2*time.Minute, zerolog.Nop())
}

func strptr(s string) *string        { return &s }
func timeptr(t time.Time) *time.Time { return &t }

// --- IssueChallenge ---

func TestIssueChallengeNewEmail(t *testing.T) {
	store := &fakeIdentityStore{}
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer, &fakeChecker{hasMX: true})

	if err := svc.IssueChallenge(context.Background(), "hr@acme.com", "Acme"); err != nil {
		t.Fatalf("IssueChallenge: %v", err)
	}
	if store.createdOTP == "" {
		t.Fatal("expected a pending record to be created")
	}
	if len(store.createdOTP) != 6 {
		t.Errorf("OTP code length = %d, want 6", len(store.createdOTP))
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "hr@acme.com" {
		t.Errorf("mail sent to %v, want [hr@acme.com]", mailer.sent)
	}
}

func TestIssueChallengeDisposableEmail(t *testing.T) {
	svc := newTestService(&fakeIdentityStore{}, &fakeMailer{}, &fakeChecker{disposable: true, hasMX: true})

	err := svc.IssueChallenge(context.Background(), "x@mailinator.com", "X")
	if !errors.Is(err, apperrors.ErrDomainRejected) {
		t.Fatalf("err = %v, want ErrDomainRejected", err)
	}
}

func TestIssueChallengeNoMailExchanger(t *testing.T) {
	svc := newTestService(&fakeIdentityStore{}, &fakeMailer{}, &fakeChecker{hasMX: false})

	err := svc.IssueChallenge(context.Background(), "x@no-such-domain.invalid", "X")
	if !errors.Is(err, apperrors.ErrDomainRejected) {
		t.Fatalf("err = %v, want ErrDomainRejected", err)
	}
}

func TestIssueChallengeCooldownBlocksReissue(t *testing.T) {
	// An outstanding code blocks re-issuance even after its expiry passed.
	expired := time.Now().Add(-10 * time.Minute)
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:           1,
		Email:        "hr@acme.com",
		OTPCode:      strptr("123456"),
		OTPExpiresAt: timeptr(expired),
	}}
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer, &fakeChecker{hasMX: true})

	err := svc.IssueChallenge(context.Background(), "hr@acme.com", "Acme")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if msg := apperrors.UserMessage(err); !strings.Contains(msg, "wait 2 minutes") {
		t.Errorf("message = %q, want the cooldown variant", msg)
	}
	if len(mailer.sent) != 0 {
		t.Error("no mail should be sent while a code is outstanding")
	}
}

func TestIssueChallengeVerifiedIncomplete(t *testing.T) {
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:       1,
		Email:    "hr@acme.com",
		Verified: true,
	}}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	err := svc.IssueChallenge(context.Background(), "hr@acme.com", "Acme")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if msg := apperrors.UserMessage(err); !strings.Contains(msg, "contact us") {
		t.Errorf("message = %q, want the contact-us variant", msg)
	}
}

func TestIssueChallengeActiveAccount(t *testing.T) {
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:               1,
		Email:            "hr@acme.com",
		Verified:         true,
		PasswordHash:     strptr("$2a$12$x"),
		ProfileCompleted: true,
	}}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	err := svc.IssueChallenge(context.Background(), "hr@acme.com", "Acme")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if msg := apperrors.UserMessage(err); !strings.Contains(msg, "login") {
		t.Errorf("message = %q, want the go-to-login variant", msg)
	}
}

func TestIssueChallengeCreateRace(t *testing.T) {
	store := &fakeIdentityStore{createErr: apperrors.ErrConflict}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	err := svc.IssueChallenge(context.Background(), "hr@acme.com", "Acme")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	// Losing the create race reads exactly like hitting the cooldown.
	if msg := apperrors.UserMessage(err); !strings.Contains(msg, "wait 2 minutes") {
		t.Errorf("message = %q, want the cooldown variant", msg)
	}
}

func TestIssueChallengeDeliveryFailure(t *testing.T) {
	store := &fakeIdentityStore{}
	mailer := &fakeMailer{sendErr: errors.New("smtp down")}
	svc := newTestService(store, mailer, &fakeChecker{hasMX: true})

	err := svc.IssueChallenge(context.Background(), "hr@acme.com", "Acme")
	if !errors.Is(err, apperrors.ErrDeliveryFailure) {
		t.Fatalf("err = %v, want ErrDeliveryFailure", err)
	}
	// The record stays even though delivery failed.
	if store.identity == nil {
		t.Error("pending record should survive a failed send")
	}
}

// --- VerifyChallenge ---

func TestVerifyChallengeSuccess(t *testing.T) {
	store := &fakeIdentityStore{
		identity: &models.Identity{
			ID:           1,
			Email:        "hr@acme.com",
			OTPCode:      strptr("654321"),
			OTPExpiresAt: timeptr(time.Now().Add(time.Minute)),
		},
		markVerifiedResult: true,
	}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	if err := svc.VerifyChallenge(context.Background(), "hr@acme.com", "654321"); err != nil {
		t.Fatalf("VerifyChallenge: %v", err)
	}
	if !store.identity.Verified {
		t.Error("identity should be verified")
	}
	if store.identity.OTPCode != nil {
		t.Error("challenge code should be cleared")
	}
}

func TestVerifyChallengeWrongCode(t *testing.T) {
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:           1,
		Email:        "hr@acme.com",
		OTPCode:      strptr("654321"),
		OTPExpiresAt: timeptr(time.Now().Add(time.Minute)),
	}}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	err := svc.VerifyChallenge(context.Background(), "hr@acme.com", "111111")
	if !errors.Is(err, apperrors.ErrInvalidCode) {
		t.Fatalf("err = %v, want ErrInvalidCode", err)
	}
}

func TestVerifyChallengeUnknownEmail(t *testing.T) {
	svc := newTestService(&fakeIdentityStore{}, &fakeMailer{}, &fakeChecker{hasMX: true})

	err := svc.VerifyChallenge(context.Background(), "nobody@acme.com", "123456")
	if !errors.Is(err, apperrors.ErrInvalidCode) {
		t.Fatalf("err = %v, want ErrInvalidCode", err)
	}
}

func TestVerifyChallengeExpiredCode(t *testing.T) {
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:           1,
		Email:        "hr@acme.com",
		OTPCode:      strptr("654321"),
		OTPExpiresAt: timeptr(time.Now().Add(2 * time.Minute)),
	}}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})
	svc.now = func() time.Time { return time.Now().Add(3 * time.Minute) }

	err := svc.VerifyChallenge(context.Background(), "hr@acme.com", "654321")
	if !errors.Is(err, apperrors.ErrCodeExpired) {
		t.Fatalf("err = %v, want ErrCodeExpired", err)
	}
}

func TestVerifyChallengeLostRace(t *testing.T) {
	// The read saw a live matching code, but the conditional update matched
	// nothing: another request verified first.
	store := &fakeIdentityStore{
		identity: &models.Identity{
			ID:           1,
			Email:        "hr@acme.com",
			OTPCode:      strptr("654321"),
			OTPExpiresAt: timeptr(time.Now().Add(time.Minute)),
		},
		markVerifiedResult: false,
	}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	err := svc.VerifyChallenge(context.Background(), "hr@acme.com", "654321")
	if !errors.Is(err, apperrors.ErrInvalidCode) {
		t.Fatalf("err = %v, want ErrInvalidCode", err)
	}
}

// --- GuardCompletion ---

func TestGuardCompletionUnknownEmail(t *testing.T) {
	svc := newTestService(&fakeIdentityStore{}, &fakeMailer{}, &fakeChecker{hasMX: true})

	_, err := svc.GuardCompletion(context.Background(), "nobody@acme.com")
	if !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Fatalf("err = %v, want ErrCompanyNotFound", err)
	}
}

func TestGuardCompletionNotVerified(t *testing.T) {
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:      1,
		Email:   "hr@acme.com",
		OTPCode: strptr("123456"),
	}}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	_, err := svc.GuardCompletion(context.Background(), "hr@acme.com")
	if !errors.Is(err, apperrors.ErrNotVerified) {
		t.Fatalf("err = %v, want ErrNotVerified", err)
	}
}

func TestGuardCompletionStudentKindError(t *testing.T) {
	svc := NewRegistrationService(auth.KindStudent, &fakeIdentityStore{}, &fakeMailer{}, &fakeChecker{hasMX: true}, time.Minute, zerolog.Nop())

	_, err := svc.GuardCompletion(context.Background(), "nobody@mail.com")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}

// --- ReissueCredential ---

func TestReissueCredentialReplacesHash(t *testing.T) {
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:           1,
		Email:        "hr@acme.com",
		Verified:     true,
		PasswordHash: strptr("old-hash"),
	}}
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer, &fakeChecker{hasMX: true})

	if err := svc.ReissueCredential(context.Background(), "hr@acme.com", "Acme"); err != nil {
		t.Fatalf("ReissueCredential: %v", err)
	}
	if store.passwordHash == "" || store.passwordHash == "old-hash" {
		t.Error("stored hash should be replaced with a fresh one")
	}
	if len(mailer.sent) != 1 {
		t.Errorf("mails sent = %d, want 1", len(mailer.sent))
	}
}

func TestReissueCredentialDeliveryFailure(t *testing.T) {
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:       1,
		Email:    "hr@acme.com",
		Verified: true,
	}}
	svc := newTestService(store, &fakeMailer{sendErr: errors.New("smtp down")}, &fakeChecker{hasMX: true})

	err := svc.ReissueCredential(context.Background(), "hr@acme.com", "Acme")
	if !errors.Is(err, apperrors.ErrDeliveryFailure) {
		t.Fatalf("err = %v, want ErrDeliveryFailure", err)
	}
	// The new hash is already stored, so the old password no longer works.
	if store.passwordHash == "" {
		t.Error("new hash should be stored even when delivery fails")
	}
}

func TestReissueCredentialMailedSecretLogsIn(t *testing.T) {
	oldHash, err := auth.HashPassword("previous-secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:           1,
		Email:        "hr@acme.com",
		Verified:     true,
		PasswordHash: &oldHash,
	}}
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer, &fakeChecker{hasMX: true})

	if err := svc.ReissueCredential(context.Background(), "hr@acme.com", "Acme"); err != nil {
		t.Fatalf("ReissueCredential: %v", err)
	}
	if len(mailer.bodies) != 1 {
		t.Fatalf("mails sent = %d, want 1", len(mailer.bodies))
	}
	m := mailedSecret.FindStringSubmatch(mailer.bodies[0])
	if m == nil {
		t.Fatal("mail body should carry the new password")
	}

	if _, err := svc.Login(context.Background(), "hr@acme.com", m[1]); err != nil {
		t.Fatalf("login with the mailed password: %v", err)
	}
	if _, err := svc.Login(context.Background(), "hr@acme.com", "previous-secret"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials for the replaced password", err)
	}
}

// --- Login ---

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:           1,
		Email:        "hr@acme.com",
		Verified:     true,
		PasswordHash: &hash,
	}}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	identity, err := svc.Login(context.Background(), "hr@acme.com", "s3cret-pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if identity.ID != 1 {
		t.Errorf("identity ID = %d, want 1", identity.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:           1,
		Email:        "hr@acme.com",
		Verified:     true,
		PasswordHash: &hash,
	}}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	_, err = svc.Login(context.Background(), "hr@acme.com", "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginNotVerified(t *testing.T) {
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:    1,
		Email: "hr@acme.com",
	}}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	_, err := svc.Login(context.Background(), "hr@acme.com", "anything")
	if !errors.Is(err, apperrors.ErrNotVerified) {
		t.Fatalf("err = %v, want ErrNotVerified", err)
	}
}

func TestLoginNoCredentialIssued(t *testing.T) {
	store := &fakeIdentityStore{identity: &models.Identity{
		ID:       1,
		Email:    "hr@acme.com",
		Verified: true,
	}}
	svc := newTestService(store, &fakeMailer{}, &fakeChecker{hasMX: true})

	_, err := svc.Login(context.Background(), "hr@acme.com", "anything")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}
