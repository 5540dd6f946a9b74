package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/snpzone/skillhunt/internal/app/models"
	"github.com/snpzone/skillhunt/internal/app/models/dto"
	"github.com/snpzone/skillhunt/internal/app/repositories"
	"github.com/snpzone/skillhunt/internal/pkg/apperrors"
	"github.com/snpzone/skillhunt/internal/pkg/auth"
	"github.com/snpzone/skillhunt/internal/pkg/email"
	"github.com/snpzone/skillhunt/internal/pkg/emailcheck"
	"github.com/snpzone/skillhunt/internal/pkg/validation"
)

// CompanyService handles company registration and account operations.
type CompanyService struct {
	registration *RegistrationService
	companyRepo  *repositories.CompanyRepository
	mailer       email.MailService
	logger       zerolog.Logger
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(
	companyRepo *repositories.CompanyRepository,
	mailer email.MailService,
	checker emailcheck.DomainChecker,
	otpTTL time.Duration,
	logger zerolog.Logger,
) *CompanyService {
	return &CompanyService{
		registration: NewRegistrationService(auth.KindCompany, companyRepo, mailer, checker, otpTTL, logger),
		companyRepo:  companyRepo,
		mailer:       mailer,
		logger:       logger,
	}
}

// SendOTP starts a company registration for the given official email.
func (s *CompanyService) SendOTP(ctx context.Context, req *dto.CompanySendOTPRequest) error {
	emailAddr := strings.TrimSpace(strings.ToLower(req.OfficialEmail))
	if !validation.IsValidEmail(emailAddr) {
		return apperrors.NewValidationError("Invalid email address")
	}
	return s.registration.IssueChallenge(ctx, emailAddr, strings.TrimSpace(req.CompanyName))
}

// VerifyOTP validates the challenge code for a pending company registration.
func (s *CompanyService) VerifyOTP(ctx context.Context, req *dto.CompanyVerifyOTPRequest) error {
	emailAddr := strings.TrimSpace(strings.ToLower(req.OfficialEmail))
	return s.registration.VerifyChallenge(ctx, emailAddr, strings.TrimSpace(req.OTP))
}

// CompleteRegistration applies the profile patch, issues the first login
// credential and activates the account. The generated password is mailed to
// the user inside the confirmation; it is never returned to the caller.
func (s *CompanyService) CompleteRegistration(ctx context.Context, req *dto.CompanyCompleteRegistrationRequest) error {
	emailAddr := strings.TrimSpace(strings.ToLower(req.OfficialEmail))

	if _, err := s.registration.GuardCompletion(ctx, emailAddr); err != nil {
		return err
	}

	for _, att := range []struct {
		value *string
		label string
	}{
		{req.CompanyPAN, "companyPAN"},
		{req.CompanyLogo, "companyLogo"},
		{req.RegistrationCertificate, "registrationCertificate"},
	} {
		if att.value == nil {
			continue
		}
		if err := validation.CheckAttachmentSize(*att.value, att.label); err != nil {
			return apperrors.NewValidationError(err.Error())
		}
	}

	_, hash, err := s.registration.NewCredential()
	if err != nil {
		return err
	}

	patch := &models.CompanyProfilePatch{
		CompanyType:              req.CompanyType,
		IndustryType:             req.IndustryType,
		CompanyWebsite:           req.CompanyWebsite,
		YearOfEstablishment:      req.YearOfEstablishment,
		CompanyDescription:       req.CompanyDescription,
		CompanyPhoneNumber:       req.CompanyPhoneNumber,
		CompanyAddress:           req.CompanyAddress,
		ContactPersonName:        req.ContactPersonName,
		ContactPersonDesignation: req.ContactPersonDesignation,
		ContactPersonEmail:       req.ContactPersonEmail,
		ContactPersonMobile:      req.ContactPersonMobile,
		GSTNumber:                req.GSTNumber,
		CompanyPAN:               req.CompanyPAN,
		CompanyLogo:              req.CompanyLogo,
		RegistrationCertificate:  req.RegistrationCertificate,
	}

	if err := s.companyRepo.CompleteProfile(ctx, emailAddr, patch, hash); err != nil {
		return err
	}

	company, err := s.companyRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}

	// Confirmation mail is best-effort; registration already succeeded.
	subject, body := email.RegistrationConfirmationMail(company.CompanyName, emailAddr)
	if err := s.mailer.Send(emailAddr, subject, body); err != nil {
		s.logger.Error().Err(err).Str("email", emailAddr).Msg("Failed to send company confirmation mail")
	}

	return nil
}

// SendLoginPassword reissues the login credential and mails it.
func (s *CompanyService) SendLoginPassword(ctx context.Context, req *dto.CompanySendLoginPasswordRequest) error {
	emailAddr := strings.TrimSpace(strings.ToLower(req.OfficialEmail))

	company, err := s.companyRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}

	return s.registration.ReissueCredential(ctx, emailAddr, company.CompanyName)
}

// Login authenticates a company and returns its record.
func (s *CompanyService) Login(ctx context.Context, req *dto.CompanyLoginRequest) (*models.Company, error) {
	emailAddr := strings.TrimSpace(strings.ToLower(req.OfficialEmail))

	identity, err := s.registration.Login(ctx, emailAddr, req.Password)
	if err != nil {
		return nil, err
	}

	return s.companyRepo.GetByID(ctx, identity.ID)
}

// GetByID returns a company's full record.
func (s *CompanyService) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}
