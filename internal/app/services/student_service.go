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
	"github.com/snpzone/skillhunt/internal/pkg/otp"
	"github.com/snpzone/skillhunt/internal/pkg/validation"
)

// studentIDAttempts bounds the retry loop when minting a public student ID.
const studentIDAttempts = 5

// StudentService handles student registration and account operations.
type StudentService struct {
	registration *RegistrationService
	studentRepo  *repositories.StudentRepository
	mailer       email.MailService
	logger       zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	mailer email.MailService,
	checker emailcheck.DomainChecker,
	otpTTL time.Duration,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		registration: NewRegistrationService(auth.KindStudent, studentRepo, mailer, checker, otpTTL, logger),
		studentRepo:  studentRepo,
		mailer:       mailer,
		logger:       logger,
	}
}

// SendOTP starts a student registration for the given email.
func (s *StudentService) SendOTP(ctx context.Context, req *dto.StudentSendOTPRequest) error {
	emailAddr := strings.TrimSpace(strings.ToLower(req.EmailAddress))
	if !validation.IsValidEmail(emailAddr) {
		return apperrors.NewValidationError("Invalid email address")
	}
	return s.registration.IssueChallenge(ctx, emailAddr, strings.TrimSpace(req.FullName))
}

// VerifyOTP validates the challenge code for a pending student registration.
func (s *StudentService) VerifyOTP(ctx context.Context, req *dto.StudentVerifyOTPRequest) error {
	emailAddr := strings.TrimSpace(strings.ToLower(req.EmailAddress))
	return s.registration.VerifyChallenge(ctx, emailAddr, strings.TrimSpace(req.OTP))
}

// mintStudentID generates a public "SH######" identifier that is not yet
// assigned. The digits reuse the challenge code generator.
func (s *StudentService) mintStudentID(ctx context.Context) (string, error) {
	for i := 0; i < studentIDAttempts; i++ {
		digits, err := otp.GenerateCode()
		if err != nil {
			return "", err
		}
		candidate := "SH" + digits
		exists, err := s.studentRepo.StudentIDExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", apperrors.NewConflictError("Could not assign a student ID, please try again")
}

// CompleteRegistration applies the profile patch, assigns the public student
// ID, issues the first login credential and activates the account. The
// assigned ID is returned; the generated password never leaves the mail.
func (s *StudentService) CompleteRegistration(ctx context.Context, req *dto.StudentCompleteRegistrationRequest) (*dto.StudentCompleteRegistrationResponse, error) {
	emailAddr := strings.TrimSpace(strings.ToLower(req.EmailAddress))

	if _, err := s.registration.GuardCompletion(ctx, emailAddr); err != nil {
		return nil, err
	}

	for _, att := range []struct {
		value *string
		label string
	}{
		{req.Resume, "resume"},
		{req.Photo, "photo"},
	} {
		if att.value == nil {
			continue
		}
		if err := validation.CheckAttachmentSize(*att.value, att.label); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	studentID, err := s.mintStudentID(ctx)
	if err != nil {
		return nil, err
	}

	_, hash, err := s.registration.NewCredential()
	if err != nil {
		return nil, err
	}

	patch := &models.StudentProfilePatch{
		DateOfBirth:          req.DateOfBirth,
		Gender:               req.Gender,
		MobileNumber:         req.MobileNumber,
		HighestQualification: req.HighestQualification,
		CourseOrStream:       req.CourseOrStream,
		CollegeOrUniversity:  req.CollegeOrUniversity,
		YearOfPassing:        req.YearOfPassing,
		AcademicStatus:       req.AcademicStatus,
		CurrentCity:          req.CurrentCity,
		State:                req.State,
		Pincode:              req.Pincode,
		PreferredJobRole:     req.PreferredJobRole,
		JobType:              req.JobType,
		WillingToRelocate:    req.WillingToRelocate,
		ExpectedSalary:       req.ExpectedSalary,
		PortfolioURL:         req.PortfolioURL,
		LinkedInURL:          req.LinkedInURL,
		GitHubURL:            req.GitHubURL,
		Skills:               req.Skills,
		Languages:            req.Languages,
		Resume:               req.Resume,
		Photo:                req.Photo,
	}

	if err := s.studentRepo.CompleteProfile(ctx, emailAddr, patch, studentID, hash); err != nil {
		return nil, err
	}

	// CompleteProfile only assigns the minted ID when none was stored yet;
	// read back the one that actually stuck.
	student, err := s.studentRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	assignedID := studentID
	if student.StudentID != nil {
		assignedID = *student.StudentID
	}

	subject, body := email.RegistrationConfirmationMail(student.FullName, emailAddr)
	if err := s.mailer.Send(emailAddr, subject, body); err != nil {
		s.logger.Error().Err(err).Str("email", emailAddr).Msg("Failed to send student confirmation mail")
	}

	return &dto.StudentCompleteRegistrationResponse{
		Message:   "Registration completed successfully",
		StudentID: assignedID,
	}, nil
}

// SendLoginPassword reissues the login credential and mails it.
func (s *StudentService) SendLoginPassword(ctx context.Context, req *dto.StudentSendLoginPasswordRequest) error {
	emailAddr := strings.TrimSpace(strings.ToLower(req.EmailAddress))

	student, err := s.studentRepo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}

	return s.registration.ReissueCredential(ctx, emailAddr, student.FullName)
}

// Login authenticates a student and returns their record.
func (s *StudentService) Login(ctx context.Context, req *dto.StudentLoginRequest) (*models.Student, error) {
	emailAddr := strings.TrimSpace(strings.ToLower(req.EmailAddress))

	identity, err := s.registration.Login(ctx, emailAddr, req.Password)
	if err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, identity.ID)
}

// GetByID returns a student's full record.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetByStudentID returns a student's record by the public "SH######" ID.
func (s *StudentService) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	if !validation.CompiledPatterns.StudentID.MatchString(studentID) {
		return nil, apperrors.NewValidationError("Invalid student ID format")
	}
	return s.studentRepo.GetByStudentID(ctx, studentID)
}
