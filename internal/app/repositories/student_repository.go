package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/snpzone/skillhunt/internal/app/models"
	"github.com/snpzone/skillhunt/internal/pkg/apperrors"
	"github.com/snpzone/skillhunt/internal/pkg/dberrors"
	"github.com/snpzone/skillhunt/internal/pkg/logger"
)

// StudentRepository handles student database operations. It implements
// IdentityStore for the registration state machine.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindIdentity returns the registration state for an email, (nil, nil) when
// no record exists.
func (r *StudentRepository) FindIdentity(ctx context.Context, email string) (*models.Identity, error) {
	sql, args, err := r.sb.Select(identityColumns...).
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find student identity query: %w", err)
	}

	var identity models.Identity
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&identity.ID, &identity.Email, &identity.OTPCode, &identity.OTPExpiresAt,
		&identity.Verified, &identity.PasswordHash, &identity.ProfileCompleted,
		&identity.CreatedAt, &identity.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student identity: %w", err)
	}

	return &identity, nil
}

// CreatePending inserts a new unverified student with an outstanding
// challenge.
func (r *StudentRepository) CreatePending(ctx context.Context, email, displayName, otpCode string, expiresAt time.Time) error {
	sql, args, err := r.sb.Insert("students").
		Columns("full_name", "email", "otp_code", "otp_expires_at").
		Values(displayName, email, otpCode, expiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			logger.Warn().Str("email", email).Msg("Attempted to create student with duplicate email")
			return apperrors.ErrConflict
		}
		logger.Error().Err(err).Str("email", email).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// MarkVerified atomically clears the challenge and flips verified, guarded by
// the code match and the unverified flag (compare-and-swap).
func (r *StudentRepository) MarkVerified(ctx context.Context, email, otpCode string) (bool, error) {
	sql, args, err := r.sb.Update("students").
		Set("otp_code", nil).
		Set("otp_expires_at", nil).
		Set("verified", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"email": email, "otp_code": otpCode, "verified": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build verify student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error verifying student: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// SetPasswordHash replaces the stored credential hash.
func (r *StudentRepository) SetPasswordHash(ctx context.Context, email, passwordHash string) error {
	sql, args, err := r.sb.Update("students").
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set student password query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating student password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// completeProfileQuery builds the single-statement profile update. Nil patch
// fields keep their stored values, and a student ID assigned earlier wins over
// the freshly minted one (COALESCE both ways).
func (r *StudentRepository) completeProfileQuery(email string, patch *models.StudentProfilePatch, studentID, passwordHash string) (string, []interface{}, error) {
	return r.sb.Update("students").
		Set("date_of_birth", squirrel.Expr("COALESCE(?, date_of_birth)", patch.DateOfBirth)).
		Set("gender", squirrel.Expr("COALESCE(?, gender)", patch.Gender)).
		Set("mobile_number", squirrel.Expr("COALESCE(?, mobile_number)", patch.MobileNumber)).
		Set("highest_qualification", squirrel.Expr("COALESCE(?, highest_qualification)", patch.HighestQualification)).
		Set("course_or_stream", squirrel.Expr("COALESCE(?, course_or_stream)", patch.CourseOrStream)).
		Set("college_or_university", squirrel.Expr("COALESCE(?, college_or_university)", patch.CollegeOrUniversity)).
		Set("year_of_passing", squirrel.Expr("COALESCE(?, year_of_passing)", patch.YearOfPassing)).
		Set("academic_status", squirrel.Expr("COALESCE(?, academic_status)", patch.AcademicStatus)).
		Set("current_city", squirrel.Expr("COALESCE(?, current_city)", patch.CurrentCity)).
		Set("state", squirrel.Expr("COALESCE(?, state)", patch.State)).
		Set("pincode", squirrel.Expr("COALESCE(?, pincode)", patch.Pincode)).
		Set("preferred_job_role", squirrel.Expr("COALESCE(?, preferred_job_role)", patch.PreferredJobRole)).
		Set("job_type", squirrel.Expr("COALESCE(?, job_type)", patch.JobType)).
		Set("willing_to_relocate", squirrel.Expr("COALESCE(?, willing_to_relocate)", patch.WillingToRelocate)).
		Set("expected_salary", squirrel.Expr("COALESCE(?, expected_salary)", patch.ExpectedSalary)).
		Set("portfolio_url", squirrel.Expr("COALESCE(?, portfolio_url)", patch.PortfolioURL)).
		Set("linkedin_url", squirrel.Expr("COALESCE(?, linkedin_url)", patch.LinkedInURL)).
		Set("github_url", squirrel.Expr("COALESCE(?, github_url)", patch.GitHubURL)).
		Set("skills", squirrel.Expr("COALESCE(?, skills)", patch.Skills)).
		Set("languages", squirrel.Expr("COALESCE(?, languages)", patch.Languages)).
		Set("resume", squirrel.Expr("COALESCE(?, resume)", patch.Resume)).
		Set("photo", squirrel.Expr("COALESCE(?, photo)", patch.Photo)).
		Set("student_id", squirrel.Expr("COALESCE(student_id, ?)", studentID)).
		Set("password_hash", passwordHash).
		Set("profile_completed", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"email": email}).
		ToSql()
}

// CompleteProfile applies the patch fields, assigns the public student ID,
// stores the first credential hash and marks the profile complete in a single
// statement.
func (r *StudentRepository) CompleteProfile(ctx context.Context, email string, patch *models.StudentProfilePatch, studentID, passwordHash string) error {
	sql, args, err := r.completeProfileQuery(email, patch, studentID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to build complete student profile query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error executing complete student profile query")
		return fmt.Errorf("error completing student profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	logger.Info().Str("email", email).Str("studentID", studentID).Msg("Student profile completed")
	return nil
}

// StudentIDExists checks if a public student ID is already assigned.
func (r *StudentRepository) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build student ID exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking student ID: %w", err)
	}

	return exists, nil
}

// GetByEmail retrieves the full student row by email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByID retrieves the full student row by numeric id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByStudentID retrieves the full student row by the public "SH######" ID.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"student_id": studentID})
}

func (r *StudentRepository) getOne(ctx context.Context, pred interface{}) (*models.Student, error) {
	cols := append([]string{}, identityColumns...)
	cols = append(cols,
		"full_name", "student_id", "date_of_birth", "gender", "mobile_number",
		"highest_qualification", "course_or_stream", "college_or_university",
		"year_of_passing", "academic_status", "current_city", "state", "pincode",
		"preferred_job_role", "job_type", "willing_to_relocate", "expected_salary",
		"portfolio_url", "linkedin_url", "github_url", "skills", "languages",
		"resume", "photo")

	sql, args, err := r.sb.Select(cols...).
		From("students").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var s models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&s.ID, &s.Email, &s.OTPCode, &s.OTPExpiresAt, &s.Verified,
		&s.PasswordHash, &s.ProfileCompleted, &s.CreatedAt, &s.UpdatedAt,
		&s.FullName, &s.StudentID, &s.DateOfBirth, &s.Gender, &s.MobileNumber,
		&s.HighestQualification, &s.CourseOrStream, &s.CollegeOrUniversity,
		&s.YearOfPassing, &s.AcademicStatus, &s.CurrentCity, &s.State, &s.Pincode,
		&s.PreferredJobRole, &s.JobType, &s.WillingToRelocate, &s.ExpectedSalary,
		&s.PortfolioURL, &s.LinkedInURL, &s.GitHubURL, &s.Skills, &s.Languages,
		&s.Resume, &s.Photo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &s, nil
}
