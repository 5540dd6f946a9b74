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

// identityColumns are the registration state columns shared by the
// companies and students tables.
var identityColumns = []string{"id", "email", "otp_code", "otp_expires_at", "verified", "password_hash", "profile_completed", "created_at", "updated_at"}

// CompanyRepository handles company database operations. It implements
// IdentityStore for the registration state machine.
type CompanyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindIdentity returns the registration state for an email, (nil, nil) when
// no record exists.
func (r *CompanyRepository) FindIdentity(ctx context.Context, email string) (*models.Identity, error) {
	sql, args, err := r.sb.Select(identityColumns...).
		From("companies").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find company identity query: %w", err)
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
		return nil, fmt.Errorf("error retrieving company identity: %w", err)
	}

	return &identity, nil
}

// CreatePending inserts a new unverified company with an outstanding
// challenge.
func (r *CompanyRepository) CreatePending(ctx context.Context, email, displayName, otpCode string, expiresAt time.Time) error {
	sql, args, err := r.sb.Insert("companies").
		Columns("company_name", "email", "otp_code", "otp_expires_at").
		Values(displayName, email, otpCode, expiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create company query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "companies_email_key") {
			logger.Warn().Str("email", email).Msg("Attempted to create company with duplicate email")
			return apperrors.ErrConflict
		}
		logger.Error().Err(err).Str("email", email).Msg("Error executing create company query")
		return fmt.Errorf("error creating company: %w", err)
	}

	return nil
}

// MarkVerified atomically clears the challenge and flips verified. The WHERE
// clause is the compare-and-swap: only an unverified row with the matching
// code is updated, so concurrent validations cannot both succeed.
func (r *CompanyRepository) MarkVerified(ctx context.Context, email, otpCode string) (bool, error) {
	sql, args, err := r.sb.Update("companies").
		Set("otp_code", nil).
		Set("otp_expires_at", nil).
		Set("verified", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"email": email, "otp_code": otpCode, "verified": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build verify company query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error verifying company: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// SetPasswordHash replaces the stored credential hash.
func (r *CompanyRepository) SetPasswordHash(ctx context.Context, email, passwordHash string) error {
	sql, args, err := r.sb.Update("companies").
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set company password query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating company password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}

// completeProfileQuery builds the single-statement profile update. Nil patch
// fields keep their stored values (COALESCE).
func (r *CompanyRepository) completeProfileQuery(email string, patch *models.CompanyProfilePatch, passwordHash string) (string, []interface{}, error) {
	return r.sb.Update("companies").
		Set("company_type", squirrel.Expr("COALESCE(?, company_type)", patch.CompanyType)).
		Set("industry_type", squirrel.Expr("COALESCE(?, industry_type)", patch.IndustryType)).
		Set("company_website", squirrel.Expr("COALESCE(?, company_website)", patch.CompanyWebsite)).
		Set("year_of_establishment", squirrel.Expr("COALESCE(?, year_of_establishment)", patch.YearOfEstablishment)).
		Set("company_description", squirrel.Expr("COALESCE(?, company_description)", patch.CompanyDescription)).
		Set("company_phone_number", squirrel.Expr("COALESCE(?, company_phone_number)", patch.CompanyPhoneNumber)).
		Set("company_address", squirrel.Expr("COALESCE(?, company_address)", patch.CompanyAddress)).
		Set("contact_person_name", squirrel.Expr("COALESCE(?, contact_person_name)", patch.ContactPersonName)).
		Set("contact_person_designation", squirrel.Expr("COALESCE(?, contact_person_designation)", patch.ContactPersonDesignation)).
		Set("contact_person_email", squirrel.Expr("COALESCE(?, contact_person_email)", patch.ContactPersonEmail)).
		Set("contact_person_mobile", squirrel.Expr("COALESCE(?, contact_person_mobile)", patch.ContactPersonMobile)).
		Set("gst_number", squirrel.Expr("COALESCE(?, gst_number)", patch.GSTNumber)).
		Set("company_pan", squirrel.Expr("COALESCE(?, company_pan)", patch.CompanyPAN)).
		Set("company_logo", squirrel.Expr("COALESCE(?, company_logo)", patch.CompanyLogo)).
		Set("registration_certificate", squirrel.Expr("COALESCE(?, registration_certificate)", patch.RegistrationCertificate)).
		Set("password_hash", passwordHash).
		Set("profile_completed", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"email": email}).
		ToSql()
}

// CompleteProfile applies the patch fields, stores the first credential hash
// and marks the profile complete in a single statement.
func (r *CompanyRepository) CompleteProfile(ctx context.Context, email string, patch *models.CompanyProfilePatch, passwordHash string) error {
	sql, args, err := r.completeProfileQuery(email, patch, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to build complete company profile query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error executing complete company profile query")
		return fmt.Errorf("error completing company profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	logger.Info().Str("email", email).Msg("Company profile completed")
	return nil
}

// GetByEmail retrieves the full company row by email.
func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*models.Company, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByID retrieves the full company row by numeric id.
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *CompanyRepository) getOne(ctx context.Context, pred interface{}) (*models.Company, error) {
	cols := append([]string{}, identityColumns...)
	cols = append(cols,
		"company_name", "company_type", "industry_type", "company_website",
		"year_of_establishment", "company_description", "company_phone_number",
		"company_address", "contact_person_name", "contact_person_designation",
		"contact_person_email", "contact_person_mobile", "gst_number",
		"company_pan", "company_logo", "registration_certificate")

	sql, args, err := r.sb.Select(cols...).
		From("companies").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	var c models.Company
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&c.ID, &c.Email, &c.OTPCode, &c.OTPExpiresAt, &c.Verified,
		&c.PasswordHash, &c.ProfileCompleted, &c.CreatedAt, &c.UpdatedAt,
		&c.CompanyName, &c.CompanyType, &c.IndustryType, &c.CompanyWebsite,
		&c.YearOfEstablished, &c.CompanyDescription, &c.CompanyPhoneNumber,
		&c.CompanyAddress, &c.ContactPersonName, &c.ContactPersonDesignation,
		&c.ContactPersonEmail, &c.ContactPersonMobile, &c.GSTNumber,
		&c.CompanyPAN, &c.CompanyLogo, &c.RegistrationCertificate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}

	return &c, nil
}
