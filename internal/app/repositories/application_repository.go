package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/snpzone/skillhunt/internal/app/models"
	"github.com/snpzone/skillhunt/internal/pkg/apperrors"
	"github.com/snpzone/skillhunt/internal/pkg/dberrors"
	"github.com/snpzone/skillhunt/internal/pkg/logger"
)

// ApplicationRepository handles job application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a job application. The unique index on
// (student_id, job_id) turns a duplicate application into
// apperrors.ErrAlreadyApplied regardless of request interleaving.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.JobApplication) (int64, error) {
	sql, args, err := r.sb.Insert("job_applications").
		Columns("student_id", "job_id", "company_id").
		Values(app.StudentID, app.JobID, app.CompanyID).
		Suffix("RETURNING id, applied_on").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.AppliedOn); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "job_applications_student_id_job_id_key") {
			logger.Warn().Int64("studentID", app.StudentID).Int64("jobID", app.JobID).Msg("Duplicate job application rejected")
			return 0, apperrors.ErrAlreadyApplied
		}
		logger.Error().Err(err).Int64("studentID", app.StudentID).Int64("jobID", app.JobID).Msg("Error executing create application query")
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return app.ID, nil
}

// ListByCompany returns all applications to a company's postings, newest
// first, with student and job summaries joined in.
func (r *ApplicationRepository) ListByCompany(ctx context.Context, companyID int64) ([]*models.JobApplication, error) {
	sql, args, err := r.sb.Select(
		"a.id", "a.student_id", "a.job_id", "a.company_id", "a.applied_on",
		"s.full_name", "s.email", "s.mobile_number", "s.student_id",
		"j.job_id", "j.job_role_name", "j.job_location", "j.job_mode", "j.job_type").
		From("job_applications a").
		Join("students s ON s.id = a.student_id").
		Join("jobs j ON j.id = a.job_id").
		Where(squirrel.Eq{"a.company_id": companyID}).
		OrderBy("a.applied_on DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.JobApplication
	for rows.Next() {
		var (
			a models.JobApplication
			s models.Student
			j models.Job
		)
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.JobID, &a.CompanyID, &a.AppliedOn,
			&s.FullName, &s.Email, &s.MobileNumber, &s.StudentID,
			&j.JobID, &j.JobRoleName, &j.JobLocation, &j.JobMode, &j.JobType); err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		s.ID = a.StudentID
		j.ID = a.JobID
		a.Student = &s
		a.Job = &j
		apps = append(apps, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, nil
}
