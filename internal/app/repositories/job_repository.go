package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/snpzone/skillhunt/internal/app/models"
	"github.com/snpzone/skillhunt/internal/pkg/apperrors"
	"github.com/snpzone/skillhunt/internal/pkg/dberrors"
	"github.com/snpzone/skillhunt/internal/pkg/logger"
)

// JobRepository handles job posting database operations
type JobRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// jobColumns are the persisted job columns, in scan order.
var jobColumns = []string{
	"id", "job_id", "company_id", "job_role_name", "job_location",
	"job_preference", "job_type", "job_shift", "job_mode", "qualification",
	"year_of_passing", "aggregate", "skills", "salary", "no_of_positions",
	"bond", "bond_duration", "job_description", "interview_mode", "created_at",
}

func scanJob(row pgx.Row, j *models.Job) error {
	return row.Scan(
		&j.ID, &j.JobID, &j.CompanyID, &j.JobRoleName, &j.JobLocation,
		&j.JobPreference, &j.JobType, &j.JobShift, &j.JobMode, &j.Qualification,
		&j.YearOfPassing, &j.Aggregate, &j.Skills, &j.Salary, &j.NoOfPositions,
		&j.Bond, &j.BondDuration, &j.JobDescription, &j.InterviewMode, &j.CreatedAt)
}

// Create inserts a new job posting and returns its numeric id. A duplicate
// human-readable job_id returns apperrors.ErrConflict so the caller can retry
// with a fresh one.
func (r *JobRepository) Create(ctx context.Context, job *models.Job) (int64, error) {
	sql, args, err := r.sb.Insert("jobs").
		Columns("job_id", "company_id", "job_role_name", "job_location",
			"job_preference", "job_type", "job_shift", "job_mode", "qualification",
			"year_of_passing", "aggregate", "skills", "salary", "no_of_positions",
			"bond", "bond_duration", "job_description", "interview_mode").
		Values(job.JobID, job.CompanyID, job.JobRoleName, job.JobLocation,
			job.JobPreference, job.JobType, job.JobShift, job.JobMode, job.Qualification,
			job.YearOfPassing, job.Aggregate, job.Skills, job.Salary, job.NoOfPositions,
			job.Bond, job.BondDuration, job.JobDescription, job.InterviewMode).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create job query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "jobs_job_id_key") {
			return 0, apperrors.ErrConflict
		}
		logger.Error().Err(err).Str("jobID", job.JobID).Msg("Error executing create job query")
		return 0, fmt.Errorf("error creating job: %w", err)
	}

	logger.Info().Str("jobID", job.JobID).Int64("companyID", job.CompanyID).Msg("Job created")
	return id, nil
}

// ListByCompany returns a company's postings, newest first.
func (r *JobRepository) ListByCompany(ctx context.Context, companyID int64) ([]*models.Job, error) {
	sql, args, err := r.sb.Select(jobColumns...).
		From("jobs").
		Where(squirrel.Eq{"company_id": companyID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list company jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing company jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		var j models.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, nil
}

// ListAll returns all postings joined with company name and logo, newest
// first. Used for the student job board.
func (r *JobRepository) ListAll(ctx context.Context) ([]*models.Job, error) {
	cols := make([]string, 0, len(jobColumns)+2)
	for _, c := range jobColumns {
		cols = append(cols, "j."+c)
	}
	cols = append(cols, "c.company_name", "c.company_logo")

	sql, args, err := r.sb.Select(cols...).
		From("jobs j").
		Join("companies c ON c.id = j.company_id").
		OrderBy("j.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list all jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(
			&j.ID, &j.JobID, &j.CompanyID, &j.JobRoleName, &j.JobLocation,
			&j.JobPreference, &j.JobType, &j.JobShift, &j.JobMode, &j.Qualification,
			&j.YearOfPassing, &j.Aggregate, &j.Skills, &j.Salary, &j.NoOfPositions,
			&j.Bond, &j.BondDuration, &j.JobDescription, &j.InterviewMode, &j.CreatedAt,
			&j.CompanyName, &j.CompanyLogo); err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, nil
}

// GetByJobID retrieves a posting by its human-readable ID, with company name
// and logo joined in.
func (r *JobRepository) GetByJobID(ctx context.Context, jobID string) (*models.Job, error) {
	cols := make([]string, 0, len(jobColumns)+2)
	for _, c := range jobColumns {
		cols = append(cols, "j."+c)
	}
	cols = append(cols, "c.company_name", "c.company_logo")

	sql, args, err := r.sb.Select(cols...).
		From("jobs j").
		Join("companies c ON c.id = j.company_id").
		Where(squirrel.Eq{"j.job_id": jobID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	var j models.Job
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&j.ID, &j.JobID, &j.CompanyID, &j.JobRoleName, &j.JobLocation,
		&j.JobPreference, &j.JobType, &j.JobShift, &j.JobMode, &j.Qualification,
		&j.YearOfPassing, &j.Aggregate, &j.Skills, &j.Salary, &j.NoOfPositions,
		&j.Bond, &j.BondDuration, &j.JobDescription, &j.InterviewMode, &j.CreatedAt,
		&j.CompanyName, &j.CompanyLogo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	return &j, nil
}
