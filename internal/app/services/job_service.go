package services

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/snpzone/skillhunt/internal/app/models"
	"github.com/snpzone/skillhunt/internal/app/models/dto"
	"github.com/snpzone/skillhunt/internal/app/repositories"
	"github.com/snpzone/skillhunt/internal/pkg/apperrors"
	"github.com/snpzone/skillhunt/internal/pkg/otp"
)

// jobIDAttempts bounds the retry loop when minting a public job ID.
const jobIDAttempts = 5

// JobService handles job posting operations.
type JobService struct {
	jobRepo     *repositories.JobRepository
	companyRepo *repositories.CompanyRepository
	logger      zerolog.Logger
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo *repositories.JobRepository, companyRepo *repositories.CompanyRepository, logger zerolog.Logger) *JobService {
	return &JobService{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// jobIDPrefix derives the two-letter prefix for a company's job IDs from the
// first two letters of its name, "XX" when the name has fewer than two.
func jobIDPrefix(companyName string) string {
	var letters []rune
	for _, r := range companyName {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == 2 {
				break
			}
		}
	}
	if len(letters) < 2 {
		return "XX"
	}
	return string(letters)
}

// Create posts a new job for the company. The public job ID is the company
// prefix plus six random digits; collisions with existing IDs retry with
// fresh digits.
func (s *JobService) Create(ctx context.Context, companyID int64, req *dto.CreateJobRequest) (*models.Job, error) {
	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		CompanyID:      companyID,
		JobRoleName:    strings.TrimSpace(req.JobRoleName),
		JobLocation:    req.JobLocation,
		JobPreference:  req.JobPreference,
		JobType:        req.JobType,
		JobShift:       req.JobShift,
		JobMode:        req.JobMode,
		Qualification:  req.Qualification,
		YearOfPassing:  req.YearOfPassing,
		Aggregate:      req.Aggregate,
		Skills:         req.Skills,
		Salary:         req.Salary,
		NoOfPositions:  req.NoOfPositions,
		Bond:           req.Bond,
		BondDuration:   req.BondDuration,
		JobDescription: req.JobDescription,
		InterviewMode:  req.InterviewMode,
	}
	if job.JobRoleName == "" {
		return nil, apperrors.NewValidationError("Job role name is required")
	}

	prefix := jobIDPrefix(company.CompanyName)
	for i := 0; i < jobIDAttempts; i++ {
		digits, err := otp.GenerateCode()
		if err != nil {
			return nil, err
		}
		job.JobID = prefix + digits

		id, err := s.jobRepo.Create(ctx, job)
		if err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				continue
			}
			return nil, err
		}
		job.ID = id
		return job, nil
	}

	s.logger.Error().Str("prefix", prefix).Int64("companyID", companyID).Msg("Exhausted job ID attempts")
	return nil, apperrors.ErrJobIDUnavailable
}

// ListByCompany returns the company's own postings.
func (s *JobService) ListByCompany(ctx context.Context, companyID int64) ([]*models.Job, error) {
	return s.jobRepo.ListByCompany(ctx, companyID)
}

// ListAll returns the job board shown to students, trimmed to listing rows.
func (s *JobService) ListAll(ctx context.Context) ([]dto.JobSummary, error) {
	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.JobSummary, 0, len(jobs))
	for _, j := range jobs {
		summaries = append(summaries, jobSummaryOf(j))
	}
	return summaries, nil
}

// jobSummaryOf trims a joined job row down to the board listing fields.
func jobSummaryOf(j *models.Job) dto.JobSummary {
	summary := dto.JobSummary{
		JobID:       j.JobID,
		JobRoleName: j.JobRoleName,
		JobLocation: j.JobLocation,
		JobMode:     j.JobMode,
		JobType:     j.JobType,
		CompanyLogo: j.CompanyLogo,
		CreatedAt:   j.CreatedAt,
	}
	if j.CompanyName != nil {
		summary.CompanyName = *j.CompanyName
	}
	return summary
}

// GetByJobID returns a posting by its public ID.
func (s *JobService) GetByJobID(ctx context.Context, jobID string) (*models.Job, error) {
	return s.jobRepo.GetByJobID(ctx, jobID)
}
