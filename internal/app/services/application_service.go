package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/snpzone/skillhunt/internal/app/models"
	"github.com/snpzone/skillhunt/internal/app/repositories"
)

// ApplicationService handles student job applications.
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(applicationRepo *repositories.ApplicationRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

// Apply records a student's application to a job. Applying twice to the same
// job surfaces as apperrors.ErrAlreadyApplied from the repository.
func (s *ApplicationService) Apply(ctx context.Context, studentID, jobID, companyID int64) (*models.JobApplication, error) {
	app := &models.JobApplication{
		StudentID: studentID,
		JobID:     jobID,
		CompanyID: companyID,
	}

	if _, err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("jobID", jobID).Msg("Job application recorded")
	return app, nil
}

// ListByCompany returns all applications to a company's postings.
func (s *ApplicationService) ListByCompany(ctx context.Context, companyID int64) ([]*models.JobApplication, error) {
	return s.applicationRepo.ListByCompany(ctx, companyID)
}
