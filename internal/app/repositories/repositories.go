package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories aggregates all repository instances
type Repositories struct {
	CompanyRepository     *CompanyRepository
	StudentRepository     *StudentRepository
	JobRepository         *JobRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories creates all repositories over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CompanyRepository:     NewCompanyRepository(db),
		StudentRepository:     NewStudentRepository(db),
		JobRepository:         NewJobRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}
