package models

import "time"

// Job defines the job posting model based on the 'jobs' table.
type Job struct {
	ID        int64  `json:"id" db:"id"`
	JobID     string `json:"jobId" db:"job_id"` // human-readable, e.g. "AC123456"
	CompanyID int64  `json:"companyId" db:"company_id"`

	JobRoleName   string  `json:"jobRoleName" db:"job_role_name"`
	JobLocation   *string `json:"jobLocation,omitempty" db:"job_location"`
	JobPreference *string `json:"jobPreference,omitempty" db:"job_preference"`
	JobType       *string `json:"jobType,omitempty" db:"job_type"`
	JobShift      *string `json:"jobShift,omitempty" db:"job_shift"`
	JobMode       *string `json:"jobMode,omitempty" db:"job_mode"`

	Qualification *string `json:"qualification,omitempty" db:"qualification"`
	YearOfPassing *int    `json:"yearOfPassing,omitempty" db:"year_of_passing"`
	Aggregate     *string `json:"aggregate,omitempty" db:"aggregate"`
	Skills        *string `json:"skills,omitempty" db:"skills"`

	Salary        *string `json:"salary,omitempty" db:"salary"`
	NoOfPositions *int    `json:"noOfPositions,omitempty" db:"no_of_positions"`
	Bond          *bool   `json:"bond,omitempty" db:"bond"`
	BondDuration  *string `json:"bondDuration,omitempty" db:"bond_duration"`

	JobDescription *string `json:"jobDescription,omitempty" db:"job_description"`
	InterviewMode  *string `json:"interviewMode,omitempty" db:"interview_mode"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Denormalized company info for listings, no db column of its own
	CompanyName *string `json:"companyName,omitempty"`
	CompanyLogo *string `json:"companyLogo,omitempty"`
}
