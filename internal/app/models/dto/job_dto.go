package dto

import "time"

// CreateJobRequest creates a job posting for the logged-in company.
type CreateJobRequest struct {
	JobRoleName   string  `json:"jobRoleName" binding:"required"`
	JobLocation   *string `json:"jobLocation"`
	JobPreference *string `json:"jobPreference"`
	JobType       *string `json:"jobType"`
	JobShift      *string `json:"jobShift"`
	JobMode       *string `json:"jobMode"`

	Qualification *string `json:"qualification"`
	YearOfPassing *int    `json:"yearOfPassing"`
	Aggregate     *string `json:"aggregate"`
	Skills        *string `json:"skills"`

	Salary        *string `json:"salary"`
	NoOfPositions *int    `json:"noOfPositions"`
	Bond          *bool   `json:"bond"`
	BondDuration  *string `json:"bondDuration"`

	JobDescription *string `json:"jobDescription"`
	InterviewMode  *string `json:"interviewMode"`
}

// JobSummary is the listing row shown to students and companies.
type JobSummary struct {
	JobID       string    `json:"jobId"`
	JobRoleName string    `json:"jobRoleName"`
	JobLocation *string   `json:"jobLocation,omitempty"`
	JobMode     *string   `json:"jobMode,omitempty"`
	JobType     *string   `json:"jobType,omitempty"`
	CompanyName string    `json:"companyName"`
	CompanyLogo *string   `json:"companyLogo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
