package models

import "time"

// JobApplication links a student to a job posting. A unique index on
// (student_id, job_id) rejects duplicate applications.
type JobApplication struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	JobID     int64     `json:"jobId" db:"job_id"`
	CompanyID int64     `json:"companyId" db:"company_id"`
	AppliedOn time.Time `json:"appliedOn" db:"applied_on"`

	// Joined summaries for the company applications listing
	Student *Student `json:"student,omitempty"`
	Job     *Job     `json:"job,omitempty"`
}
