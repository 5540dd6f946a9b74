package models

// Student defines the student model based on the 'students' table.
// Registration state lives in the embedded Identity.
type Student struct {
	Identity

	FullName string `json:"fullName" db:"full_name"`

	// StudentID is the public "SH######" identifier assigned at profile
	// completion, distinct from the numeric row id.
	StudentID *string `json:"studentId,omitempty" db:"student_id"`

	DateOfBirth          *string `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Gender               *string `json:"gender,omitempty" db:"gender"`
	MobileNumber         *string `json:"mobileNumber,omitempty" db:"mobile_number"`
	HighestQualification *string `json:"highestQualification,omitempty" db:"highest_qualification"`
	CourseOrStream       *string `json:"courseOrStream,omitempty" db:"course_or_stream"`
	CollegeOrUniversity  *string `json:"collegeOrUniversity,omitempty" db:"college_or_university"`
	YearOfPassing        *int    `json:"yearOfPassing,omitempty" db:"year_of_passing"`
	AcademicStatus       *string `json:"academicStatus,omitempty" db:"academic_status"`

	CurrentCity *string `json:"currentCity,omitempty" db:"current_city"`
	State       *string `json:"state,omitempty" db:"state"`
	Pincode     *string `json:"pincode,omitempty" db:"pincode"`

	PreferredJobRole   *string `json:"preferredJobRole,omitempty" db:"preferred_job_role"`
	JobType            *string `json:"jobType,omitempty" db:"job_type"`
	WillingToRelocate  *bool   `json:"willingToRelocate,omitempty" db:"willing_to_relocate"`
	ExpectedSalary     *string `json:"expectedSalary,omitempty" db:"expected_salary"`
	PortfolioURL       *string `json:"portfolioUrl,omitempty" db:"portfolio_url"`
	LinkedInURL        *string `json:"linkedInUrl,omitempty" db:"linkedin_url"`
	GitHubURL          *string `json:"gitHubUrl,omitempty" db:"github_url"`
	Skills             *string `json:"skills,omitempty" db:"skills"`
	Languages          *string `json:"languages,omitempty" db:"languages"`

	// Base64-encoded attachments, capped at 2 MiB decoded each.
	Resume *string `json:"-" db:"resume"`
	Photo  *string `json:"-" db:"photo"`
}

// StudentProfilePatch carries profile completion fields. Nil fields keep
// their stored values.
type StudentProfilePatch struct {
	DateOfBirth          *string
	Gender               *string
	MobileNumber         *string
	HighestQualification *string
	CourseOrStream       *string
	CollegeOrUniversity  *string
	YearOfPassing        *int
	AcademicStatus       *string
	CurrentCity          *string
	State                *string
	Pincode              *string
	PreferredJobRole     *string
	JobType              *string
	WillingToRelocate    *bool
	ExpectedSalary       *string
	PortfolioURL         *string
	LinkedInURL          *string
	GitHubURL            *string
	Skills               *string
	Languages            *string
	Resume               *string
	Photo                *string
}
