package dto

// StudentSendOTPRequest starts a student registration.
type StudentSendOTPRequest struct {
	FullName     string `json:"fullName" binding:"required"`
	EmailAddress string `json:"emailAddress" binding:"required,email"`
}

// StudentVerifyOTPRequest submits the challenge code.
type StudentVerifyOTPRequest struct {
	EmailAddress string `json:"emailAddress" binding:"required,email"`
	OTP          string `json:"otp" binding:"required"`
}

// StudentCompleteRegistrationRequest carries the profile completion fields.
// Every field except the email is optional; absent fields keep their prior
// values (patch semantics).
type StudentCompleteRegistrationRequest struct {
	EmailAddress string `json:"emailAddress" binding:"required,email"`

	DateOfBirth          *string `json:"dateOfBirth"`
	Gender               *string `json:"gender"`
	MobileNumber         *string `json:"mobileNumber"`
	HighestQualification *string `json:"highestQualification"`
	CourseOrStream       *string `json:"courseOrStream"`
	CollegeOrUniversity  *string `json:"collegeOrUniversity"`
	YearOfPassing        *int    `json:"yearOfPassing"`
	AcademicStatus       *string `json:"academicStatus"`
	CurrentCity          *string `json:"currentCity"`
	State                *string `json:"state"`
	Pincode              *string `json:"pincode"`
	PreferredJobRole     *string `json:"preferredJobRole"`
	JobType              *string `json:"jobType"`
	WillingToRelocate    *bool   `json:"willingToRelocate"`
	ExpectedSalary       *string `json:"expectedSalary"`
	PortfolioURL         *string `json:"portfolioUrl"`
	LinkedInURL          *string `json:"linkedInUrl"`
	GitHubURL            *string `json:"gitHubUrl"`
	Skills               *string `json:"skills"`
	Languages            *string `json:"languages"`
	Resume               *string `json:"resume"`
	Photo                *string `json:"photo"`
}

// StudentCompleteRegistrationResponse returns the assigned public student ID.
type StudentCompleteRegistrationResponse struct {
	Message   string `json:"message"`
	StudentID string `json:"studentID"`
}

// StudentSendLoginPasswordRequest asks for a fresh emailed login password.
type StudentSendLoginPasswordRequest struct {
	EmailAddress string `json:"emailAddress" binding:"required,email"`
}

// StudentLoginRequest authenticates a student.
type StudentLoginRequest struct {
	EmailAddress string `json:"emailAddress" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
}

// ApplyJobRequest submits a job application for the logged-in student.
type ApplyJobRequest struct {
	JobID     int64 `json:"jobId" binding:"required"`
	CompanyID int64 `json:"companyId" binding:"required"`
}
