package dto

// CompanySendOTPRequest starts a company registration.
type CompanySendOTPRequest struct {
	CompanyName   string `json:"companyName" binding:"required"`
	OfficialEmail string `json:"officialEmail" binding:"required,email"`
}

// CompanyVerifyOTPRequest submits the challenge code.
type CompanyVerifyOTPRequest struct {
	OfficialEmail string `json:"officialEmail" binding:"required,email"`
	OTP           string `json:"otp" binding:"required"`
}

// CompanyCompleteRegistrationRequest carries the profile completion fields.
// Every field except the email is optional; absent fields keep their prior
// values (patch semantics).
type CompanyCompleteRegistrationRequest struct {
	OfficialEmail string `json:"officialEmail" binding:"required,email"`

	CompanyType              *string `json:"companyType"`
	IndustryType             *string `json:"industryType"`
	CompanyWebsite           *string `json:"companyWebsite"`
	YearOfEstablishment      *int    `json:"yearOfEstablishment"`
	CompanyDescription       *string `json:"companyDescription"`
	CompanyPhoneNumber       *string `json:"companyPhoneNumber"`
	CompanyAddress           *string `json:"companyAddress"`
	ContactPersonName        *string `json:"contactPersonName"`
	ContactPersonDesignation *string `json:"contactPersonDesignation"`
	ContactPersonEmail       *string `json:"contactPersonEmail"`
	ContactPersonMobile      *string `json:"contactPersonMobile"`
	GSTNumber                *string `json:"gstNumber"`
	CompanyPAN               *string `json:"companyPAN"`
	CompanyLogo              *string `json:"companyLogo"`
	RegistrationCertificate  *string `json:"registrationCertificate"`
}

// CompanySendLoginPasswordRequest asks for a fresh emailed login password.
type CompanySendLoginPasswordRequest struct {
	OfficialEmail string `json:"officialEmail" binding:"required,email"`
}

// CompanyLoginRequest authenticates a company.
type CompanyLoginRequest struct {
	OfficialEmail string `json:"officialEmail" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
}
