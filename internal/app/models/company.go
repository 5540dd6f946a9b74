package models

// CompanyType enumerates legal structures a company can register under.
type CompanyType string

const (
	CompanyTypePrivateLimited CompanyType = "Private Limited"
	CompanyTypePublicLimited  CompanyType = "Public Limited"
	CompanyTypeLLP            CompanyType = "LLP"
	CompanyTypeSoleProp       CompanyType = "Sole Proprietorship"
	CompanyTypePartnership    CompanyType = "Partnership Firm"
	CompanyTypeNGO            CompanyType = "NGO / Non-Profit"
	CompanyTypeGovernment     CompanyType = "Government Organization"
	CompanyTypeOther          CompanyType = "Others"
)

// Company defines the company model based on the 'companies' table.
// Registration state lives in the embedded Identity.
type Company struct {
	Identity

	CompanyName string `json:"companyName" db:"company_name"`

	CompanyType        *string `json:"companyType,omitempty" db:"company_type"`
	IndustryType       *string `json:"industryType,omitempty" db:"industry_type"`
	CompanyWebsite     *string `json:"companyWebsite,omitempty" db:"company_website"`
	YearOfEstablished  *int    `json:"yearOfEstablishment,omitempty" db:"year_of_establishment"`
	CompanyDescription *string `json:"companyDescription,omitempty" db:"company_description"`

	CompanyPhoneNumber *string `json:"companyPhoneNumber,omitempty" db:"company_phone_number"`
	CompanyAddress     *string `json:"companyAddress,omitempty" db:"company_address"`

	ContactPersonName        *string `json:"contactPersonName,omitempty" db:"contact_person_name"`
	ContactPersonDesignation *string `json:"contactPersonDesignation,omitempty" db:"contact_person_designation"`
	ContactPersonEmail       *string `json:"contactPersonEmail,omitempty" db:"contact_person_email"`
	ContactPersonMobile      *string `json:"contactPersonMobile,omitempty" db:"contact_person_mobile"`

	GSTNumber *string `json:"gstNumber,omitempty" db:"gst_number"`

	// Base64-encoded attachments, capped at 2 MiB decoded each.
	CompanyPAN              *string `json:"-" db:"company_pan"`
	CompanyLogo             *string `json:"companyLogo,omitempty" db:"company_logo"`
	RegistrationCertificate *string `json:"-" db:"registration_certificate"`
}

// CompanyProfilePatch carries profile completion fields. Nil fields keep
// their stored values.
type CompanyProfilePatch struct {
	CompanyType              *string
	IndustryType             *string
	CompanyWebsite           *string
	YearOfEstablishment      *int
	CompanyDescription       *string
	CompanyPhoneNumber       *string
	CompanyAddress           *string
	ContactPersonName        *string
	ContactPersonDesignation *string
	ContactPersonEmail       *string
	ContactPersonMobile      *string
	GSTNumber                *string
	CompanyPAN               *string
	CompanyLogo              *string
	RegistrationCertificate  *string
}
