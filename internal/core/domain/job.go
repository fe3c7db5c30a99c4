package domain

// Origin identifies where a raw document came from.
type Origin string

// Known document origins.
const (
	// OriginPastedText is text pasted directly by the user.
	OriginPastedText Origin = "pasted_text"

	// OriginFetchedURL is text extracted from a fetched web page.
	OriginFetchedURL Origin = "fetched_url"

	// OriginUploadedPDF is an uploaded PDF document.
	OriginUploadedPDF Origin = "uploaded_pdf"

	// OriginRepositoryURL is a remote repository reference.
	OriginRepositoryURL Origin = "repository_url"
)

// IsValid returns true if the origin is recognised.
func (o Origin) IsValid() bool {
	switch o {
	case OriginPastedText, OriginFetchedURL, OriginUploadedPDF, OriginRepositoryURL:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o Origin) String() string {
	return string(o)
}

// JobMetadata holds metadata extracted from a job description.
// String fields are empty when no pattern matched; salary bounds are nil
// when no salary was found. Callers apply their own fallback chain
// (user input > extracted > default) over unset fields.
type JobMetadata struct {
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`

	// Seniority is the first matching label from the fixed seniority
	// priority list (intern, junior, mid, senior, staff, principal,
	// lead, manager, director, vp).
	Seniority string `json:"seniority,omitempty"`

	// RoleType is the first matching label from the fixed role
	// priority list (backend, frontend, fullstack, devops, sre,
	// data_engineer, data_scientist, ml_engineer, mobile, security, qa).
	RoleType string `json:"role_type,omitempty"`

	// RemoteType is one of remote, hybrid, onsite.
	RemoteType string `json:"remote_type,omitempty"`

	// SalaryMin and SalaryMax are integer USD bounds. When both are
	// set, SalaryMin <= SalaryMax.
	SalaryMin *int `json:"salary_min,omitempty"`
	SalaryMax *int `json:"salary_max,omitempty"`

	// SalaryCurrency is "USD" whenever a salary match succeeded.
	SalaryCurrency string `json:"salary_currency,omitempty"`
}

// HasSalary returns true if both salary bounds were extracted.
func (m JobMetadata) HasSalary() bool {
	return m.SalaryMin != nil && m.SalaryMax != nil
}

// JobSections holds the named sections located in a job description.
// Each field is an independent bounded substring of the cleaned text;
// an empty string means the section was not found.
type JobSections struct {
	Requirements     string `json:"requirements,omitempty"`
	NiceToHave       string `json:"nice_to_have,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
	Benefits         string `json:"benefits,omitempty"`
}

// JobParseResult is the bundle produced by a job-ingestion request:
// the cleaned text plus the metadata and sections extracted from it.
type JobParseResult struct {
	CleanedText string      `json:"cleaned_text"`
	Metadata    JobMetadata `json:"metadata"`
	Sections    JobSections `json:"sections"`
}
