package types

// Requirement categories for a job description.
const (
	CategoryRequired   = "required"
	CategoryPreferred  = "preferred"
	CategoryNiceToHave = "nice_to_have"
)

// JobRequirement is a single structured requirement from a job posting.
type JobRequirement struct {
	Category    string   `json:"category"` // required, preferred, nice_to_have
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// JobDescription is the complete structured representation of a parsed job posting.
type JobDescription struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	JobType     string `json:"job_type,omitempty"` // Full-Time, Contract, etc.
	SalaryRange string `json:"salary_range,omitempty"`

	// Main sections
	Overview         string           `json:"overview,omitempty"`
	Responsibilities []string         `json:"responsibilities"`
	Requirements     []JobRequirement `json:"requirements"`

	// Extracted entities
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Technologies    []string `json:"technologies"` // union of required + preferred
	Keywords        []string `json:"keywords"`

	// Experience requirements
	YearsOfExperience    string `json:"years_of_experience,omitempty"`
	EducationRequirement string `json:"education_requirement,omitempty"`

	// Traceability
	RawText    string `json:"raw_text,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
	URL        string `json:"url,omitempty"`
}

// JobPosting is a lightweight job record used by multi-job ranking, typically
// sourced from an external job board rather than a full parsed description.
type JobPosting struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}
