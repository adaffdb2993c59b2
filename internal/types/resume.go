// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ContactInfo holds contact details extracted from a resume.
// All fields are free text and optional; extraction is best-effort.
type ContactInfo struct {
	FullName  string `json:"full_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Location  string `json:"location,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Experience represents a single work history entry.
type Experience struct {
	Company      string   `json:"company"`
	Title        string   `json:"title"` // may be "Unknown" when only the company line parsed
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"` // literal "Present" for current roles
	IsCurrent    bool     `json:"is_current"`
	Bullets      []string `json:"bullets"` // document order
	Technologies []string `json:"technologies,omitempty"`
}

// CurrentMarkers are the end-date tokens that mark an ongoing role.
var CurrentMarkers = []string{"present", "current"}

// IsCurrentEndDate reports whether an end-date token marks an ongoing role.
func IsCurrentEndDate(endDate string) bool {
	lower := strings.ToLower(strings.TrimSpace(endDate))
	for _, marker := range CurrentMarkers {
		if lower == marker {
			return true
		}
	}
	return false
}

// Education represents a single education entry.
// Institution may be empty when the parser could not recover it; the entry is
// still kept if any other field parsed.
type Education struct {
	Institution    string   `json:"institution"`
	Degree         string   `json:"degree,omitempty"`
	FieldOfStudy   string   `json:"field_of_study,omitempty"`
	Location       string   `json:"location,omitempty"`
	GraduationDate string   `json:"graduation_date,omitempty"`
	GPA            string   `json:"gpa,omitempty"` // string, preserves formats like "3.85"
	Honors         []string `json:"honors,omitempty"`
	Coursework     []string `json:"relevant_coursework,omitempty"`
}

// Project represents a personal or professional project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Bullets      []string `json:"bullets"`
	URL          string   `json:"url,omitempty"`
	Date         string   `json:"date,omitempty"`
}

// Certification represents a certification or license entry.
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	Date         string `json:"date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
	URL          string `json:"url,omitempty"`
}

// Resume is the complete structured representation of a parsed resume.
// It is created once per parse call and owned by the caller; list fields
// preserve source document order.
type Resume struct {
	Contact        ContactInfo     `json:"contact"`
	Summary        string          `json:"summary,omitempty"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []string        `json:"skills"`
	GenAISkills    []string        `json:"genai_skills"` // kept separate from general skills
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`

	// Traceability
	RawText    string `json:"raw_text,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
}

// ExperienceText returns all experience bullets joined into one block,
// used for fallback skill matching against the work history.
func (r *Resume) ExperienceText() string {
	var sb strings.Builder
	for _, exp := range r.Experience {
		for _, bullet := range exp.Bullets {
			sb.WriteString(bullet)
			sb.WriteString(" ")
		}
	}
	return strings.TrimSpace(sb.String())
}
