package db

import (
	"time"

	"github.com/google/uuid"
)

// Document kind constants
const (
	KindResume         = "resume"
	KindJobDescription = "job_description"
)

// Document is a stored parsed document. Content holds the JSON form of the
// parsed resume or job description.
type Document struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	SourceFile string    `json:"source_file,omitempty"`
	Content    []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// Analysis is a stored match analysis linking a resume document to a job
// description document.
type Analysis struct {
	ID           uuid.UUID `json:"id"`
	ResumeID     uuid.UUID `json:"resume_id"`
	JobID        uuid.UUID `json:"job_id"`
	OverallScore float64   `json:"overall_score"`
	Analysis     []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// JobPostingRecord is a cached job posting row. Cached rows feed multi-job
// ranking without re-fetching the source URL.
type JobPostingRecord struct {
	ID          uuid.UUID  `json:"id"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Company     string     `json:"company,omitempty"`
	Location    string     `json:"location,omitempty"`
	Description string     `json:"description"`
	FetchedAt   time.Time  `json:"fetched_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsFresh reports whether the cached posting can still be used without a
// re-fetch. A posting with no expiry is never fresh.
func (p *JobPostingRecord) IsFresh() bool {
	if p.ExpiresAt == nil {
		return false
	}
	return time.Now().Before(*p.ExpiresAt)
}

// IsExpired is the inverse of IsFresh.
func (p *JobPostingRecord) IsExpired() bool {
	return !p.IsFresh()
}
