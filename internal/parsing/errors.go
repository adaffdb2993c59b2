// Package parsing assembles segmented and extracted document content into the
// structured Resume and JobDescription types.
package parsing

import "fmt"

// ParseError signals that a document could not be turned into a structured
// record at all. Partial extraction is not an error; missing fields stay
// zero-valued and parsing continues.
type ParseError struct {
	Document string // "resume" or "job description"
	Message  string
	Cause    error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parsing %s: %s: %v", e.Document, e.Message, e.Cause)
	}
	return fmt.Sprintf("parsing %s: %s", e.Document, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
