// Package ingestion loads resume and job description documents from disk and
// extracts their plain text. PDF, DOCX, and plain text files are supported;
// everything downstream works on the extracted text.
package ingestion

import "fmt"

// UnsupportedFormatError reports a file extension no extractor handles.
type UnsupportedFormatError struct {
	Path      string
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q for %s (supported: .pdf, .docx, .txt, .md)", e.Extension, e.Path)
}

// SourceError reports a file that could not be opened or read.
type SourceError struct {
	Path     string
	NotFound bool
	Cause    error
}

func (e *SourceError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("source not found: %s", e.Path)
	}
	return fmt.Sprintf("reading %s: %v", e.Path, e.Cause)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// EmptyExtractionError reports a document that opened fine but yielded no
// text, such as a scanned image PDF.
type EmptyExtractionError struct {
	Path string
}

func (e *EmptyExtractionError) Error() string {
	return fmt.Sprintf("no text extracted from %s (image-only document?)", e.Path)
}
