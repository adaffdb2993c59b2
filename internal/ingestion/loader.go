package ingestion

import (
	"os"
	"path/filepath"
	"strings"
)

// Load reads a document and returns its cleaned plain text. The extractor is
// chosen by file extension.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceError{Path: path, NotFound: os.IsNotExist(err), Cause: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	var text string
	switch ext {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".txt", ".md", "":
		text = string(data)
	default:
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}
	if err != nil {
		return "", &SourceError{Path: path, Cause: err}
	}

	text = CleanText(text)
	if text == "" {
		return "", &EmptyExtractionError{Path: path}
	}
	return text, nil
}
