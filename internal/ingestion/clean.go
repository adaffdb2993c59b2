package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace  = regexp.MustCompile(`\s+`)
	multiBlank  = regexp.MustCompile(`\n\n\n+`)
	bulletStart = []string{"- ", "* ", "• ", "▪ ", "● ", "○ ", "· "}
)

// CleanText normalizes extracted document text while preserving line
// structure: line endings become LF, in-line whitespace collapses, bullet
// markers and indentation survive, and blank-line runs shrink to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlank.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := multiSpace.ReplaceAllString(trimmed, " ")

	// Bulleted lines keep their indentation so nesting is visible to the
	// section parsers.
	if isBullet(trimmed) && indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

func isBullet(line string) bool {
	for _, prefix := range bulletStart {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
