// Package extracting pulls structured entities out of segmented resume text:
// contact details, work history, education, skills, projects, and
// certifications. The extractors are regex and line-shape heuristics tuned
// for plain-text resumes produced by PDF and DOCX extraction.
package extracting

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/jonathan/resume-matcher/internal/types"
)

// contactScanLimit bounds how far into the raw document the contact scan
// reaches. Contact details past the first page header are somebody else's.
const contactScanLimit = 500

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w\-]+/?`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w\-]+/?`)
	nonDigit        = regexp.MustCompile(`\D`)

	titleCaseName = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]*\.?)*(?:\s+[A-Z][a-z]+)+$`)
	allCapsName   = regexp.MustCompile(`^[A-Z][A-Z\s.'-]+$`)

	locationLabeled = regexp.MustCompile(`(?i)Location:\s*([A-Za-z .]+,\s*[A-Z]{2})`)
	locationPiped   = regexp.MustCompile(`\|\s*([A-Za-z .]+,\s*[A-Z]{2})\s*$`)
	locationCountry = regexp.MustCompile(`([A-Za-z .]+,\s*[A-Z]{2}),\s*(?:USA|US|United States)`)
)

// labelStoplist holds "Label:" prefixes that carry contact data other than a
// person's name.
var labelStoplist = []string{"email", "phone", "tel", "mobile", "linkedin", "github", "portfolio", "website", "location", "address"}

// ExtractContact pulls contact details from the contact section (when one
// exists) plus the head of the raw document, where most resumes put the name
// and reach-me lines without any header.
func ExtractContact(sectionText, rawText string) types.ContactInfo {
	head := truncateRunes(rawText, contactScanLimit)
	scan := sectionText + "\n" + head

	contact := types.ContactInfo{
		Email:    emailPattern.FindString(scan),
		LinkedIn: findProfileURL(scan, linkedinPattern, "linkedin"),
		GitHub:   findProfileURL(scan, githubPattern, "github"),
		Location: extractLocation(head),
	}

	if m := phonePattern.FindString(scan); m != "" {
		if len(nonDigit.ReplaceAllString(m, "")) >= 10 {
			contact.Phone = strings.TrimSpace(m)
		}
	}

	contact.FullName = extractName(rawText)
	return contact
}

// truncateRunes cuts s to at most limit bytes without splitting a rune.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// findProfileURL matches a profile URL pattern, falling back to a
// "Label: value" line for resumes that spell the service name instead of
// pasting the link.
func findProfileURL(text string, pattern *regexp.Regexp, label string) string {
	if m := pattern.FindString(text); m != "" {
		return strings.TrimRight(m, "/")
	}
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))
		if !strings.HasPrefix(lower, label+":") {
			continue
		}
		value := strings.TrimSpace(line[strings.Index(line, ":")+1:])
		if value != "" {
			return value
		}
	}
	return ""
}

// extractName scans the first few non-empty lines for something shaped like a
// person's name: Title Case or ALL CAPS, plausible length, and free of
// contact noise.
func extractName(rawText string) string {
	seen := 0
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if strings.Contains(line, "@") || segmenting.IsBulletLine(line) {
			continue
		}
		if hasContactLabel(line) || isSectionHeaderWord(line) {
			continue
		}
		if len(line) < 3 || len(line) > 50 {
			continue
		}
		if titleCaseName.MatchString(line) || (allCapsName.MatchString(line) && strings.Contains(line, " ")) {
			return line
		}
	}
	return ""
}

func hasContactLabel(line string) bool {
	lower := strings.ToLower(line)
	for _, label := range labelStoplist {
		if strings.HasPrefix(lower, label+":") {
			return true
		}
	}
	return false
}

func isSectionHeaderWord(line string) bool {
	switch strings.ToLower(strings.TrimSuffix(line, ":")) {
	case "summary", "experience", "education", "skills", "projects", "contact", "objective", "profile":
		return true
	}
	return false
}

// extractLocation finds a "City, ST" style location in the document head.
func extractLocation(head string) string {
	if m := locationLabeled.FindStringSubmatch(head); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, line := range strings.Split(head, "\n") {
		if m := locationPiped.FindStringSubmatch(strings.TrimRight(line, " \t")); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	if m := locationCountry.FindStringSubmatch(head); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
