package extracting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	// 05/2018 Bachelor of Science: Computer Science, State University - Austin, TX
	datedEducation = regexp.MustCompile(`^(\d{1,2}/\d{4})\s+(.+?):\s*(.+?),\s*(.+?)(?:\s+-\s+(.+))?$`)

	degreeKeywords = []string{"bachelor", "master", "phd", "ph.d", "b.s.", "m.s.", "b.a.", "m.a.", "mba", "degree", "diploma"}

	degreePattern = regexp.MustCompile(`(?i)\b(Bachelor(?:'s)?(?:\s+of\s+[A-Za-z ]+)?|Master(?:'s)?(?:\s+of\s+[A-Za-z ]+)?|Ph\.?D\.?|Doctorate|B\.?S\.?c?\.?|M\.?S\.?c?\.?|B\.?A\.?|M\.?A\.?|M\.?B\.?A\.?|Associate(?:'s)?)\b`)
	fieldPattern  = regexp.MustCompile(`(?i)\bin\s+([A-Za-z][A-Za-z &/]+?)(?:,|$|\sfrom\b)`)
	gpaPattern    = regexp.MustCompile(`(?i)GPA:?\s*([0-9.]+(?:\s*/\s*[0-9.]+)?)`)
	eduDate       = regexp.MustCompile(`\b(\d{1,2}/\d{4}|(19|20)\d{2})\b`)
	eduLocation   = regexp.MustCompile(`-\s*([A-Za-z .]+,\s*[A-Z]{2})\s*$`)

	institutionWords = []string{"university", "college", "institute", "school"}
)

// ExtractEducation parses the education section. A fully punctuated
// "date degree: field, institution - location" line parses directly; anything
// else containing a degree keyword goes through field-by-field extraction.
func ExtractEducation(sectionText string) []types.Education {
	var entries []types.Education

	for _, raw := range strings.Split(sectionText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := datedEducation.FindStringSubmatch(line); m != nil {
			entries = append(entries, types.Education{
				GraduationDate: m[1],
				Degree:         strings.TrimSpace(m[2]),
				FieldOfStudy:   strings.TrimSpace(m[3]),
				Institution:    strings.TrimSpace(m[4]),
				Location:       strings.TrimSpace(m[5]),
			})
			continue
		}

		if !containsDegreeKeyword(line) {
			continue
		}
		if entry, ok := parseEducationLine(line); ok {
			entries = append(entries, entry)
		}
	}

	return entries
}

func containsDegreeKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// parseEducationLine pulls degree, field, institution, GPA, date, and
// location out of a free-form education line. Entries without a recognizable
// institution are dropped as noise.
func parseEducationLine(line string) (types.Education, bool) {
	entry := types.Education{}
	residual := line

	if m := eduDate.FindString(line); m != "" {
		entry.GraduationDate = m
	}
	if m := gpaPattern.FindStringSubmatch(line); m != nil {
		entry.GPA = strings.TrimSpace(m[1])
		residual = gpaPattern.ReplaceAllString(residual, "")
	}
	if m := eduLocation.FindStringSubmatch(line); m != nil {
		entry.Location = strings.TrimSpace(m[1])
		residual = eduLocation.ReplaceAllString(residual, "")
	}
	if m := degreePattern.FindString(line); m != "" {
		entry.Degree = strings.TrimSpace(m)
		residual = strings.Replace(residual, m, "", 1)
	}
	if m := fieldPattern.FindStringSubmatch(line); m != nil {
		entry.FieldOfStudy = strings.TrimSpace(m[1])
	}

	entry.Institution = findInstitution(line, residual)
	if entry.Institution == "" {
		return types.Education{}, false
	}
	return entry, true
}

// findInstitution prefers the comma-separated segment naming a school; when
// none does, the cleaned leftover of the line stands in if substantial.
func findInstitution(line, residual string) string {
	for _, part := range strings.Split(line, ",") {
		lower := strings.ToLower(part)
		for _, word := range institutionWords {
			if strings.Contains(lower, word) {
				return strings.TrimSpace(strings.Trim(part, " -:"))
			}
		}
	}

	cleaned := eduDate.ReplaceAllString(residual, "")
	cleaned = strings.Trim(cleaned, " ,-:")
	if idx := strings.Index(cleaned, ","); idx >= 0 {
		cleaned = strings.TrimSpace(cleaned[:idx])
	}
	// A proper-noun shape separates school names from sentence fragments.
	if len(cleaned) > 5 && cleaned[0] >= 'A' && cleaned[0] <= 'Z' {
		return cleaned
	}
	return ""
}
