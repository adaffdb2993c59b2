package extracting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/jonathan/resume-matcher/internal/types"
)

const monthPattern = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*\.?`

var (
	dateToken = `(?:` + monthPattern + `\s+\d{4}|\d{1,2}/\d{4}|\d{4})`
	dateRange = regexp.MustCompile(`(?i)(` + dateToken + `)\s*[–—-]\s*(` + dateToken + `|Present|Current)`)

	// Title – Company, Location | Jan 2020 – Present
	inlineEntry = regexp.MustCompile(`(?i)^(.+?)\s+[–—-]\s+(.+?)\s*\|\s*(` + dateToken + `)\s*[–—-]\s*(` + dateToken + `|Present|Current)\s*$`)

	// Company, Location | Jan 2020 – Dec 2022
	pipedEntry = regexp.MustCompile(`(?i)^(.+?)\s*\|\s*(` + dateToken + `)\s*[–—-]\s*(` + dateToken + `|Present|Current)\s*$`)

	yearDigits = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// Sentence continuations start with two capitalized words; anything else
	// glued below a bullet is wrapped text belonging to that bullet.
	sentenceStart = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+`)
)

// ExtractExperience parses the experience section into work history records.
// It recognizes three entry shapes: an inline "Title – Company | dates" line,
// a "Company | dates" line with the title on a nearby earlier line, and a
// bare date-range line whose title and company sit on the two lines above.
func ExtractExperience(sectionText string) []types.Experience {
	lines := strings.Split(sectionText, "\n")

	var records []types.Experience
	var current *types.Experience

	flush := func() {
		if current != nil && (current.Company != "" || current.Title != "") {
			records = append(records, *current)
		}
		current = nil
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := inlineEntry.FindStringSubmatch(line); m != nil {
			flush()
			company, location := splitCompanyLocation(m[2])
			current = &types.Experience{
				Title:     strings.TrimSpace(m[1]),
				Company:   company,
				Location:  location,
				StartDate: m[3],
				EndDate:   m[4],
				IsCurrent: types.IsCurrentEndDate(m[4]),
			}
			continue
		}

		if m := pipedEntry.FindStringSubmatch(line); m != nil {
			flush()
			company, location := splitCompanyLocation(m[1])
			current = &types.Experience{
				Company:   company,
				Location:  location,
				Title:     lookBehindTitle(lines, i),
				StartDate: m[2],
				EndDate:   m[3],
				IsCurrent: types.IsCurrentEndDate(m[3]),
			}
			continue
		}

		if m := dateRange.FindStringSubmatch(line); m != nil && strings.TrimSpace(dateRange.ReplaceAllString(line, "")) == "" {
			flush()
			title, company := lookBehindTitleCompany(lines, i)
			current = &types.Experience{
				Title:     title,
				Company:   company,
				StartDate: m[1],
				EndDate:   m[2],
				IsCurrent: types.IsCurrentEndDate(m[2]),
			}
			continue
		}

		if current == nil {
			continue
		}

		if segmenting.IsBulletLine(line) {
			if text := segmenting.StripBullet(line); text != "" {
				current.Bullets = append(current.Bullets, text)
			}
			continue
		}

		// Wrapped bullet text continues the previous bullet unless it reads
		// like a fresh sentence.
		if len(current.Bullets) > 0 && !sentenceStart.MatchString(line) {
			last := len(current.Bullets) - 1
			current.Bullets[last] = current.Bullets[last] + " " + line
			continue
		}

		// A substantial unbulleted line right under the entry header is a
		// one-paragraph role description.
		if len(current.Bullets) == 0 && len(line) > 20 && !strings.Contains(line, "|") && !dateRange.MatchString(line) {
			current.Bullets = append(current.Bullets, line)
		}
	}
	flush()

	return records
}

// splitCompanyLocation divides "Acme Corp, Austin, TX" into company and
// location. Locations are the trailing "City, ST" pair when present.
func splitCompanyLocation(s string) (company, location string) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ",")
	if len(parts) >= 3 {
		n := len(parts)
		return strings.TrimSpace(strings.Join(parts[:n-2], ",")),
			strings.TrimSpace(parts[n-2]) + ", " + strings.TrimSpace(parts[n-1])
	}
	if len(parts) == 2 {
		second := strings.TrimSpace(parts[1])
		if len(second) == 2 && second == strings.ToUpper(second) {
			// "Remote, TX" style with the company omitted keeps both halves
			// together as a location only when a real company precedes it.
			return strings.TrimSpace(parts[0]), second
		}
		return strings.TrimSpace(parts[0]), second
	}
	return s, ""
}

// lookBehindTitle walks up to five earlier non-empty, non-bullet lines for a
// plausible job title: short, no pipe, no year.
func lookBehindTitle(lines []string, from int) string {
	checked := 0
	for j := from - 1; j >= 0 && checked < 5; j-- {
		line := strings.TrimSpace(lines[j])
		if line == "" || segmenting.IsBulletLine(line) {
			continue
		}
		checked++
		if strings.Contains(line, "|") || yearDigits.MatchString(line) {
			continue
		}
		if len(line) < 80 {
			return line
		}
	}
	return ""
}

// lookBehindTitleCompany reads the two non-empty, non-bullet lines above a
// bare date range as title then company.
func lookBehindTitleCompany(lines []string, from int) (title, company string) {
	var found []string
	for j := from - 1; j >= 0 && len(found) < 2; j-- {
		line := strings.TrimSpace(lines[j])
		if line == "" || segmenting.IsBulletLine(line) {
			continue
		}
		found = append(found, line)
	}
	switch len(found) {
	case 2:
		title, company = found[1], found[0]
	case 1:
		title = found[0]
	}
	if yearDigits.MatchString(title) {
		return "", ""
	}
	return title, company
}
