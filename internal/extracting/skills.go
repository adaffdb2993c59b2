package extracting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/segmenting"
)

const (
	minSkillLength = 3
	maxSkillLength = 79
	maxSkillWords  = 10
)

var (
	pageFooter    = regexp.MustCompile(`(?i)^Page\s+\d+\s+of\s+\d+$`)
	parenthetical = regexp.MustCompile(`\s*\([^)]*\)`)
)

// noisePhrases are boilerplate lines that show up inside skills sections of
// exported resumes and carry no skill content.
var noisePhrases = []string{
	"some skills have been grouped",
	"gen ai skill set",
	"technical skills",
	"skills:",
	"(learning)",
	"proficiency",
	"applications",
	"skill category",
	"skills & technologies",
	"beginner",
}

// skipTerms are fragments that survive splitting but are not skills.
var skipTerms = map[string]struct{}{
	"etc":      {},
	"and":      {},
	"or":       {},
	"the":      {},
	"is":       {},
	"with":     {},
	"using":    {},
	"various":  {},
	"other":    {},
	"others":   {},
	"tools":    {},
	"beginner": {},
	"learning": {},
}

// ExtractSkills parses the skills section into a deduplicated, order
// preserving list. Lines shaped "Category: a, b, c" contribute everything
// after the colon; bare lines split on commas, falling back to pipes.
func ExtractSkills(sectionText string) []string {
	var skills []string

	for _, raw := range strings.Split(sectionText, "\n") {
		line := segmenting.StripBullet(raw)
		if line == "" || isNoiseLine(line) {
			continue
		}

		if idx := strings.Index(line, ":"); idx > 0 && idx <= 50 {
			line = strings.TrimSpace(line[idx+1:])
			if line == "" {
				continue
			}
		}

		for _, candidate := range splitSkillLine(line) {
			if skill, ok := cleanSkill(candidate); ok {
				skills = append(skills, skill)
			}
		}
	}

	return dedupeSkills(skills)
}

func isNoiseLine(line string) bool {
	if pageFooter.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	if strings.HasPrefix(lower, "some skills have been grouped") {
		return true
	}
	for _, phrase := range noisePhrases {
		if lower == phrase {
			return true
		}
	}
	return false
}

// splitSkillLine splits on commas, falling back to pipes, but only at
// parenthesis depth zero so "Python (pandas, numpy)" stays one candidate.
func splitSkillLine(line string) []string {
	parts := splitOutsideParens(line, ',')
	if len(parts) > 1 {
		return parts
	}
	if parts = splitOutsideParens(line, '|'); len(parts) > 1 {
		return parts
	}
	return []string{line}
}

func splitOutsideParens(line string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, line[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, line[start:])
}

// cleanSkill strips parentheticals and validates the candidate's shape.
func cleanSkill(candidate string) (string, bool) {
	skill := strings.TrimSpace(parenthetical.ReplaceAllString(candidate, ""))
	skill = strings.Trim(skill, ".;")
	if len(skill) < minSkillLength || len(skill) > maxSkillLength {
		return "", false
	}
	if len(strings.Fields(skill)) > maxSkillWords {
		return "", false
	}
	if _, skip := skipTerms[strings.ToLower(skill)]; skip {
		return "", false
	}
	return skill, true
}

// dedupeSkills removes case-insensitive duplicates, keeping first occurrence
// order.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
