package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/jonathan/resume-matcher/internal/types"
)

const maxKeywords = 50

var (
	yearsOfExperience = regexp.MustCompile(`(?i)(\d+\+?)\s*years?\s+of\s+experience`)
	yearsMinimum      = regexp.MustCompile(`(?i)(?:minimum|at\s+least)\s+(\d+)\s*years?`)
	yearsRange        = regexp.MustCompile(`(?i)(\d+)\s*[-–]\s*(\d+)\s*years?`)

	educationReq = regexp.MustCompile(`(?i).{0,50}\b(?:Bachelor(?:'s)?|Master(?:'s)?|Ph\.?D\.?|B\.?S\.?|M\.?S\.?|degree)\b.{0,50}`)

	companyLabeled  = regexp.MustCompile(`(?i)\b(?:company|employer):\s*([A-Z][A-Za-z0-9 .&,-]{1,50})`)
	companyAt       = regexp.MustCompile(`(?i)\bat\s+([A-Z][A-Za-z0-9.&-]+(?:\s+[A-Z][A-Za-z0-9.&-]+){0,3})\b`)
	locationLabeled = regexp.MustCompile(`(?i)\blocation:\s*([A-Za-z .]+(?:,\s*[A-Za-z .]+)?)`)
	locationInline  = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)?,\s*[A-Z]{2})\b`)
	salaryPattern   = regexp.MustCompile(`\$\s?\d{2,3}(?:,\d{3})?(?:k|K)?\s*(?:-|–|to)\s*\$?\s?\d{2,3}(?:,\d{3})?(?:k|K)?`)

	// "experience with Spark, Kafka, and Airflow" style phrase captures
	phraseSkills = regexp.MustCompile(`(?i)(?:proficiency|experience|expertise|knowledge)\s+(?:in|with|of)\s+([^.;\n]+)`)
	strongSkills = regexp.MustCompile(`(?i)(?:strong\s+knowledge\s+of|familiarity\s+with)\s+([^.;\n]+)`)
	parenSkills  = regexp.MustCompile(`(?i)\((?:including|e\.g\.?,?|such\s+as)\s+([^)]+)\)`)

	titleCaseWord  = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)
	phraseSplitter = regexp.MustCompile(`,|\band\b|\bor\b|/`)
)

// JobDescriptionParser turns plain job posting text into a structured
// JobDescription.
type JobDescriptionParser struct {
	segmenter *segmenting.Segmenter
}

// NewJobDescriptionParser returns a parser with the default job segmenter.
func NewJobDescriptionParser() *JobDescriptionParser {
	return &JobDescriptionParser{segmenter: segmenting.NewJobSegmenter()}
}

// Parse segments the posting and extracts the title, skills, requirements,
// and metadata fields. Only empty input fails; any field the heuristics miss
// stays zero-valued.
func (p *JobDescriptionParser) Parse(text string) (*types.JobDescription, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Document: "job description", Message: "empty input text"}
	}

	sections := p.segmenter.Segment(text)

	required := MineSkills(sections[segmenting.SectionRequirements])
	preferred := MineSkills(sections[segmenting.SectionPreferred])
	if len(required) == 0 {
		// Postings without a requirements header still name their stack
		// somewhere in the body.
		required = MineSkills(text)
	}

	jd := &types.JobDescription{
		JobTitle:          extractJobTitle(text),
		Company:           extractCompany(text),
		Location:          extractJobLocation(text),
		JobType:           extractJobType(text),
		SalaryRange:       salaryPattern.FindString(text),
		Overview:          strings.TrimSpace(sections[segmenting.SectionOverview]),
		Responsibilities:  listItems(sections[segmenting.SectionResponsibilities]),
		RequiredSkills:    required,
		PreferredSkills:   preferred,
		YearsOfExperience: extractYears(text),
		RawText:           text,
	}

	jd.Requirements = append(
		buildRequirements(sections[segmenting.SectionRequirements], types.CategoryRequired),
		buildRequirements(sections[segmenting.SectionPreferred], types.CategoryPreferred)...,
	)
	jd.Technologies = dedupeNormalized(append(append([]string{}, required...), preferred...))
	jd.Keywords = extractKeywords(text, jd.Technologies)

	if m := educationReq.FindString(text); m != "" {
		jd.EducationRequirement = strings.TrimSpace(m)
	}

	return jd, nil
}

// extractJobTitle scans the first lines for a role-word line, then falls back
// to domain heuristics over the whole text, then to the first substantial
// line.
func extractJobTitle(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "location") || strings.HasPrefix(lower, "about") {
			continue
		}
		if len(line) >= 100 {
			continue
		}
		for _, word := range roleWords {
			if strings.Contains(lower, word) {
				return line
			}
		}
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "senior data engineer"):
		return "Senior Data Engineer"
	case strings.Contains(lower, "data engineer"),
		strings.Contains(lower, "data pipeline") && strings.Contains(lower, "etl"):
		return "Data Engineer"
	case strings.Contains(lower, "software engineer"):
		return "Software Engineer"
	case strings.Contains(lower, "data scientist"), strings.Contains(lower, "machine learning"):
		return "Data Scientist"
	case strings.Contains(lower, "analyst"):
		return "Data Analyst"
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 5 && len(line) < 100 {
			return line
		}
	}
	return "Unknown Position"
}

// MineSkills finds known skills in free text: the common vocabulary on word
// boundaries plus the objects of proficiency and example phrases.
func MineSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var found []string
	for _, skill := range commonSkills {
		if matchWholeWord(text, skill) {
			found = append(found, skill)
		}
	}

	for _, pattern := range []*regexp.Regexp{phraseSkills, strongSkills, parenSkills} {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			found = append(found, splitSkillPhrase(m[1])...)
		}
	}

	return dedupeNormalized(found)
}

// splitSkillPhrase breaks "Spark, Kafka, and Airflow" into candidates, keeping
// only short noun-ish fragments.
func splitSkillPhrase(phrase string) []string {
	phrase = strings.TrimSpace(phrase)
	var out []string
	for _, part := range phraseSplitter.Split(phrase, -1) {
		part = strings.Trim(part, " .()")
		if len(part) < 2 || len(part) > 40 || len(strings.Fields(part)) > 4 {
			continue
		}
		out = append(out, part)
	}
	return out
}

func matchWholeWord(text, skill string) bool {
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	if err != nil {
		return false
	}
	return pattern.MatchString(text)
}

// listItems returns the bulleted lines of a section, bullets stripped. A
// section written as plain sentences contributes each substantial line.
func listItems(sectionText string) []string {
	var items []string
	for _, raw := range strings.Split(sectionText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if segmenting.IsBulletLine(line) {
			if text := segmenting.StripBullet(line); text != "" {
				items = append(items, text)
			}
			continue
		}
		if len(line) > 20 {
			items = append(items, line)
		}
	}
	return items
}

// buildRequirements turns each list item of a section into a structured
// requirement carrying the skills mentioned in it.
func buildRequirements(sectionText, category string) []types.JobRequirement {
	items := listItems(sectionText)
	reqs := make([]types.JobRequirement, 0, len(items))
	for _, item := range items {
		reqs = append(reqs, types.JobRequirement{
			Category:    category,
			Description: item,
			Skills:      MineSkills(item),
		})
	}
	return reqs
}

// extractKeywords unions the mined skills, matched action words, and the most
// frequent capitalized words, capped at maxKeywords.
func extractKeywords(text string, skills []string) []string {
	keywords := append([]string{}, skills...)

	lower := strings.ToLower(text)
	for _, word := range actionWords {
		if strings.Contains(lower, word) {
			keywords = append(keywords, word)
		}
	}

	counts := make(map[string]int)
	for _, w := range titleCaseWord.FindAllString(text, -1) {
		counts[w]++
	}
	frequent := make([]string, 0, len(counts))
	for w, n := range counts {
		if n >= 2 {
			frequent = append(frequent, w)
		}
	}
	sort.Slice(frequent, func(i, j int) bool {
		if counts[frequent[i]] != counts[frequent[j]] {
			return counts[frequent[i]] > counts[frequent[j]]
		}
		return frequent[i] < frequent[j]
	})
	keywords = append(keywords, frequent...)

	keywords = dedupeNormalized(keywords)
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

func extractYears(text string) string {
	if m := yearsOfExperience.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := yearsMinimum.FindStringSubmatch(text); m != nil {
		return m[1] + "+"
	}
	if m := yearsRange.FindStringSubmatch(text); m != nil {
		return m[1] + "-" + m[2]
	}
	return ""
}

func extractJobType(text string) string {
	lower := strings.ToLower(text)
	for _, jt := range jobTypes {
		if strings.Contains(lower, jt) {
			return jt
		}
	}
	return ""
}

func extractCompany(text string) string {
	if m := companyLabeled.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := companyAt.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractJobLocation(text string) string {
	if m := locationLabeled.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := locationInline.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// dedupeNormalized removes duplicates by lowercase form, preserving first
// occurrence order.
func dedupeNormalized(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
