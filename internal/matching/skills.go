// Package matching scores a resume against a job description. The keyword
// stage resolves skill names through normalization, abbreviation, and synonym
// tables; the semantic stage compares embeddings of resume and job text. Both
// combine into a single weighted match analysis.
package matching

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// Skill match sources, in lookup order.
	sourceSkillsSection = "skills_section"
	sourceExperience    = "experience"

	// substringMatchMinLength guards substring equality against short tokens
	// like "r" or "go" swallowing unrelated skills.
	substringMatchMinLength = 3
)

var (
	normalizeStrip    = regexp.MustCompile(`[^\w\s\-+#/.]`)
	normalizeCollapse = regexp.MustCompile(`\s+`)
)

// abbreviations maps short forms to their expansions. The reverse direction
// is derived at construction.
var abbreviations = map[string]string{
	"adf":    "azure data factory",
	"aws":    "amazon web services",
	"gcp":    "google cloud platform",
	"ci/cd":  "continuous integration continuous deployment",
	"ml":     "machine learning",
	"ai":     "artificial intelligence",
	"nlp":    "natural language processing",
	"etl":    "extract transform load",
	"elt":    "extract load transform",
	"api":    "application programming interface",
	"rest":   "restful",
	"sql":    "structured query language",
	"nosql":  "non-relational database",
	"db":     "database",
	"k8s":    "kubernetes",
	"bi":     "business intelligence",
	"iot":    "internet of things",
	"devops": "development operations",
	"saas":   "software as a service",
	"paas":   "platform as a service",
	"iaas":   "infrastructure as a service",
}

// synonymGroups are clusters of normalized skill names treated as the same
// skill. Every member resolves to every other member.
var synonymGroups = [][]string{
	{"python", "python3", "py"},
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"docker", "containerization", "containers"},
	{"kubernetes", "k8s", "container orchestration"},
	{"databricks", "databricks platform"},
	{"spark", "apache spark", "pyspark"},
	{"kafka", "apache kafka"},
	{"airflow", "apache airflow"},
	{"postgresql", "postgres", "psql"},
	{"mongodb", "mongo"},
	{"github", "git hub"},
	{"gitlab", "git lab"},
	{"azure", "microsoft azure"},
	{"aws", "amazon web services"},
	{"data engineering", "data engineer"},
	{"data science", "data scientist"},
	{"machine learning", "ml"},
	{"data modeling", "data modelling"},
	{"data governance", "governance"},
	{"unity catalog", "unity catalogue"},
	{"delta lake", "deltalake"},
	{"data warehouse", "data warehousing", "dwh"},
	{"data lake", "datalake"},
	{"power bi", "powerbi"},
	{"tableau", "tableau desktop"},
}

// SkillMatcher resolves skill name variations and computes keyword matches
// between a resume and a job's required skills.
type SkillMatcher struct {
	expand   map[string]string   // abbreviation -> expansion
	contract map[string]string   // expansion -> abbreviation
	synonyms map[string][]string // member -> full group
}

// NewSkillMatcher builds a matcher with the default abbreviation and synonym
// tables.
func NewSkillMatcher() *SkillMatcher {
	m := &SkillMatcher{
		expand:   abbreviations,
		contract: make(map[string]string, len(abbreviations)),
		synonyms: make(map[string][]string),
	}
	for short, long := range abbreviations {
		m.contract[long] = short
	}
	for _, group := range synonymGroups {
		for _, member := range group {
			m.synonyms[member] = group
		}
	}
	return m
}

// Normalize lowercases and trims a skill name, strips punctuation that never
// distinguishes skills, and collapses whitespace. Characters meaningful in
// skill names (-, +, #, /, .) survive so "c++", "c#", and "ci/cd" stay
// intact.
func (m *SkillMatcher) Normalize(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	s = normalizeStrip.ReplaceAllString(s, " ")
	s = normalizeCollapse.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Variations returns the set of normalized names equivalent to a skill: the
// normalized form itself, its abbreviation or expansion, and its synonym
// group.
func (m *SkillMatcher) Variations(skill string) map[string]struct{} {
	norm := m.Normalize(skill)
	set := map[string]struct{}{norm: {}}

	if long, ok := m.expand[norm]; ok {
		set[long] = struct{}{}
	}
	if short, ok := m.contract[norm]; ok {
		set[short] = struct{}{}
	}
	for _, member := range m.synonyms[norm] {
		set[member] = struct{}{}
	}
	return set
}

// SkillsEqual reports whether two skill names refer to the same skill, via
// shared variations or mutual substring containment of substantial names.
func (m *SkillMatcher) SkillsEqual(a, b string) bool {
	varsA := m.Variations(a)
	varsB := m.Variations(b)
	for v := range varsA {
		if _, ok := varsB[v]; ok {
			return true
		}
	}

	normA, normB := m.Normalize(a), m.Normalize(b)
	if len(normA) <= substringMatchMinLength || len(normB) <= substringMatchMinLength {
		return false
	}
	return strings.Contains(normA, normB) || strings.Contains(normB, normA)
}

// Match checks each required skill against the resume, looking first at the
// declared skills list and then for whole-word mentions in experience bullet
// text. The percentage is matched over required, 100-scaled, and zero when
// nothing is required.
func (m *SkillMatcher) Match(required []string, resume *types.Resume) types.KeywordMatch {
	result := types.KeywordMatch{TotalRequired: len(required)}
	if len(required) == 0 {
		return result
	}

	declared := append(append([]string{}, resume.Skills...), resume.GenAISkills...)
	experience := m.Normalize(resume.ExperienceText())

	for _, req := range required {
		if matchedAs, ok := m.matchDeclared(req, declared); ok {
			result.MatchedSkills = append(result.MatchedSkills, types.MatchedSkill{
				Required:  req,
				MatchedAs: matchedAs,
				Source:    sourceSkillsSection,
			})
			continue
		}
		if matchedAs, ok := m.matchExperience(req, experience); ok {
			result.MatchedSkills = append(result.MatchedSkills, types.MatchedSkill{
				Required:  req,
				MatchedAs: matchedAs,
				Source:    sourceExperience,
			})
			continue
		}
		result.MissingSkills = append(result.MissingSkills, req)
	}

	result.MatchedCount = len(result.MatchedSkills)
	result.Percentage = float64(result.MatchedCount) / float64(result.TotalRequired) * 100
	return result
}

func (m *SkillMatcher) matchDeclared(required string, declared []string) (string, bool) {
	for _, skill := range declared {
		if m.SkillsEqual(required, skill) {
			return skill, true
		}
	}
	return "", false
}

// matchExperience looks for any variation of the required skill as a whole
// word in normalized experience text.
func (m *SkillMatcher) matchExperience(required, experienceText string) (string, bool) {
	if experienceText == "" {
		return "", false
	}
	for variation := range m.Variations(required) {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(variation) + `\b`)
		if err != nil {
			continue
		}
		if pattern.MatchString(experienceText) {
			return variation, true
		}
	}
	return "", false
}

// Suggest proposes near-matches for skills the resume lacks: declared skills
// whose normalized form contains, or is contained by, a variation of the
// missing skill.
func (m *SkillMatcher) Suggest(missing []string, declared []string) []types.SkillSuggestion {
	var suggestions []types.SkillSuggestion

	for _, miss := range missing {
		variations := m.Variations(miss)

		var close []string
		for _, skill := range declared {
			norm := m.Normalize(skill)
			if len(norm) <= substringMatchMinLength {
				continue
			}
			for v := range variations {
				if len(v) <= substringMatchMinLength {
					continue
				}
				if strings.Contains(norm, v) || strings.Contains(v, norm) {
					close = append(close, skill)
					break
				}
			}
		}

		if len(close) == 0 {
			continue
		}
		suggestions = append(suggestions, types.SkillSuggestion{
			MissingSkill: miss,
			CloseMatches: close,
			Suggestion:   "consider surfacing " + strings.Join(close, ", ") + " as " + miss,
		})
	}

	return suggestions
}
