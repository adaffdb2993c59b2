// Package segmenting splits raw document text into labeled sections using
// header-pattern heuristics.
package segmenting

import (
	"regexp"
	"strings"
)

// Section identifies a labeled block of document text.
type Section string

// Resume sections.
const (
	SectionContact        Section = "contact"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionGenAISkills    Section = "genai_skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
)

// Job description sections.
const (
	SectionOverview         Section = "overview"
	SectionResponsibilities Section = "responsibilities"
	SectionRequirements     Section = "requirements"
	SectionPreferred        Section = "preferred"
	SectionBenefits         Section = "benefits"
	SectionAboutCompany     Section = "about_company"
)

// maxHeaderLength is the longest line still considered a potential header.
// Longer lines are prose, not headers.
const maxHeaderLength = 50

// bulletMarkers are the characters that open a bulleted line.
const bulletMarkers = "•-*▪●○◦"

var bulletPrefix = regexp.MustCompile(`^[•\-*▪●○◦]\s*`)

// Vocabulary maps each section to its known header synonyms (lowercase).
type Vocabulary struct {
	// order preserves deterministic matching priority between sections
	order    []Section
	headers  map[Section][]string
	flexible bool // allow prefix matching for verbose headers ("Required Skills:")
}

// ResumeVocabulary returns the header synonyms for resume documents.
func ResumeVocabulary() *Vocabulary {
	return &Vocabulary{
		order: []Section{
			SectionContact, SectionSummary, SectionExperience, SectionEducation,
			SectionSkills, SectionGenAISkills, SectionProjects, SectionCertifications,
		},
		headers: map[Section][]string{
			SectionContact:        {"contact", "personal information", "contact information"},
			SectionSummary:        {"summary", "professional summary", "objective", "profile", "about"},
			SectionExperience:     {"experience", "work experience", "professional experience", "employment", "work history"},
			SectionEducation:      {"education", "academic background", "qualifications"},
			SectionSkills:         {"skills", "technical skills", "core competencies", "expertise", "technologies", "core technical skills"},
			SectionGenAISkills:    {"gen ai skill set", "genai skills", "ai skills", "ml skills", "ai/ml skills", "genai & machine learning skills"},
			SectionProjects:       {"projects", "personal projects", "key projects", "project highlights"},
			SectionCertifications: {"certifications", "certificates", "licenses"},
		},
	}
}

// JobVocabulary returns the header synonyms for job description documents.
func JobVocabulary() *Vocabulary {
	return &Vocabulary{
		order: []Section{
			SectionOverview, SectionResponsibilities, SectionRequirements,
			SectionPreferred, SectionBenefits, SectionAboutCompany,
		},
		headers: map[Section][]string{
			SectionOverview:         {"overview", "about", "description", "summary", "about the role", "about the position", "job description", "role description"},
			SectionResponsibilities: {"responsibilities", "duties", "what you will do", "what you'll do", "key responsibilities", "your responsibilities", "job responsibilities", "key duties", "main responsibilities"},
			SectionRequirements:     {"requirements", "qualifications", "what we're looking for", "what we are looking for", "required qualifications", "minimum qualifications", "required skills", "must have", "essential skills", "mandatory skills", "required experience"},
			SectionPreferred:        {"preferred", "nice to have", "bonus", "preferred qualifications", "plus", "desired", "preferred skills", "good to have", "additional skills"},
			SectionBenefits:         {"benefits", "what we offer", "perks", "compensation", "salary", "package"},
			SectionAboutCompany:     {"about us", "about the company", "company overview", "who we are", "company description"},
		},
		flexible: true,
	}
}

// Segmenter scans document lines and assigns them to labeled sections.
type Segmenter struct {
	vocab *Vocabulary

	// preamble collects lines seen before the first detected header.
	// Resume parsing discards them (contact is re-scanned from raw text);
	// JD parsing keeps them as the overview.
	preamble Section
}

// NewResumeSegmenter returns a segmenter using the resume header vocabulary.
// Text before the first header is discarded.
func NewResumeSegmenter() *Segmenter {
	return &Segmenter{vocab: ResumeVocabulary()}
}

// NewJobSegmenter returns a segmenter using the job description header
// vocabulary. Text before the first header collects into the overview section.
func NewJobSegmenter() *Segmenter {
	return &Segmenter{vocab: JobVocabulary(), preamble: SectionOverview}
}

// Segment splits text into sections. It never fails: text under an unknown
// header stays with the previously open section, and a document with no
// recognizable headers yields at most the preamble section.
func (s *Segmenter) Segment(text string) map[Section]string {
	sections := make(map[Section]string)

	var current Section
	var content []string

	flush := func() {
		if current != "" && len(content) > 0 {
			block := strings.Join(content, "\n")
			if existing, ok := sections[current]; ok {
				block = existing + "\n" + block
			}
			sections[current] = block
		}
		content = nil
	}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		if detected, ok := s.classifyHeader(stripped); ok {
			flush()
			current = detected
			continue
		}

		switch {
		case current != "":
			content = append(content, line)
		case s.preamble != "" && stripped != "":
			if existing, ok := sections[s.preamble]; ok {
				sections[s.preamble] = existing + "\n" + line
			} else {
				sections[s.preamble] = line
			}
		}
	}
	flush()

	return sections
}

// classifyHeader reports whether a stripped line is a section header and for
// which section. Bulleted lines, long lines, and lines ending with a period
// are never headers; "Projects." is a sentence continuation, not a header.
func (s *Segmenter) classifyHeader(line string) (Section, bool) {
	if line == "" || IsBulletLine(line) {
		return "", false
	}
	if len(line) >= maxHeaderLength || strings.HasSuffix(line, ".") {
		return "", false
	}

	// Exact synonyms win across every section before any flexible matching,
	// so "About Us" reaches about_company instead of prefix-matching the
	// overview synonym "about".
	lower := strings.ToLower(line)
	for _, section := range s.vocab.order {
		for _, header := range s.vocab.headers[section] {
			if lower == header || lower == header+":" {
				return section, true
			}
		}
	}

	if s.vocab.flexible {
		for _, section := range s.vocab.order {
			for _, header := range s.vocab.headers[section] {
				if matchesFlexible(lower, header) {
					return section, true
				}
			}
		}
		if section, ok := classifyPatternHeader(line); ok {
			return section, ok
		}
	}

	return "", false
}

// matchesFlexible accepts verbose header variants such as
// "Responsibilities:" or "Key Responsibilities of the role" that start with
// or closely wrap a known header.
func matchesFlexible(lower, header string) bool {
	if strings.HasPrefix(lower, header) {
		return true
	}
	return strings.Contains(lower, header) && len(lower) < len(header)+10
}

var (
	responsibilitiesHeader = regexp.MustCompile(`(?i)^(Job\s+)?Responsibilities?[\s:]*$`)
	requiredHeader         = regexp.MustCompile(`(?i)^Required\s+(Skills?|Qualifications?)[\s:]*$`)
	preferredHeader        = regexp.MustCompile(`(?i)^Preferred\s+(Skills?|Qualifications?)[\s:]*$`)
)

// classifyPatternHeader catches common compound JD headers not in the
// synonym lists.
func classifyPatternHeader(line string) (Section, bool) {
	switch {
	case responsibilitiesHeader.MatchString(line):
		return SectionResponsibilities, true
	case requiredHeader.MatchString(line):
		return SectionRequirements, true
	case preferredHeader.MatchString(line):
		return SectionPreferred, true
	}
	return "", false
}

// IsBulletLine reports whether a line starts with a bullet marker.
func IsBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return strings.ContainsRune(bulletMarkers, []rune(trimmed)[0])
}

// StripBullet removes a leading bullet marker and following whitespace.
func StripBullet(line string) string {
	return bulletPrefix.ReplaceAllString(strings.TrimSpace(line), "")
}
