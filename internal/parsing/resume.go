package parsing

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/extracting"
	"github.com/jonathan/resume-matcher/internal/segmenting"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ResumeParser turns plain resume text into a structured Resume.
type ResumeParser struct {
	segmenter *segmenting.Segmenter
}

// NewResumeParser returns a parser with the default resume segmenter.
func NewResumeParser() *ResumeParser {
	return &ResumeParser{segmenter: segmenting.NewResumeSegmenter()}
}

// Parse segments the text and runs every extractor over its section. Sections
// absent from the document leave their fields zero-valued; only empty input
// fails.
func (p *ResumeParser) Parse(text string) (*types.Resume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Document: "resume", Message: "empty input text"}
	}

	sections := p.segmenter.Segment(text)

	resume := &types.Resume{
		Contact:        extracting.ExtractContact(sections[segmenting.SectionContact], text),
		Summary:        strings.TrimSpace(sections[segmenting.SectionSummary]),
		Experience:     extracting.ExtractExperience(sections[segmenting.SectionExperience]),
		Education:      extracting.ExtractEducation(sections[segmenting.SectionEducation]),
		Skills:         extracting.ExtractSkills(sections[segmenting.SectionSkills]),
		GenAISkills:    extracting.ExtractGenAISkills(sections[segmenting.SectionGenAISkills], text),
		Projects:       extracting.ExtractProjects(sections[segmenting.SectionProjects]),
		Certifications: extracting.ExtractCertifications(sections[segmenting.SectionCertifications]),
		RawText:        text,
	}

	return resume, nil
}
