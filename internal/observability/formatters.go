// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.Contact.FullName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.Contact.Email))
	if resume.Contact.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", resume.Contact.Location))
	}
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%d bullets)\n", exp.Title, exp.Company, len(exp.Bullets)))
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Skills:         %d\n", len(resume.Skills)))
	sb.WriteString(fmt.Sprintf("GenAI skills:   %d\n", len(resume.GenAISkills)))
	sb.WriteString(fmt.Sprintf("Education:      %d\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Projects:       %d\n", len(resume.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications: %d", len(resume.Certifications)))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintJobDescription outputs a human-readable summary of a parsed job
// description.
func (p *Printer) PrintJobDescription(jd *types.JobDescription) {
	if jd == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", jd.JobTitle))
	if jd.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", jd.Company))
	}
	if jd.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", jd.Location))
	}
	if jd.YearsOfExperience != "" {
		sb.WriteString(fmt.Sprintf("Years:    %s\n", jd.YearsOfExperience))
	}
	sb.WriteString("\n")

	if len(jd.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(jd.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", jd.RequiredSkills[i]))
		}
		if len(jd.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.RequiredSkills)-maxItemsToShow))
		}
	}
	sb.WriteString(fmt.Sprintf("\nResponsibilities: %d\nRequirements:     %d", len(jd.Responsibilities), len(jd.Requirements)))

	p.printBox("PARSED JOB DESCRIPTION", sb.String())
}

// PrintMatchAnalysis outputs the scores and suggestions of a match analysis.
func (p *Printer) PrintMatchAnalysis(analysis *types.MatchAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score:  %.1f / 100\n", analysis.OverallScore))
	sb.WriteString(fmt.Sprintf("Keyword match:  %.1f%% (%d/%d skills)\n",
		analysis.KeywordMatch.Percentage, analysis.KeywordMatch.MatchedCount, analysis.KeywordMatch.TotalRequired))
	if analysis.SemanticMatch.Available {
		sb.WriteString(fmt.Sprintf("Semantic match: %.1f%%\n", analysis.SemanticMatch.Percentage))
	} else {
		sb.WriteString("Semantic match: unavailable (keyword-only score)\n")
	}

	if len(analysis.KeywordMatch.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(analysis.KeywordMatch.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.KeywordMatch.MissingSkills[i]))
		}
	}

	if len(analysis.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(analysis.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.Suggestions[i]))
		}
	}

	p.printBox("MATCH ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// PrintJobMatches outputs a ranked job list.
func (p *Printer) PrintJobMatches(matches []types.JobMatch) {
	var sb strings.Builder
	if len(matches) == 0 {
		sb.WriteString("No jobs scored above the match floor.")
	}
	for i, m := range matches {
		sb.WriteString(fmt.Sprintf("%2d. %5.1f  %s", i+1, m.SimilarityScore, m.Job.Title))
		if m.Job.Company != "" {
			sb.WriteString(" @ " + m.Job.Company)
		}
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RANKED JOBS", sb.String())
}
