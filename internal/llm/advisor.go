package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const maxAdviceItems = 8

// Advisor turns a match analysis into tailored improvement advice. It wraps
// a Client but never fails hard: when the model is unavailable or returns
// garbage, the heuristic suggestions already present in the analysis are
// returned unchanged.
type Advisor struct {
	client Client
}

// NewAdvisor creates an advisor. A nil client is allowed and yields pure
// heuristic behavior.
func NewAdvisor(client Client) *Advisor {
	return &Advisor{client: client}
}

// Suggestions returns improvement advice for a resume/job pair. Model-backed
// advice when the client responds with usable JSON, the analysis's own
// suggestions otherwise.
func (a *Advisor) Suggestions(ctx context.Context, resume *types.Resume, jd *types.JobDescription, analysis *types.MatchAnalysis) []string {
	if a == nil || a.client == nil || analysis == nil {
		return fallbackSuggestions(analysis)
	}

	prompt := buildAdvicePrompt(resume, jd, analysis)
	raw, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return fallbackSuggestions(analysis)
	}

	var advice []string
	if err := json.Unmarshal([]byte(raw), &advice); err != nil {
		return fallbackSuggestions(analysis)
	}

	cleaned := make([]string, 0, len(advice))
	for _, item := range advice {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		cleaned = append(cleaned, item)
		if len(cleaned) == maxAdviceItems {
			break
		}
	}
	if len(cleaned) == 0 {
		return fallbackSuggestions(analysis)
	}
	return cleaned
}

func fallbackSuggestions(analysis *types.MatchAnalysis) []string {
	if analysis == nil {
		return nil
	}
	return analysis.Suggestions
}

func buildAdvicePrompt(resume *types.Resume, jd *types.JobDescription, analysis *types.MatchAnalysis) string {
	var sb strings.Builder

	sb.WriteString("You are reviewing how well a resume matches a job posting.\n")
	if jd != nil {
		fmt.Fprintf(&sb, "Job title: %s\n", jd.JobTitle)
		if len(jd.RequiredSkills) > 0 {
			fmt.Fprintf(&sb, "Required skills: %s\n", strings.Join(jd.RequiredSkills, ", "))
		}
	}
	if resume != nil && len(resume.Skills) > 0 {
		fmt.Fprintf(&sb, "Resume skills: %s\n", strings.Join(resume.Skills, ", "))
	}

	fmt.Fprintf(&sb, "Keyword match: %.0f%%. Overall score: %.0f%%.\n",
		analysis.KeywordMatch.Percentage, analysis.OverallScore)
	if len(analysis.KeywordMatch.MissingSkills) > 0 {
		fmt.Fprintf(&sb, "Missing skills: %s\n", strings.Join(analysis.KeywordMatch.MissingSkills, ", "))
	}

	fmt.Fprintf(&sb,
		"Return a JSON array of at most %d short, concrete suggestions for improving this resume for this job. "+
			"Only suggest surfacing experience the candidate plausibly has. Respond with the JSON array only.",
		maxAdviceItems)

	return sb.String()
}
