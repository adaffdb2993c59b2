package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

type stubClient struct {
	response string
	err      error
}

func (s *stubClient) Generate(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func (s *stubClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func (s *stubClient) Close() error { return nil }

func sampleAnalysis() *types.MatchAnalysis {
	return &types.MatchAnalysis{
		KeywordMatch: types.KeywordMatch{
			Percentage:    50,
			MissingSkills: []string{"Terraform", "Kafka"},
			MatchedCount:  2,
			TotalRequired: 4,
		},
		OverallScore: 50,
		Suggestions:  []string{"Add Terraform to your skills section if you have used it."},
	}
}

func TestAdvisorUsesModelAdvice(t *testing.T) {
	client := &stubClient{response: `["Quantify the pipeline throughput numbers.", "Mention Kafka exposure from the streaming project."]`}
	advisor := NewAdvisor(client)

	advice := advisor.Suggestions(context.Background(), &types.Resume{}, &types.JobDescription{JobTitle: "Data Engineer"}, sampleAnalysis())
	assert.Equal(t, []string{
		"Quantify the pipeline throughput numbers.",
		"Mention Kafka exposure from the streaming project.",
	}, advice)
}

func TestAdvisorFallsBackOnError(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	advisor := NewAdvisor(client)

	analysis := sampleAnalysis()
	advice := advisor.Suggestions(context.Background(), nil, nil, analysis)
	assert.Equal(t, analysis.Suggestions, advice)
}

func TestAdvisorFallsBackOnBadJSON(t *testing.T) {
	client := &stubClient{response: "here are some thoughts..."}
	advisor := NewAdvisor(client)

	analysis := sampleAnalysis()
	advice := advisor.Suggestions(context.Background(), nil, nil, analysis)
	assert.Equal(t, analysis.Suggestions, advice)
}

func TestAdvisorNilClient(t *testing.T) {
	advisor := NewAdvisor(nil)
	analysis := sampleAnalysis()
	advice := advisor.Suggestions(context.Background(), nil, nil, analysis)
	assert.Equal(t, analysis.Suggestions, advice)
}

func TestAdvisorCapsAndCleansAdvice(t *testing.T) {
	client := &stubClient{response: `["a", "", "b", "c", "d", "e", "f", "g", "h", "i", "j"]`}
	advisor := NewAdvisor(client)

	advice := advisor.Suggestions(context.Background(), nil, nil, sampleAnalysis())
	assert.Len(t, advice, maxAdviceItems)
	assert.NotContains(t, advice, "")
}
