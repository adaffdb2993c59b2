package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCurrentEndDate(t *testing.T) {
	tests := []struct {
		name    string
		endDate string
		want    bool
	}{
		{"present", "Present", true},
		{"present lowercase", "present", true},
		{"present upper", "PRESENT", true},
		{"current", "Current", true},
		{"with whitespace", "  Present ", true},
		{"literal date", "Dec 2023", false},
		{"empty", "", false},
		{"contains but not equal", "Presently", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCurrentEndDate(tt.endDate))
		})
	}
}

func TestResumeExperienceText(t *testing.T) {
	resume := &Resume{
		Experience: []Experience{
			{Company: "Acme", Title: "Engineer", Bullets: []string{"built pipelines", "led docker migration"}},
			{Company: "Initech", Title: "Analyst", Bullets: []string{"reported metrics"}},
		},
	}

	text := resume.ExperienceText()
	assert.Equal(t, "built pipelines led docker migration reported metrics", text)
}

func TestResumeExperienceText_Empty(t *testing.T) {
	resume := &Resume{}
	assert.Empty(t, resume.ExperienceText())
}

func TestResumeJSONRoundTrip(t *testing.T) {
	resume := Resume{
		Contact: ContactInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			LinkedIn: "linkedin.com/in/janedoe",
		},
		Summary: "Data engineer with five years of cloud experience.",
		Experience: []Experience{
			{
				Company:   "Acme",
				Title:     "Data Engineer",
				StartDate: "Jan 2021",
				EndDate:   "Present",
				IsCurrent: true,
				Bullets:   []string{"Built ETL pipelines in Spark"},
			},
		},
		Skills:      []string{"Python", "AWS"},
		GenAISkills: []string{"RAG", "LangChain"},
	}

	data, err := json.Marshal(resume)
	require.NoError(t, err)

	var decoded Resume
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, resume.Contact.FullName, decoded.Contact.FullName)
	assert.Equal(t, resume.Experience[0].EndDate, decoded.Experience[0].EndDate)
	assert.True(t, decoded.Experience[0].IsCurrent)
	assert.Equal(t, resume.GenAISkills, decoded.GenAISkills)
}
