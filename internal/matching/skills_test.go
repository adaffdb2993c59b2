package matching

import (
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	m := NewSkillMatcher()

	tests := []struct {
		in, want string
	}{
		{"  Python  ", "python"},
		{"C++", "c++"},
		{"C#", "c#"},
		{"CI/CD", "ci/cd"},
		{"Node.js", "node.js"},
		{"Scikit-Learn", "scikit-learn"},
		{"SQL (advanced)", "sql advanced"},
		{"data,  engineering", "data engineering"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Normalize(tt.in))
		})
	}
}

func TestVariations(t *testing.T) {
	m := NewSkillMatcher()

	k8s := m.Variations("K8s")
	assert.Contains(t, k8s, "k8s")
	assert.Contains(t, k8s, "kubernetes")

	aws := m.Variations("AWS")
	assert.Contains(t, aws, "amazon web services")

	spark := m.Variations("PySpark")
	assert.Contains(t, spark, "spark")
	assert.Contains(t, spark, "apache spark")
}

func TestSkillsEqual(t *testing.T) {
	m := NewSkillMatcher()

	tests := []struct {
		a, b string
		want bool
	}{
		{"Python", "python3", true},
		{"K8s", "Kubernetes", true},
		{"AWS", "Amazon Web Services", true},
		{"Postgres", "PostgreSQL", true},
		{"Spark", "PySpark", true},
		{"Apache Spark", "Spark", true},
		{"Airflow", "Apache Airflow", true},
		{"Power BI", "PowerBI", true},
		{"Python", "Java", false},
		{"Go", "MongoDB", false},
		{"R", "Rust", false}, // short names never substring-match
	}
	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, m.SkillsEqual(tt.a, tt.b))
		})
	}
}

func TestMatchPrefersSkillsSection(t *testing.T) {
	m := NewSkillMatcher()
	resume := &types.Resume{
		Skills: []string{"Python", "Postgres"},
		Experience: []types.Experience{
			{Bullets: []string{"Deployed services to kubernetes clusters", "Tuned python ETL jobs"}},
		},
	}

	result := m.Match([]string{"Python", "PostgreSQL", "Kubernetes", "Terraform"}, resume)

	assert.Equal(t, 4, result.TotalRequired)
	assert.Equal(t, 3, result.MatchedCount)
	assert.InDelta(t, 75.0, result.Percentage, 0.001)
	assert.Equal(t, []string{"Terraform"}, result.MissingSkills)

	bySource := map[string]string{}
	for _, ms := range result.MatchedSkills {
		bySource[ms.Required] = ms.Source
	}
	assert.Equal(t, "skills_section", bySource["Python"])
	assert.Equal(t, "skills_section", bySource["PostgreSQL"])
	assert.Equal(t, "experience", bySource["Kubernetes"])
}

func TestMatchEmptyRequired(t *testing.T) {
	m := NewSkillMatcher()
	result := m.Match(nil, &types.Resume{Skills: []string{"Python"}})

	assert.Zero(t, result.Percentage)
	assert.Zero(t, result.MatchedCount)
	assert.Empty(t, result.MissingSkills)
}

func TestMatchNothingDeclared(t *testing.T) {
	m := NewSkillMatcher()
	result := m.Match([]string{"Python", "SQL"}, &types.Resume{})

	assert.Zero(t, result.MatchedCount)
	assert.InDelta(t, 0.0, result.Percentage, 0.001)
	assert.Len(t, result.MissingSkills, 2)
}

func TestSuggest(t *testing.T) {
	m := NewSkillMatcher()

	suggestions := m.Suggest(
		[]string{"Apache Spark", "Terraform"},
		[]string{"Spark Streaming", "Python"},
	)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Apache Spark", suggestions[0].MissingSkill)
	assert.Equal(t, []string{"Spark Streaming"}, suggestions[0].CloseMatches)
}

func TestNormalizeIdempotent(t *testing.T) {
	m := NewSkillMatcher()

	for _, skill := range []string{"Python", "CI/CD", "SQL (advanced)", "Node.js", "  Data,, Engineering  "} {
		once := m.Normalize(skill)
		assert.Equal(t, once, m.Normalize(once))
	}
}

func TestSkillsEqualSymmetric(t *testing.T) {
	m := NewSkillMatcher()

	pairs := [][2]string{
		{"Python", "python3"},
		{"K8s", "Kubernetes"},
		{"AWS", "Amazon Web Services"},
		{"Spark", "PySpark"},
		{"Python", "Java"},
		{"R", "Rust"},
	}
	for _, pair := range pairs {
		assert.Equal(t, m.SkillsEqual(pair[0], pair[1]), m.SkillsEqual(pair[1], pair[0]),
			"equality must be symmetric for %q and %q", pair[0], pair[1])
	}
}

func TestMatchPartitionsRequired(t *testing.T) {
	m := NewSkillMatcher()
	resume := &types.Resume{
		Skills: []string{"Python", "Postgres"},
		Experience: []types.Experience{
			{Bullets: []string{"Shipped dashboards in tableau"}},
		},
	}

	required := []string{"Python", "PostgreSQL", "Tableau", "Terraform", "Kafka"}
	result := m.Match(required, resume)

	seen := map[string]bool{}
	for _, ms := range result.MatchedSkills {
		assert.False(t, seen[ms.Required], "skill %q counted twice", ms.Required)
		seen[ms.Required] = true
	}
	for _, missing := range result.MissingSkills {
		assert.False(t, seen[missing], "skill %q both matched and missing", missing)
		seen[missing] = true
	}
	assert.Len(t, seen, len(required))
	assert.Equal(t, len(required), result.MatchedCount+len(result.MissingSkills))
}

func TestMatchAbbreviationAndExperienceFallback(t *testing.T) {
	m := NewSkillMatcher()
	resume := &types.Resume{
		Skills: []string{"python", "amazon web services"},
		Experience: []types.Experience{
			{Bullets: []string{"led docker migration"}},
		},
	}

	result := m.Match([]string{"Python", "AWS", "Docker"}, resume)

	assert.Equal(t, 3, result.MatchedCount)
	assert.InDelta(t, 100.0, result.Percentage, 0.001)
	assert.Empty(t, result.MissingSkills)

	bySource := map[string]string{}
	for _, ms := range result.MatchedSkills {
		bySource[ms.Required] = ms.Source
	}
	assert.Equal(t, "skills_section", bySource["Python"])
	assert.Equal(t, "skills_section", bySource["AWS"])
	assert.Equal(t, "experience", bySource["Docker"])
}

func TestGenAISkillsCountAsDeclared(t *testing.T) {
	m := NewSkillMatcher()
	resume := &types.Resume{GenAISkills: []string{"LangChain", "RAG"}}

	result := m.Match([]string{"LangChain"}, resume)
	assert.Equal(t, 1, result.MatchedCount)
}
