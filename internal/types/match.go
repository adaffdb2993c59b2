package types

// MatchedSkill records how one required skill was satisfied.
type MatchedSkill struct {
	Required  string `json:"required"`
	MatchedAs string `json:"matched_as"`
	Source    string `json:"source"` // skills_section or experience
}

// SkillSuggestion points at a declared skill that is close to, but not an
// exact match for, a missing required skill.
type SkillSuggestion struct {
	MissingSkill string   `json:"missing_skill"`
	CloseMatches []string `json:"close_matches"`
	Suggestion   string   `json:"suggestion"`
}

// KeywordMatch is the lexical component of a match analysis.
type KeywordMatch struct {
	Percentage    float64        `json:"percentage"` // 0-100
	MatchedSkills []MatchedSkill `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
	MatchedCount  int            `json:"matched_count"`
	TotalRequired int            `json:"total_required"`
}

// SemanticHit is a single requirement-to-resume-chunk match above threshold.
type SemanticHit struct {
	Requirement string  `json:"requirement"`
	MatchedText string  `json:"matched_text"`
	Similarity  float64 `json:"similarity"`
}

// SemanticMatch is the embedding-similarity component of a match analysis.
// Available is false when the embedding provider failed; the keyword component
// is still valid in that case and the semantic percentage reads as zero.
type SemanticMatch struct {
	Percentage float64       `json:"percentage"` // 0-100
	TopMatches []SemanticHit `json:"top_matches"`
	Available  bool          `json:"available"`
}

// MatchAnalysis combines the keyword and semantic components into an overall
// 0-100 score. It is JSON serializable and safe to cross a process boundary.
type MatchAnalysis struct {
	KeywordMatch  KeywordMatch      `json:"keyword_match"`
	SemanticMatch SemanticMatch     `json:"semantic_match"`
	OverallScore  float64           `json:"overall_score"` // 0-100
	Suggestions   []string          `json:"suggestions,omitempty"`
	SkillPointers []SkillSuggestion `json:"skill_suggestions,omitempty"`
}

// JobMatch pairs a job posting with its resume similarity score (0-100 scale).
type JobMatch struct {
	Job             JobPosting `json:"job"`
	SimilarityScore float64    `json:"similarity_score"`
}
