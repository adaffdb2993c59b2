package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

const sampleResumeText = `Jordan Reyes
jordan.reyes@example.com | (555) 867-5309

Summary
Data engineer with six years of pipeline experience.

Experience
Acme Analytics - Senior Data Engineer | June 2020 - Present
- Built streaming ingestion on Kafka and Spark
- Migrated batch ETL to Airflow on AWS

Education
BS in Computer Science, State University

Skills
Python, SQL, Airflow, Spark, AWS
`

const sampleJobText = `Data Engineer

About the Role
We build data platforms for retail analytics.

Responsibilities
- Design and operate batch and streaming pipelines
- Own data quality across the warehouse

Requirements
- 5+ years of experience with Python and SQL
- Experience with Airflow and Spark
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetFlags() {
	configPath = ""
	resumeInputFile, resumeOutputFile, resumeSave = "", "", false
	jobInputFile, jobURL, jobOutputFile, jobSave = "", "", "", false
	matchResumeFile, matchJobFile, matchJobURL, matchOutputFile = "", "", "", ""
	matchNoSemantic, matchAdvise, matchSave = false, false, false
	rankResumeFile, rankJobsFile, rankOutputFile = "", "", ""
	rankURLs, rankFromDB = nil, false
}

func setupEnv(t *testing.T) {
	t.Helper()
	resetFlags()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("MATCHER_EMBEDDING_URL", "")
}

func TestParseResumeCommand(t *testing.T) {
	setupEnv(t)
	resumeInputFile = writeTempFile(t, "resume.txt", sampleResumeText)
	resumeOutputFile = filepath.Join(t.TempDir(), "resume.json")

	require.NoError(t, runParseResume(nil, nil))

	data, err := os.ReadFile(resumeOutputFile)
	require.NoError(t, err)

	var resume types.Resume
	require.NoError(t, json.Unmarshal(data, &resume))
	assert.Equal(t, "Jordan Reyes", resume.Contact.FullName)
	assert.Contains(t, resume.Skills, "Python")
	assert.Equal(t, resumeInputFile, resume.SourceFile)
}

func TestParseJobCommandFromFile(t *testing.T) {
	setupEnv(t)
	jobInputFile = writeTempFile(t, "job.txt", sampleJobText)
	jobOutputFile = filepath.Join(t.TempDir(), "job.json")

	require.NoError(t, runParseJob(nil, nil))

	data, err := os.ReadFile(jobOutputFile)
	require.NoError(t, err)

	var jd types.JobDescription
	require.NoError(t, json.Unmarshal(data, &jd))
	assert.Equal(t, "Data Engineer", jd.JobTitle)
	assert.NotEmpty(t, jd.RequiredSkills)
}

func TestParseJobCommandInputValidation(t *testing.T) {
	setupEnv(t)

	err := runParseJob(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	jobInputFile = "a.txt"
	jobURL = "https://example.com/job"
	err = runParseJob(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestMatchCommandKeywordOnly(t *testing.T) {
	setupEnv(t)
	matchResumeFile = writeTempFile(t, "resume.txt", sampleResumeText)
	matchJobFile = writeTempFile(t, "job.txt", sampleJobText)
	matchOutputFile = filepath.Join(t.TempDir(), "analysis.json")
	matchNoSemantic = true

	require.NoError(t, runMatch(nil, nil))

	data, err := os.ReadFile(matchOutputFile)
	require.NoError(t, err)

	var analysis types.MatchAnalysis
	require.NoError(t, json.Unmarshal(data, &analysis))
	assert.False(t, analysis.SemanticMatch.Available)
	assert.Greater(t, analysis.KeywordMatch.Percentage, 0.0)
	assert.Equal(t, analysis.KeywordMatch.Percentage, analysis.OverallScore)
}

func TestRankJobsCommandFromFile(t *testing.T) {
	setupEnv(t)
	rankResumeFile = writeTempFile(t, "resume.txt", sampleResumeText)

	jobs := []types.JobPosting{
		{Title: "Data Engineer", Company: "Acme", Description: "Python SQL Airflow Spark pipelines"},
		{Title: "Florist", Company: "Petals", Description: "Arrange flowers for weddings"},
	}
	jobsJSON, err := json.Marshal(jobs)
	require.NoError(t, err)
	rankJobsFile = writeTempFile(t, "jobs.json", string(jobsJSON))
	rankOutputFile = filepath.Join(t.TempDir(), "ranked.json")

	require.NoError(t, runRankJobs(nil, nil))

	data, err := os.ReadFile(rankOutputFile)
	require.NoError(t, err)

	var matches []types.JobMatch
	require.NoError(t, json.Unmarshal(data, &matches))
	for _, match := range matches {
		assert.Greater(t, match.SimilarityScore, 0.0)
	}
}

func TestRankJobsSourceValidation(t *testing.T) {
	setupEnv(t)
	rankResumeFile = "resume.txt"

	err := runRankJobs(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")

	rankJobsFile = "jobs.json"
	rankFromDB = true
	err = runRankJobs(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}
