package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveAnalysis stores a match analysis for a resume/job pair and returns its ID
func (db *DB) SaveAnalysis(ctx context.Context, resumeID, jobID uuid.UUID, analysis *types.MatchAnalysis) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(analysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_analyses (resume_id, job_id, overall_score, analysis)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		resumeID, jobID, analysis.OverallScore, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored match analysis by ID. Returns nil when the
// ID does not exist.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.MatchAnalysis, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT analysis FROM match_analyses WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var analysis types.MatchAnalysis
	if err := json.Unmarshal(content, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis %s: %w", id, err)
	}
	return &analysis, nil
}

// AnalysisFilters holds optional filters for listing analyses
type AnalysisFilters struct {
	ResumeID uuid.UUID
	JobID    uuid.UUID
	MinScore float64
	Limit    int
}

// ListAnalyses retrieves analysis records matching the filters, best score first
func (db *DB) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]Analysis, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, resume_id, job_id, overall_score, created_at
		FROM match_analyses WHERE overall_score >= $1`
	args := []any{filters.MinScore}
	argNum := 2

	if filters.ResumeID != uuid.Nil {
		query += fmt.Sprintf(" AND resume_id = $%d", argNum)
		args = append(args, filters.ResumeID)
		argNum++
	}
	if filters.JobID != uuid.Nil {
		query += fmt.Sprintf(" AND job_id = $%d", argNum)
		args = append(args, filters.JobID)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY overall_score DESC, created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []Analysis
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.ResumeID, &a.JobID, &a.OverallScore, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, nil
}
