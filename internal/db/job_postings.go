package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultPostingTTL is how long a cached posting stays fresh before ranking
// should re-fetch it.
const DefaultPostingTTL = 24 * time.Hour

// UpsertJobPosting creates or refreshes a cached posting keyed by URL
func (db *DB) UpsertJobPosting(ctx context.Context, posting *types.JobPosting, ttl time.Duration) (*JobPostingRecord, error) {
	if ttl <= 0 {
		ttl = DefaultPostingTTL
	}
	expiresAt := time.Now().Add(ttl)

	var rec JobPostingRecord
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (url, title, company, location, description, fetched_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, NOW(), $6)
		 ON CONFLICT (url) DO UPDATE SET
			title = $2, company = $3, location = $4, description = $5,
			fetched_at = NOW(), expires_at = $6, updated_at = NOW()
		 RETURNING id, url, title, company, location, description,
			fetched_at, expires_at, created_at, updated_at`,
		posting.URL, posting.Title, posting.Company, posting.Location, posting.Description, expiresAt,
	).Scan(&rec.ID, &rec.URL, &rec.Title, &rec.Company, &rec.Location, &rec.Description,
		&rec.FetchedAt, &rec.ExpiresAt, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert job posting: %w", err)
	}
	return &rec, nil
}

// GetFreshJobPosting retrieves a cached posting by URL only when it has not
// expired. Returns nil when absent or stale.
func (db *DB) GetFreshJobPosting(ctx context.Context, url string) (*JobPostingRecord, error) {
	var rec JobPostingRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, title, company, location, description,
			fetched_at, expires_at, created_at, updated_at
		 FROM job_postings WHERE url = $1`,
		url,
	).Scan(&rec.ID, &rec.URL, &rec.Title, &rec.Company, &rec.Location, &rec.Description,
		&rec.FetchedAt, &rec.ExpiresAt, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}

	if rec.IsExpired() {
		return nil, nil
	}
	return &rec, nil
}

// ListActivePostings retrieves all non-expired cached postings, newest first.
// The result feeds multi-job ranking.
func (db *DB) ListActivePostings(ctx context.Context, limit int) ([]types.JobPosting, error) {
	if limit == 0 {
		limit = 100
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, url, title, company, location, description
		 FROM job_postings
		 WHERE expires_at IS NOT NULL AND expires_at > NOW()
		 ORDER BY fetched_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []types.JobPosting
	for rows.Next() {
		var p types.JobPosting
		if err := rows.Scan(&p.ID, &p.URL, &p.Title, &p.Company, &p.Location, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// PrunePostings deletes expired cached postings and returns how many were removed
func (db *DB) PrunePostings(ctx context.Context) (int64, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM job_postings WHERE expires_at IS NULL OR expires_at <= NOW()`,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune job postings: %w", err)
	}
	return result.RowsAffected(), nil
}
