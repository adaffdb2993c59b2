package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SaveResume stores a parsed resume and returns the new document ID
func (db *DB) SaveResume(ctx context.Context, resume *types.Resume) (uuid.UUID, error) {
	return db.saveDocument(ctx, KindResume, resume.SourceFile, resume)
}

// SaveJobDescription stores a parsed job description and returns the new document ID
func (db *DB) SaveJobDescription(ctx context.Context, jd *types.JobDescription) (uuid.UUID, error) {
	source := jd.SourceFile
	if source == "" {
		source = jd.URL
	}
	return db.saveDocument(ctx, KindJobDescription, source, jd)
}

func (db *DB) saveDocument(ctx context.Context, kind, sourceFile string, content any) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal %s: %w", kind, err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO documents (kind, source_file, content)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		kind, sourceFile, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save %s: %w", kind, err)
	}
	return id, nil
}

// GetResume retrieves a stored resume by document ID. Returns nil when the
// ID does not exist or refers to a different document kind.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.Resume, error) {
	content, err := db.getDocumentContent(ctx, id, KindResume)
	if err != nil || content == nil {
		return nil, err
	}

	var resume types.Resume
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume %s: %w", id, err)
	}
	return &resume, nil
}

// GetJobDescription retrieves a stored job description by document ID
func (db *DB) GetJobDescription(ctx context.Context, id uuid.UUID) (*types.JobDescription, error) {
	content, err := db.getDocumentContent(ctx, id, KindJobDescription)
	if err != nil || content == nil {
		return nil, err
	}

	var jd types.JobDescription
	if err := json.Unmarshal(content, &jd); err != nil {
		return nil, fmt.Errorf("failed to decode job description %s: %w", id, err)
	}
	return &jd, nil
}

func (db *DB) getDocumentContent(ctx context.Context, id uuid.UUID, kind string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM documents WHERE id = $1 AND kind = $2`,
		id, kind,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	return content, nil
}

// DocumentFilters holds optional filters for listing documents
type DocumentFilters struct {
	Kind  string
	Limit int
}

// ListDocuments retrieves recent documents, newest first
func (db *DB) ListDocuments(ctx context.Context, filters DocumentFilters) ([]Document, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, kind, source_file, created_at FROM documents WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Kind != "" {
		query += fmt.Sprintf(" AND kind = $%d", argNum)
		args = append(args, filters.Kind)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Kind, &doc.SourceFile, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// DeleteDocument deletes a document and any analyses that reference it
func (db *DB) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s", id)
	}
	return nil
}
