package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// ResumesForUser retrieves all of a user's resumes.
func (db *DB) ResumesForUser(ctx context.Context, userID uuid.UUID) ([]types.Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, raw_text, parsed FROM resumes WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []types.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *resume)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resume rows: %w", err)
	}
	return resumes, nil
}

// ResumeForUser retrieves one resume scoped to a user.
// Returns (nil, nil) when absent or owned by someone else.
func (db *DB) ResumeForUser(ctx context.Context, userID, resumeID uuid.UUID) (*types.Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, raw_text, parsed FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read resume row: %w", err)
		}
		return nil, nil
	}
	return scanResume(rows)
}

// scanResume decodes a resume row, including the parsed JSONB record.
func scanResume(rows pgx.Rows) (*types.Resume, error) {
	var r types.Resume
	var rawText *string
	var parsedJSON []byte
	if err := rows.Scan(&r.ID, &r.UserID, &rawText, &parsedJSON); err != nil {
		return nil, fmt.Errorf("failed to scan resume row: %w", err)
	}
	if rawText != nil {
		r.RawText = *rawText
	}
	if len(parsedJSON) > 0 {
		if err := json.Unmarshal(parsedJSON, &r.Parsed); err != nil {
			return nil, fmt.Errorf("failed to decode parsed resume: %w", err)
		}
	}
	return &r, nil
}
