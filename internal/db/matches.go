package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// ReplaceUserMatches atomically replaces a user's stored match set: all
// existing rows are deleted and the new set inserted inside one transaction.
// Passing an empty set clears the user's matches. This is the only write
// path for job_matches; rows are never updated in place.
func (db *DB) ReplaceUserMatches(ctx context.Context, userID uuid.UUID, matches []types.MatchResult) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM job_matches WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear matches for user %s: %w", userID, err)
	}

	if len(matches) > 0 {
		b := &pgx.Batch{}
		for i := range matches {
			m := &matches[i]
			breakdownJSON, err := json.Marshal(m.Breakdown)
			if err != nil {
				return fmt.Errorf("failed to marshal score breakdown: %w", err)
			}
			whyJSON, err := json.Marshal(m.Why)
			if err != nil {
				return fmt.Errorf("failed to marshal match explanation: %w", err)
			}
			missingJSON, err := json.Marshal(m.MissingSkills)
			if err != nil {
				return fmt.Errorf("failed to marshal missing skills: %w", err)
			}
			b.Queue(
				`INSERT INTO job_matches (user_id, resume_id, job_id, match_score, score_breakdown, why, missing_skills)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				userID, m.ResumeID, m.JobID, m.MatchScore, breakdownJSON, whyJSON, missingJSON,
			)
		}
		br := tx.SendBatch(ctx, b)
		for range matches {
			if _, err := br.Exec(); err != nil {
				br.Close() //nolint:errcheck // already failing
				return fmt.Errorf("failed to insert match: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close insert batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit match replacement: %w", err)
	}
	return nil
}

// ListUserMatches returns one page of a user's matches at or above minScore,
// ordered by score then recency, along with the total row count for
// pagination.
func (db *DB) ListUserMatches(ctx context.Context, userID uuid.UUID, page, pageSize int, minScore float64) ([]types.MatchResult, int, error) {
	var total int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_matches WHERE user_id = $1 AND match_score >= $2`,
		userID, minScore,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count matches: %w", err)
	}

	offset := (page - 1) * pageSize
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_id, job_id, match_score, score_breakdown, why, missing_skills, created_at
		 FROM job_matches
		 WHERE user_id = $1 AND match_score >= $2
		 ORDER BY match_score DESC, created_at DESC
		 LIMIT $3 OFFSET $4`,
		userID, minScore, pageSize, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches, err := scanMatches(rows)
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// GetMatch retrieves a single match by ID. Returns (nil, nil) when absent.
func (db *DB) GetMatch(ctx context.Context, id uuid.UUID) (*types.MatchResult, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, resume_id, job_id, match_score, score_breakdown, why, missing_skills, created_at
		 FROM job_matches WHERE id = $1`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	defer rows.Close()

	matches, err := scanMatches(rows)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// DeleteMatchesForJob removes all matches referencing a job, used when the
// job is deleted. Returns the number of rows removed.
func (db *DB) DeleteMatchesForJob(ctx context.Context, jobID uuid.UUID) (int, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM job_matches WHERE job_id = $1`, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matches for job %s: %w", jobID, err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteMatchesForResume removes all matches referencing a resume, used when
// the resume is deleted. Returns the number of rows removed.
func (db *DB) DeleteMatchesForResume(ctx context.Context, resumeID uuid.UUID) (int, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM job_matches WHERE resume_id = $1`, resumeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matches for resume %s: %w", resumeID, err)
	}
	return int(tag.RowsAffected()), nil
}

// CountUserMatches returns the number of stored matches for a user.
func (db *DB) CountUserMatches(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_matches WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

// scanMatches decodes job_matches rows, including the JSONB payload columns.
func scanMatches(rows pgx.Rows) ([]types.MatchResult, error) {
	var matches []types.MatchResult
	for rows.Next() {
		var m types.MatchResult
		var breakdownJSON, whyJSON, missingJSON []byte
		if err := rows.Scan(&m.ID, &m.UserID, &m.ResumeID, &m.JobID, &m.MatchScore,
			&breakdownJSON, &whyJSON, &missingJSON, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		if err := json.Unmarshal(breakdownJSON, &m.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to decode score breakdown: %w", err)
		}
		if err := json.Unmarshal(whyJSON, &m.Why); err != nil {
			return nil, fmt.Errorf("failed to decode match explanation: %w", err)
		}
		if err := json.Unmarshal(missingJSON, &m.MissingSkills); err != nil {
			return nil, fmt.Errorf("failed to decode missing skills: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read match rows: %w", err)
	}
	return matches, nil
}
