package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// ActiveUserIDs enumerates users eligible for the global nightly batch.
func (db *DB) ActiveUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := db.pool.Query(ctx, `SELECT id FROM users WHERE is_active = TRUE ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}
	return ids, nil
}

// PreferencesForUser retrieves a user's matching preferences.
// Returns (nil, nil) when the user has not set any.
func (db *DB) PreferencesForUser(ctx context.Context, userID uuid.UUID) (*types.UserPreferences, error) {
	var p types.UserPreferences
	var location, workType *string
	var minSalary *int
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, preferred_location, work_type, min_salary
		 FROM user_preferences WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &location, &workType, &minSalary)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if location != nil {
		p.PreferredLocation = *location
	}
	if workType != nil {
		p.WorkType = *workType
	}
	if minSalary != nil {
		p.MinSalary = *minSalary
	}
	return &p, nil
}
