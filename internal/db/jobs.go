package db

import (
	"context"
	"fmt"

	"github.com/jonathan/job-matcher/internal/types"
)

// ActiveJobs retrieves every active job posting, newest first. The batch
// layer scores all of them against each resume, so no pagination here.
func (db *DB) ActiveJobs(ctx context.Context) ([]types.JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, description, requirements, location, work_type, is_active
		 FROM job_postings WHERE is_active = TRUE ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		var j types.JobPosting
		var description, requirements, location, workType *string
		if err := rows.Scan(&j.ID, &j.Title, &description, &requirements, &location, &workType, &j.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		if description != nil {
			j.Description = *description
		}
		if requirements != nil {
			j.Requirements = *requirements
		}
		if location != nil {
			j.Location = *location
		}
		if workType != nil {
			j.WorkType = *workType
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}
	return jobs, nil
}

// CountActiveJobs returns the number of active job postings.
func (db *DB) CountActiveJobs(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE is_active = TRUE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active jobs: %w", err)
	}
	return count, nil
}
