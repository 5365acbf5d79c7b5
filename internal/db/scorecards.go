package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/types"
)

// UpsertScorecard stores a resume's ATS scorecard, creating or overwriting
// the single row keyed by resume.
func (db *DB) UpsertScorecard(ctx context.Context, resumeID uuid.UUID, card types.ATSScorecard) error {
	missingJSON, err := json.Marshal(card.MissingKeywords)
	if err != nil {
		return fmt.Errorf("failed to marshal missing keywords: %w", err)
	}
	issuesJSON, err := json.Marshal(card.FormattingIssues)
	if err != nil {
		return fmt.Errorf("failed to marshal formatting issues: %w", err)
	}
	suggestionsJSON, err := json.Marshal(card.Suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}
	strengthsJSON, err := json.Marshal(card.Strengths)
	if err != nil {
		return fmt.Errorf("failed to marshal strengths: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO ats_scorecards (resume_id, ats_score, contact_score, sections_score, keywords_score,
		                             formatting_score, impact_score, missing_keywords, formatting_issues,
		                             suggestions, strengths)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (resume_id) DO UPDATE SET
		   ats_score = $2, contact_score = $3, sections_score = $4, keywords_score = $5,
		   formatting_score = $6, impact_score = $7, missing_keywords = $8,
		   formatting_issues = $9, suggestions = $10, strengths = $11, updated_at = NOW()`,
		resumeID, card.ATSScore, card.ContactScore, card.SectionsScore, card.KeywordsScore,
		card.FormattingScore, card.ImpactScore, missingJSON, issuesJSON, suggestionsJSON, strengthsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert scorecard for resume %s: %w", resumeID, err)
	}
	return nil
}

// GetScorecard retrieves the stored ATS scorecard for a resume.
// Returns (nil, nil) when none has been computed yet.
func (db *DB) GetScorecard(ctx context.Context, resumeID uuid.UUID) (*types.ATSScorecard, error) {
	var card types.ATSScorecard
	var missingJSON, issuesJSON, suggestionsJSON, strengthsJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT ats_score, contact_score, sections_score, keywords_score, formatting_score,
		        impact_score, missing_keywords, formatting_issues, suggestions, strengths
		 FROM ats_scorecards WHERE resume_id = $1`,
		resumeID,
	).Scan(&card.ATSScore, &card.ContactScore, &card.SectionsScore, &card.KeywordsScore,
		&card.FormattingScore, &card.ImpactScore, &missingJSON, &issuesJSON, &suggestionsJSON, &strengthsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scorecard: %w", err)
	}

	for _, pair := range []struct {
		data []byte
		dst  *[]string
	}{
		{missingJSON, &card.MissingKeywords},
		{issuesJSON, &card.FormattingIssues},
		{suggestionsJSON, &card.Suggestions},
		{strengthsJSON, &card.Strengths},
	} {
		if len(pair.data) > 0 {
			if err := json.Unmarshal(pair.data, pair.dst); err != nil {
				return nil, fmt.Errorf("failed to decode scorecard field: %w", err)
			}
		}
	}
	return &card, nil
}
