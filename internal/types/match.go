package types

import (
	"time"

	"github.com/google/uuid"
)

// ScoreBreakdown holds the per-signal contribution of a match score.
// TFIDF and SkillOverlap are on a 0-100 scale, LocationBonus on 0-20.
type ScoreBreakdown struct {
	TFIDF         float64 `json:"tf_idf"`
	SkillOverlap  float64 `json:"skill_overlap"`
	LocationBonus float64 `json:"location_bonus"`
}

// MatchExplanation holds the human-readable reasoning behind a match score.
// Both lists are produced by fixed threshold templates, not free-form text.
type MatchExplanation struct {
	Reasons   []string `json:"reasons"`
	Strengths []string `json:"strengths"`
}

// MatchResult is a scored resume-job pairing. A user's result set is always
// replaced wholesale on recompute; individual rows are never updated in place.
type MatchResult struct {
	ID            uuid.UUID        `json:"id,omitempty"`
	UserID        uuid.UUID        `json:"user_id,omitempty"`
	ResumeID      uuid.UUID        `json:"resume_id"`
	JobID         uuid.UUID        `json:"job_id"`
	MatchScore    float64          `json:"match_score"`
	Breakdown     ScoreBreakdown   `json:"score_breakdown"`
	Why           MatchExplanation `json:"why"`
	MissingSkills []string         `json:"missing_skills"`
	CreatedAt     time.Time        `json:"created_at,omitempty"`
}

// JobPosting is the slice of a job record the scoring core consumes.
type JobPosting struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Requirements string    `json:"requirements,omitempty"`
	Location     string    `json:"location,omitempty"`
	WorkType     string    `json:"work_type,omitempty"`
	IsActive     bool      `json:"is_active"`
}

// Text returns the searchable document for a job posting: title plus
// description plus requirements, matching what skills are extracted from.
func (j *JobPosting) Text() string {
	text := j.Title
	if j.Description != "" {
		text += " " + j.Description
	}
	if j.Requirements != "" {
		text += " " + j.Requirements
	}
	return text
}

// UserPreferences is the slice of a user's preferences the scoring core
// consumes. A nil value means no preferences are set.
type UserPreferences struct {
	UserID            uuid.UUID `json:"user_id"`
	PreferredLocation string    `json:"preferred_location,omitempty"`
	WorkType          string    `json:"work_type,omitempty"` // remote, hybrid, onsite
	MinSalary         int       `json:"min_salary,omitempty"`
}
