// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Resume is a stored resume: its extracted raw text plus the structured
// record produced by the parsing boundary.
type Resume struct {
	ID      uuid.UUID    `json:"id"`
	UserID  uuid.UUID    `json:"user_id"`
	RawText string       `json:"raw_text,omitempty"`
	Parsed  ParsedResume `json:"parsed"`
}

// Text returns the searchable document for a resume. Raw extracted text when
// available, otherwise a reconstruction from the parsed record.
func (r *Resume) Text() string {
	if r.RawText != "" {
		return r.RawText
	}
	var sb strings.Builder
	sb.WriteString(r.Parsed.Summary)
	for _, exp := range r.Parsed.Experience {
		sb.WriteString(" ")
		sb.WriteString(exp.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Description)
	}
	for _, skill := range r.Parsed.Skills {
		sb.WriteString(" ")
		sb.WriteString(skill)
	}
	return strings.TrimSpace(sb.String())
}

// ParsedResume is the structured form of a resume produced by the parsing
// boundary. All fields are optional; a zero value is a valid (empty) resume.
// Scoring code must never need to re-check field presence beyond nil/empty.
type ParsedResume struct {
	Name           string            `json:"name,omitempty"`
	Email          string            `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string            `json:"phone,omitempty"`
	Location       string            `json:"location,omitempty"`
	Summary        string            `json:"summary,omitempty" validate:"max=500"`
	Experience     []ExperienceEntry `json:"experience,omitempty" validate:"dive"`
	Education      []EducationEntry  `json:"education,omitempty" validate:"dive"`
	Skills         []string          `json:"skills,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
}

// ExperienceEntry represents a single work experience item on a resume.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry represents a single education item on a resume.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

var resumeValidate = validator.New(validator.WithRequiredStructEnabled())

// ValidateParsedResume checks a parsed resume against its struct constraints.
// Validation happens once at the parsing boundary; downstream scoring assumes
// a validated record.
func ValidateParsedResume(r *ParsedResume) error {
	if r == nil {
		return fmt.Errorf("parsed resume is nil")
	}
	if err := resumeValidate.Struct(r); err != nil {
		return fmt.Errorf("invalid parsed resume: %w", err)
	}
	return nil
}
