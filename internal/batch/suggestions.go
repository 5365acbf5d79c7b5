package batch

import (
	"context"

	"github.com/google/uuid"
)

// minMatchesThreshold is the match count below which profile-improvement
// suggestions are offered even when the user's setup is complete.
const minMatchesThreshold = 5

// Suggestion is a deterministic, rule-driven hint shown when a user has few
// or no matches.
type Suggestion struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionURL   string `json:"action_url,omitempty"`
}

// SuggestionsForUser inspects a user's setup (resume, preferences, job
// inventory) and returns canned suggestions explaining why matches may be
// few. matchCount is the user's current stored match count.
func (s *Service) SuggestionsForUser(ctx context.Context, userID uuid.UUID, matchCount int) ([]Suggestion, error) {
	suggestions := []Suggestion{}

	resumes, err := s.resumes.ResumesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(resumes) == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:        "resume",
			Title:       "Upload your resume",
			Description: "Upload your CV/resume to enable job matching. We support PDF and DOCX formats.",
			ActionURL:   "/api/v1/resume/upload",
		})
	} else {
		hasText := false
		for i := range resumes {
			if resumes[i].RawText != "" {
				hasText = true
				break
			}
		}
		if !hasText {
			suggestions = append(suggestions, Suggestion{
				Type:        "resume",
				Title:       "Resume parsing incomplete",
				Description: "Your resume is still being processed. Please wait a moment and try again.",
			})
		}
	}

	prefs, err := s.preferences.PreferencesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		suggestions = append(suggestions, Suggestion{
			Type:        "preferences",
			Title:       "Set your job preferences",
			Description: "Configure your preferred job roles, locations, salary range, and work type to improve match quality.",
			ActionURL:   "/api/v1/preferences/me",
		})
	} else {
		if prefs.WorkType == "onsite" && prefs.PreferredLocation != "" {
			suggestions = append(suggestions, Suggestion{
				Type:        "preferences",
				Title:       "Consider remote work",
				Description: "Enabling remote or hybrid work options can significantly increase your job matches.",
				ActionURL:   "/api/v1/preferences/me",
			})
		}
		if prefs.MinSalary > 150000 {
			suggestions = append(suggestions, Suggestion{
				Type:        "preferences",
				Title:       "Adjust salary expectations",
				Description: "Your minimum salary requirement may be limiting matches. Consider adjusting for more opportunities.",
				ActionURL:   "/api/v1/preferences/me",
			})
		}
	}

	jobCount, err := s.jobs.CountActiveJobs(ctx)
	if err != nil {
		return nil, err
	}
	switch {
	case jobCount == 0:
		suggestions = append(suggestions, Suggestion{
			Type:        "jobs",
			Title:       "No active jobs available",
			Description: "There are currently no active job listings. New jobs are fetched hourly from configured sources.",
		})
	case jobCount < 10:
		suggestions = append(suggestions, Suggestion{
			Type:        "jobs",
			Title:       "Limited job listings",
			Description: "Only a few jobs are currently available. More jobs will be added as sources are fetched.",
		})
	}

	if len(resumes) > 0 && prefs != nil && matchCount < minMatchesThreshold && jobCount >= 10 {
		suggestions = append(suggestions,
			Suggestion{
				Type:        "profile",
				Title:       "Enhance your profile",
				Description: "Add more skills and experience details to your resume to improve match scores.",
				ActionURL:   "/api/v1/resume/upload",
			},
			Suggestion{
				Type:        "preferences",
				Title:       "Broaden your search criteria",
				Description: "Try expanding your preferred roles or locations to discover more opportunities.",
				ActionURL:   "/api/v1/preferences/me",
			})
	}

	return suggestions, nil
}
