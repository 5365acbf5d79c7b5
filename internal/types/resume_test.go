package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateParsedResume_ZeroValueIsValid(t *testing.T) {
	assert.NoError(t, ValidateParsedResume(&ParsedResume{}))
}

func TestValidateParsedResume_Nil(t *testing.T) {
	assert.Error(t, ValidateParsedResume(nil))
}

func TestValidateParsedResume_InvalidEmail(t *testing.T) {
	err := ValidateParsedResume(&ParsedResume{Email: "not-an-email"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email")
}

func TestValidateParsedResume_ValidEmail(t *testing.T) {
	assert.NoError(t, ValidateParsedResume(&ParsedResume{Email: "ada@example.com"}))
}

func TestValidateParsedResume_SummaryTooLong(t *testing.T) {
	err := ValidateParsedResume(&ParsedResume{Summary: strings.Repeat("x", 501)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Summary")
}

func TestResumeText_PrefersRawText(t *testing.T) {
	resume := Resume{
		RawText: "raw resume text",
		Parsed:  ParsedResume{Summary: "parsed summary"},
	}

	assert.Equal(t, "raw resume text", resume.Text())
}

func TestResumeText_ReconstructsFromParsed(t *testing.T) {
	resume := Resume{
		Parsed: ParsedResume{
			Summary: "Backend engineer",
			Experience: []ExperienceEntry{
				{Title: "Senior Engineer", Description: "Built data pipelines"},
			},
			Skills: []string{"Go", "Python"},
		},
	}

	text := resume.Text()
	assert.Contains(t, text, "Backend engineer")
	assert.Contains(t, text, "Senior Engineer")
	assert.Contains(t, text, "Built data pipelines")
	assert.Contains(t, text, "Go")
	assert.Contains(t, text, "Python")
}

func TestResumeText_EmptyResume(t *testing.T) {
	resume := Resume{}

	assert.Equal(t, "", resume.Text())
}

func TestJobPostingText(t *testing.T) {
	job := JobPosting{
		Title:        "Backend Engineer",
		Description:  "Build APIs",
		Requirements: "Go experience",
	}

	assert.Equal(t, "Backend Engineer Build APIs Go experience", job.Text())

	titleOnly := JobPosting{Title: "Backend Engineer"}
	assert.Equal(t, "Backend Engineer", titleOnly.Text())
}
