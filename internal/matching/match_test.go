package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMatchScore_StrongCandidate(t *testing.T) {
	text := "senior python developer django postgresql docker kubernetes"
	skills := []string{"python", "django", "postgresql", "docker", "kubernetes"}

	result := ComputeMatchScore(MatchInput{
		ResumeText:           text,
		JobDescription:       text,
		ResumeSkills:         skills,
		JobSkills:            skills,
		UserLocation:         "Berlin",
		UserRemotePreference: "remote",
		JobLocation:          "Berlin, Germany",
		JobWorkType:          "remote",
	})

	// Perfect similarity, full overlap, capped bonus: 50 + 30 + 20.
	assert.InDelta(t, 100.0, result.MatchScore, 0.1)
	assert.InDelta(t, 100.0, result.Breakdown.TFIDF, 0.1)
	assert.InDelta(t, 100.0, result.Breakdown.SkillOverlap, 0.1)
	assert.InDelta(t, 20.0, result.Breakdown.LocationBonus, 0.1)
	assert.Empty(t, result.MissingSkills)
}

func TestComputeMatchScore_WeakCandidate(t *testing.T) {
	result := ComputeMatchScore(MatchInput{
		ResumeText:     "warehouse forklift operator night shift",
		JobDescription: "senior python developer django postgresql",
		ResumeSkills:   nil,
		JobSkills:      []string{"python", "django", "postgresql"},
	})

	assert.Less(t, result.MatchScore, 50.0)
	assert.Equal(t, []string{"python", "django", "postgresql"}, result.MissingSkills)
}

func TestComputeMatchScore_Bounds(t *testing.T) {
	inputs := []MatchInput{
		{},
		{ResumeText: "go", JobDescription: "go", ResumeSkills: []string{"go"}, JobSkills: []string{"go"}},
		{ResumeText: "a b c", JobDescription: "x y z", JobSkills: []string{"x"}},
		{ResumeText: "python", JobDescription: "python", UserRemotePreference: "remote", JobWorkType: "remote"},
	}

	for _, in := range inputs {
		result := ComputeMatchScore(in)
		assert.GreaterOrEqual(t, result.MatchScore, 0.0)
		assert.LessOrEqual(t, result.MatchScore, 100.0)
		assert.GreaterOrEqual(t, result.Breakdown.TFIDF, 0.0)
		assert.LessOrEqual(t, result.Breakdown.TFIDF, 100.0)
		assert.GreaterOrEqual(t, result.Breakdown.SkillOverlap, 0.0)
		assert.LessOrEqual(t, result.Breakdown.SkillOverlap, 100.0)
		assert.GreaterOrEqual(t, result.Breakdown.LocationBonus, 0.0)
		assert.LessOrEqual(t, result.Breakdown.LocationBonus, 20.0)
	}
}

func TestComputeMatchScore_MoreSkillsScoreHigher(t *testing.T) {
	job := []string{"python", "django", "docker", "aws"}
	base := MatchInput{
		ResumeText:     "software engineer",
		JobDescription: "python django docker aws engineer",
		JobSkills:      job,
	}

	few := base
	few.ResumeSkills = []string{"python"}
	many := base
	many.ResumeSkills = []string{"python", "django", "docker"}

	assert.Greater(t, ComputeMatchScore(many).MatchScore, ComputeMatchScore(few).MatchScore)
}

func TestComputeMatchScore_Explanations(t *testing.T) {
	text := "python developer"
	strong := ComputeMatchScore(MatchInput{
		ResumeText:     text,
		JobDescription: text,
		ResumeSkills:   []string{"python"},
		JobSkills:      []string{"python"},
	})

	assert.Contains(t, strong.Why.Strengths, "Strong content match with job description")
	assert.Contains(t, strong.Why.Strengths, "Has 100% of required skills")
	assert.Empty(t, strong.Why.Reasons)

	weak := ComputeMatchScore(MatchInput{
		ResumeText:     "warehouse operator",
		JobDescription: "python developer",
		JobSkills:      []string{"python"},
	})

	assert.Contains(t, weak.Why.Reasons, "Limited content match - consider tailoring resume")
	assert.Contains(t, weak.Why.Reasons, "Only has 0% of required skills")
	assert.Empty(t, weak.Why.Strengths)
}

func TestComputeMatchScore_LocationStrength(t *testing.T) {
	result := ComputeMatchScore(MatchInput{
		ResumeText:           "python",
		JobDescription:       "python",
		UserRemotePreference: "remote",
		JobWorkType:          "remote",
	})

	assert.Contains(t, result.Why.Strengths, "Matches location/remote preferences")
}

func TestComputeMatchScore_RoundedToOneDecimal(t *testing.T) {
	result := ComputeMatchScore(MatchInput{
		ResumeText:     "python developer with django and redis experience",
		JobDescription: "python engineer working on django services",
		ResumeSkills:   []string{"python", "django"},
		JobSkills:      []string{"python", "django", "redis"},
	})

	scaled := result.MatchScore * 10
	assert.InDelta(t, math.Round(scaled), scaled, 1e-9)
}

func TestComputeMatchScore_Deterministic(t *testing.T) {
	in := MatchInput{
		ResumeText:           "go engineer kubernetes docker",
		JobDescription:       "kubernetes platform engineer",
		ResumeSkills:         []string{"go", "kubernetes", "docker"},
		JobSkills:            []string{"kubernetes", "go", "terraform"},
		UserLocation:         "Lisbon",
		UserRemotePreference: "hybrid",
		JobLocation:          "Lisbon",
		JobWorkType:          "hybrid",
	}

	first := ComputeMatchScore(in)
	second := ComputeMatchScore(in)

	assert.Equal(t, first, second)
}
