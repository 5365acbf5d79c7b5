package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillOverlap_EmptyJobSkills(t *testing.T) {
	ratio, missing := SkillOverlap([]string{"python", "go"}, nil)

	assert.Equal(t, 1.0, ratio)
	assert.Nil(t, missing)
}

func TestSkillOverlap_FullMatch(t *testing.T) {
	ratio, missing := SkillOverlap(
		[]string{"Python", "Docker", "AWS"},
		[]string{"python", "docker"},
	)

	assert.Equal(t, 1.0, ratio)
	assert.Empty(t, missing)
}

func TestSkillOverlap_PartialMatch(t *testing.T) {
	ratio, missing := SkillOverlap(
		[]string{"python"},
		[]string{"Python", "Go", "Docker"},
	)

	assert.InDelta(t, 1.0/3.0, ratio, 1e-9)
	// Missing skills keep the job posting's casing and order.
	assert.Equal(t, []string{"Go", "Docker"}, missing)
}

func TestSkillOverlap_NoMatch(t *testing.T) {
	ratio, missing := SkillOverlap(
		[]string{"php", "ruby"},
		[]string{"Go", "Rust"},
	)

	assert.Equal(t, 0.0, ratio)
	assert.Equal(t, []string{"Go", "Rust"}, missing)
}

func TestSkillOverlap_DuplicateJobSkills(t *testing.T) {
	// Duplicates in the requirement list count once.
	ratio, missing := SkillOverlap(
		[]string{"go"},
		[]string{"Go", "go", "GO", "Docker"},
	)

	assert.InDelta(t, 0.5, ratio, 1e-9)
	assert.Equal(t, []string{"Docker"}, missing)
}

func TestSkillOverlap_WhitespaceAndEmptyEntries(t *testing.T) {
	ratio, missing := SkillOverlap(
		[]string{"  python  "},
		[]string{"Python", "", "   "},
	)

	assert.Equal(t, 1.0, ratio)
	assert.Empty(t, missing)
}
