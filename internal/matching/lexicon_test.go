package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_TechnicalKeywords(t *testing.T) {
	text := "Built services in Go and Python, deployed with Docker on AWS."

	technical, _ := ExtractSkills(text)

	assert.Contains(t, technical, "go")
	assert.Contains(t, technical, "python")
	assert.Contains(t, technical, "docker")
	assert.Contains(t, technical, "aws")
}

func TestExtractSkills_PunctuatedTerms(t *testing.T) {
	// Terms with non-word characters must still match whole words.
	text := "Experienced in C++ and node.js, with CI/CD pipelines and C#."

	technical, _ := ExtractSkills(text)

	assert.Contains(t, technical, "c++")
	assert.Contains(t, technical, "node.js")
	assert.Contains(t, technical, "ci/cd")
	assert.Contains(t, technical, "c#")
}

func TestExtractSkills_WholeWordOnly(t *testing.T) {
	// "java" must not fire inside "javascript", nor "go" inside "going".
	text := "Going deep on javascript frameworks."

	technical, _ := ExtractSkills(text)

	assert.Contains(t, technical, "javascript")
	assert.NotContains(t, technical, "java")
	assert.NotContains(t, technical, "go")
}

func TestExtractSkills_SoftSkills(t *testing.T) {
	text := "Strong communication, leadership and problem solving abilities."

	_, soft := ExtractSkills(text)

	assert.Contains(t, soft, "communication")
	assert.Contains(t, soft, "leadership")
	assert.Contains(t, soft, "problem solving")
}

func TestExtractSkills_CaseInsensitive(t *testing.T) {
	technical, soft := ExtractSkills("PYTHON and LEADERSHIP")

	assert.Contains(t, technical, "python")
	assert.Contains(t, soft, "leadership")
}

func TestExtractSkills_EmptyText(t *testing.T) {
	technical, soft := ExtractSkills("")

	assert.Empty(t, technical)
	assert.Empty(t, soft)
}

func TestExtractSkills_Deterministic(t *testing.T) {
	text := "python go rust docker kubernetes communication teamwork"

	tech1, soft1 := ExtractSkills(text)
	tech2, soft2 := ExtractSkills(text)

	assert.Equal(t, tech1, tech2)
	assert.Equal(t, soft1, soft2)
	assert.IsIncreasing(t, tech1)
	assert.IsIncreasing(t, soft1)
}
