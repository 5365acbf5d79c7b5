package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTFIDFSimilarity_IdenticalTexts(t *testing.T) {
	text := "senior backend engineer building distributed systems in go"

	sim := TFIDFSimilarity(text, text)

	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestTFIDFSimilarity_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, TFIDFSimilarity("", "some job description"))
	assert.Equal(t, 0.0, TFIDFSimilarity("some resume text", ""))
	assert.Equal(t, 0.0, TFIDFSimilarity("", ""))
}

func TestTFIDFSimilarity_DisjointTexts(t *testing.T) {
	sim := TFIDFSimilarity("apple banana cherry", "truck engine diesel")

	assert.Equal(t, 0.0, sim)
}

func TestTFIDFSimilarity_PartialOverlap(t *testing.T) {
	resume := "python developer with django experience"
	related := "looking for python django developer"
	unrelated := "forklift operator warehouse night shift"

	simRelated := TFIDFSimilarity(resume, related)
	simUnrelated := TFIDFSimilarity(resume, unrelated)

	assert.Greater(t, simRelated, 0.0)
	assert.Greater(t, simRelated, simUnrelated)
}

func TestTFIDFSimilarity_StopWordsIgnored(t *testing.T) {
	// Shared stop words alone must not create similarity.
	sim := TFIDFSimilarity("the and for with python", "the and for with trucking")

	assert.Equal(t, 0.0, sim)
}

func TestTFIDFSimilarity_IdenticalDegenerateInput(t *testing.T) {
	// Inputs that filter down to nothing still compare equal to themselves.
	sim := TFIDFSimilarity("the and for", "the and for")

	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestTFIDFSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"go go go go go", "go"},
		{"a b c d e f g", "a b"},
		{"python python java", "java python"},
		{"one two three", "three two one"},
	}

	for _, p := range pairs {
		sim := TFIDFSimilarity(p[0], p[1])
		assert.GreaterOrEqual(t, sim, 0.0)
		assert.LessOrEqual(t, sim, 1.0)
	}
}

func TestTokenize_TechTerms(t *testing.T) {
	tokens := tokenize("C++ and Node.js developer, CI/CD focus.")

	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "node.js")
	assert.NotContains(t, tokens, "and")
	// Trailing sentence periods are stripped; "focus." becomes "focus".
	assert.Contains(t, tokens, "focus")
}
