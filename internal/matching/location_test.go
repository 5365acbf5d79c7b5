package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationBonus_RemoteMatch(t *testing.T) {
	bonus := LocationBonus("", "remote", "", "remote")

	assert.InDelta(t, 0.15, bonus, 1e-9)
}

func TestLocationBonus_HybridMatch(t *testing.T) {
	bonus := LocationBonus("", "hybrid", "", "hybrid")

	assert.InDelta(t, 0.10, bonus, 1e-9)
}

func TestLocationBonus_MixedWorkTypesNoBonus(t *testing.T) {
	// Remote preference against a hybrid job earns nothing, and vice versa.
	assert.Equal(t, 0.0, LocationBonus("", "remote", "", "hybrid"))
	assert.Equal(t, 0.0, LocationBonus("", "hybrid", "", "remote"))
	assert.Equal(t, 0.0, LocationBonus("", "onsite", "", "remote"))
}

func TestLocationBonus_LocationSubstring(t *testing.T) {
	// Either direction of containment counts, case-insensitively.
	assert.InDelta(t, 0.05, LocationBonus("Berlin", "", "berlin, germany", ""), 1e-9)
	assert.InDelta(t, 0.05, LocationBonus("Berlin, Germany", "", "BERLIN", ""), 1e-9)
}

func TestLocationBonus_EmptyLocationNoBonus(t *testing.T) {
	assert.Equal(t, 0.0, LocationBonus("", "", "Berlin", ""))
	assert.Equal(t, 0.0, LocationBonus("Berlin", "", "", ""))
}

func TestLocationBonus_Cap(t *testing.T) {
	// Remote match plus location match hits the 0.20 ceiling exactly.
	bonus := LocationBonus("Lisbon", "remote", "Lisbon, Portugal", "remote")

	assert.InDelta(t, 0.20, bonus, 1e-9)
}

func TestLocationBonus_HybridPlusLocation(t *testing.T) {
	bonus := LocationBonus("Lisbon", "hybrid", "Lisbon, Portugal", "hybrid")

	assert.InDelta(t, 0.15, bonus, 1e-9)
}

func TestLocationBonus_CaseAndWhitespace(t *testing.T) {
	bonus := LocationBonus("", "  Remote  ", "", "REMOTE")

	assert.InDelta(t, 0.15, bonus, 1e-9)
}
