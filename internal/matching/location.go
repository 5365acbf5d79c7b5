package matching

import "strings"

// Location bonus rule values. The remote and hybrid rules are mutually
// exclusive; at most one fires, plus the location-substring rule.
const (
	remoteMatchBonus   = 0.15
	hybridMatchBonus   = 0.10
	locationMatchBonus = 0.05
	maxLocationBonus   = 0.20
)

// LocationBonus computes the additive location/work-type bonus in [0, 0.20]:
// +0.15 when both user preference and job are remote, +0.10 when both are
// hybrid, +0.05 when one location case-insensitively contains the other.
func LocationBonus(userLocation, userRemotePreference, jobLocation, jobWorkType string) float64 {
	bonus := 0.0

	pref := strings.ToLower(strings.TrimSpace(userRemotePreference))
	workType := strings.ToLower(strings.TrimSpace(jobWorkType))
	switch {
	case pref == "remote" && workType == "remote":
		bonus += remoteMatchBonus
	case pref == "hybrid" && workType == "hybrid":
		bonus += hybridMatchBonus
	}

	userLoc := strings.ToLower(strings.TrimSpace(userLocation))
	jobLoc := strings.ToLower(strings.TrimSpace(jobLocation))
	if userLoc != "" && jobLoc != "" {
		if strings.Contains(jobLoc, userLoc) || strings.Contains(userLoc, jobLoc) {
			bonus += locationMatchBonus
		}
	}

	if bonus > maxLocationBonus {
		bonus = maxLocationBonus
	}
	return bonus
}
