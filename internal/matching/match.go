package matching

import (
	"fmt"
	"math"

	"github.com/jonathan/job-matcher/internal/types"
)

// Signal weights for the combined match score. The location bonus already
// carries its own 0.20 ceiling, so it is added unweighted; the three signals
// together bound the score at (0.5 + 0.3 + 0.2) * 100 = 100.
const (
	tfidfWeight        = 0.5
	skillOverlapWeight = 0.3
)

// MatchInput carries everything needed to score one resume against one job.
type MatchInput struct {
	ResumeText           string
	JobDescription       string
	ResumeSkills         []string
	JobSkills            []string
	UserLocation         string
	UserRemotePreference string
	JobLocation          string
	JobWorkType          string
}

// ComputeMatchScore combines TF-IDF similarity, skill overlap and the
// location bonus into a single 0-100 match score with a per-signal breakdown
// and a threshold-templated explanation. Pure and deterministic.
func ComputeMatchScore(in MatchInput) types.MatchResult {
	tfidf := TFIDFSimilarity(in.ResumeText, in.JobDescription)
	overlap, missing := SkillOverlap(in.ResumeSkills, in.JobSkills)
	bonus := LocationBonus(in.UserLocation, in.UserRemotePreference, in.JobLocation, in.JobWorkType)

	score := (tfidf*tfidfWeight + overlap*skillOverlapWeight + bonus) * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	reasons, strengths := explainMatch(tfidf, overlap, bonus)

	return types.MatchResult{
		MatchScore: roundScore(score),
		Breakdown: types.ScoreBreakdown{
			TFIDF:         roundScore(tfidf * 100),
			SkillOverlap:  roundScore(overlap * 100),
			LocationBonus: roundScore(bonus * 100),
		},
		Why: types.MatchExplanation{
			Reasons:   reasons,
			Strengths: strengths,
		},
		MissingSkills: missing,
	}
}

// explainMatch renders the fixed threshold templates for the three signals.
func explainMatch(tfidf, overlap, bonus float64) (reasons, strengths []string) {
	switch {
	case tfidf > 0.7:
		strengths = append(strengths, "Strong content match with job description")
	case tfidf > 0.5:
		reasons = append(reasons, "Moderate content match with job description")
	default:
		reasons = append(reasons, "Limited content match - consider tailoring resume")
	}

	overlapPct := int(overlap * 100)
	switch {
	case overlap > 0.8:
		strengths = append(strengths, fmt.Sprintf("Has %d%% of required skills", overlapPct))
	case overlap > 0.5:
		reasons = append(reasons, fmt.Sprintf("Has %d%% of required skills - missing some key skills", overlapPct))
	default:
		reasons = append(reasons, fmt.Sprintf("Only has %d%% of required skills", overlapPct))
	}

	if bonus > 0.1 {
		strengths = append(strengths, "Matches location/remote preferences")
	}

	return reasons, strengths
}

// roundScore rounds to one decimal, the score unit stored and displayed.
func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
