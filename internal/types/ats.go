package types

// ATSScorecard is the result of grading a resume against the ATS rubric.
// ATSScore always equals the exact sum of the five sub-scores; sub-score
// maxima are 20+20+30+15+15 = 100, so the total is bounded by construction.
type ATSScorecard struct {
	ATSScore         int      `json:"ats_score"`
	ContactScore     int      `json:"contact_score"`
	SectionsScore    int      `json:"sections_score"`
	KeywordsScore    int      `json:"keywords_score"`
	FormattingScore  int      `json:"formatting_score"`
	ImpactScore      int      `json:"impact_score"`
	MissingKeywords  []string `json:"missing_keywords"`
	FormattingIssues []string `json:"formatting_issues"`
	Suggestions      []string `json:"suggestions"`
	Strengths        []string `json:"strengths"`
}
