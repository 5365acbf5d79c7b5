// Package ats implements a deterministic applicant-tracking-system scorecard
// for resumes: a five-category weighted rubric (contact, sections, keywords,
// formatting, impact) summing to a 0-100 score, with canned suggestions and
// strengths derived from the sub-scores. All scoring is pure string and
// struct inspection; the package is safe for unrestricted concurrent use.
package ats

import "regexp"

// technicalKeywords are the industry-standard technical terms the keyword
// rubric looks for. Casing here is display casing; matching is
// case-insensitive.
var technicalKeywords = []string{
	"Python", "JavaScript", "Java", "C++", "SQL", "React", "Node.js", "AWS",
	"Docker", "Kubernetes", "Git", "API", "Database", "Cloud", "Agile", "CI/CD",
}

// softSkillKeywords are the soft-skill terms counted toward the keyword
// rubric. They never appear in the missing-keyword list.
var softSkillKeywords = []string{
	"leadership", "communication", "teamwork", "problem-solving", "analytical",
	"project management", "collaboration", "strategic", "innovative",
}

// impactVerbs are the action verbs counted toward the impact rubric.
var impactVerbs = []string{
	"achieved", "improved", "increased", "reduced", "led", "managed", "developed",
	"implemented", "designed", "created", "optimized", "delivered", "launched",
}

type keywordMatcher struct {
	term string
	re   *regexp.Regexp
}

var (
	technicalMatchers = compileKeywords(technicalKeywords)
	softSkillMatchers = compileKeywords(softSkillKeywords)
)

// compileKeywords builds a case-insensitive whole-word matcher per term.
// Terms like "C++", "Node.js" and "CI/CD" break \b at their non-word edges,
// so boundaries are written as "not adjacent to a letter or digit".
func compileKeywords(terms []string) []keywordMatcher {
	matchers := make([]keywordMatcher, 0, len(terms))
	for _, term := range terms {
		pattern := `(?i)(?:^|[^a-zA-Z0-9])` + regexp.QuoteMeta(term) + `(?:[^a-zA-Z0-9]|$)`
		matchers = append(matchers, keywordMatcher{term: term, re: regexp.MustCompile(pattern)})
	}
	return matchers
}
