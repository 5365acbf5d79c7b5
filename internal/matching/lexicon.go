// Package matching implements the resume-job relevance scoring core:
// lexicon-based skill extraction, TF-IDF text similarity, skill overlap,
// location preference bonuses, and their weighted aggregation into a single
// match score. Every function in this package is pure and safe for
// concurrent use; the lexicons are immutable after package initialization.
package matching

import (
	"regexp"
	"sort"
)

// technicalSkillLexicon is the fixed set of recognized technical skill
// keywords. Keyword spotting only; no stemming or synonym expansion.
var technicalSkillLexicon = []string{
	"python", "javascript", "typescript", "java", "c++", "c#", "go", "rust",
	"react", "vue", "angular", "node.js", "django", "flask", "fastapi", "spring",
	"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"docker", "kubernetes", "aws", "gcp", "azure", "terraform",
	"git", "ci/cd", "graphql", "grpc",
	"machine learning", "tensorflow", "pytorch", "linux",
}

// softSkillLexicon is the fixed set of recognized soft skill keywords.
var softSkillLexicon = []string{
	"communication", "leadership", "teamwork", "problem solving",
	"critical thinking", "time management", "project management",
	"mentoring", "collaboration", "adaptability",
}

type lexiconEntry struct {
	term string
	re   *regexp.Regexp
}

var (
	technicalEntries = compileLexicon(technicalSkillLexicon)
	softEntries      = compileLexicon(softSkillLexicon)
)

// compileLexicon precompiles a whole-word matcher per term. A plain \b does
// not work for terms like "c++", "node.js" or "ci/cd", so boundaries are
// expressed as "not adjacent to a letter or digit".
func compileLexicon(terms []string) []lexiconEntry {
	entries := make([]lexiconEntry, 0, len(terms))
	for _, term := range terms {
		pattern := `(?i)(?:^|[^a-z0-9])` + regexp.QuoteMeta(term) + `(?:[^a-z0-9]|$)`
		entries = append(entries, lexiconEntry{term: term, re: regexp.MustCompile(pattern)})
	}
	return entries
}

// ExtractSkills scans free text for known technical and soft skills.
// Matching is case-insensitive and whole-word. Empty input yields empty
// results. Output is sorted so identical input always yields identical
// output.
func ExtractSkills(text string) (technical, soft []string) {
	if text == "" {
		return nil, nil
	}
	for _, e := range technicalEntries {
		if e.re.MatchString(text) {
			technical = append(technical, e.term)
		}
	}
	for _, e := range softEntries {
		if e.re.MatchString(text) {
			soft = append(soft, e.term)
		}
	}
	sort.Strings(technical)
	sort.Strings(soft)
	return technical, soft
}
