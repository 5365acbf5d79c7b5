package ats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Sub-score maxima. They sum to 100, so the total never needs clamping.
const (
	maxContactScore    = 20
	maxSectionsScore   = 20
	maxKeywordsScore   = 30
	maxFormattingScore = 15
	maxImpactScore     = 15

	maxMissingKeywords = 10
	maxSuggestions     = 8
	maxStrengths       = 6
)

var (
	bulletRe      = regexp.MustCompile(`[•\-*]`)
	specialCharRe = regexp.MustCompile(`[^a-zA-Z0-9_\s\-.,;:()\[\]/@]`)
	blankLinesRe  = regexp.MustCompile(`\n{4,}`)
	multiTabRe    = regexp.MustCompile(`\t{2,}`)
	metricRe      = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\+|increased by \d+|reduced by \d+`)
	wordRe        = regexp.MustCompile(`[a-zA-Z]+`)
)

// Scorer grades resumes against the ATS rubric. It is stateless; a single
// instance may be shared across goroutines.
type Scorer struct{}

// NewScorer returns a Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// CalculateScore grades a parsed resume and its raw text. The resume is
// assumed validated at the parsing boundary; missing optional fields score
// zero for their rubric items rather than producing an error.
func (s *Scorer) CalculateScore(resume types.ParsedResume, rawText string) types.ATSScorecard {
	contact := scoreContact(resume)
	sections := scoreSections(resume)
	keywords, missingKeywords := scoreKeywords(rawText)
	formatting, formattingIssues := scoreFormatting(rawText)
	impact := scoreImpact(resume, rawText)

	return types.ATSScorecard{
		ATSScore:         contact + sections + keywords + formatting + impact,
		ContactScore:     contact,
		SectionsScore:    sections,
		KeywordsScore:    keywords,
		FormattingScore:  formatting,
		ImpactScore:      impact,
		MissingKeywords:  missingKeywords,
		FormattingIssues: formattingIssues,
		Suggestions:      buildSuggestions(contact, sections, keywords, formatting, impact, resume),
		Strengths:        buildStrengths(contact, sections, keywords, formatting, impact, resume),
	}
}

// scoreContact awards points for contact information completeness:
// email 8, phone 6, name 4, location 2.
func scoreContact(resume types.ParsedResume) int {
	score := 0
	if resume.Email != "" {
		score += 8
	}
	if resume.Phone != "" {
		score += 6
	}
	if resume.Name != "" {
		score += 4
	}
	if resume.Location != "" {
		score += 2
	}
	return score
}

// scoreSections awards points for the presence of resume sections:
// experience 8, education 6, skills 4, summary 2, capped at 20.
func scoreSections(resume types.ParsedResume) int {
	score := 0
	if len(resume.Experience) > 0 {
		score += 8
	}
	if len(resume.Education) > 0 {
		score += 6
	}
	if len(resume.Skills) > 0 {
		score += 4
	}
	if resume.Summary != "" {
		score += 2
	}
	if score > maxSectionsScore {
		score = maxSectionsScore
	}
	return score
}

// scoreKeywords counts distinct lexicon terms present in the raw text and
// maps the count onto the keyword step function. The missing list holds up to
// ten technical terms absent from the text; soft skills only add to the count.
func scoreKeywords(rawText string) (int, []string) {
	found := 0
	var missing []string
	for _, m := range technicalMatchers {
		if m.re.MatchString(rawText) {
			found++
		} else {
			missing = append(missing, m.term)
		}
	}
	for _, m := range softSkillMatchers {
		if m.re.MatchString(rawText) {
			found++
		}
	}

	var score int
	switch {
	case found >= 15:
		score = 30
	case found >= 10:
		score = 25
	case found >= 7:
		score = 20
	case found >= 5:
		score = 15
	case found >= 3:
		score = 10
	default:
		score = 5
	}

	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}
	return score, missing
}

// scoreFormatting starts from 15 and debits for machine-parsing hazards,
// flooring at zero.
func scoreFormatting(rawText string) (int, []string) {
	score := maxFormattingScore
	var issues []string

	wordCount := len(strings.Fields(rawText))
	if wordCount < 200 {
		score -= 3
		issues = append(issues, "Resume is too short (less than 200 words)")
	} else if wordCount > 1500 {
		score -= 2
		issues = append(issues, "Resume is too long (over 1500 words)")
	}

	if !bulletRe.MatchString(rawText) {
		score -= 2
		issues = append(issues, "No bullet points found - use bullets for better readability")
	}

	if len(specialCharRe.FindAllString(rawText, -1)) > 50 {
		score -= 3
		issues = append(issues, "Too many special characters - keep formatting simple")
	}

	if blankLinesRe.MatchString(rawText) {
		score -= 2
		issues = append(issues, "Excessive blank lines - reduce whitespace")
	}

	if multiTabRe.MatchString(rawText) {
		score -= 2
		issues = append(issues, "Multiple tabs detected - avoid complex tables")
	}

	if score < 0 {
		score = 0
	}
	return score, issues
}

// scoreImpact rewards action verbs, quantifiable metrics and substantive
// experience descriptions, capped at 15. Verb and metric hit counts share the
// same bucket thresholds.
func scoreImpact(resume types.ParsedResume, rawText string) int {
	score := 0

	score += impactBucket(countImpactVerbs(rawText))
	score += impactBucket(len(metricRe.FindAllString(rawText, -1)))

	for _, exp := range resume.Experience {
		if len(exp.Description) > 50 {
			score++
		}
	}

	if score > maxImpactScore {
		score = maxImpactScore
	}
	return score
}

// impactBucket maps a hit count onto the shared impact step function.
func impactBucket(hits int) int {
	switch {
	case hits >= 10:
		return 6
	case hits >= 6:
		return 4
	case hits >= 3:
		return 2
	default:
		return 0
	}
}

// countImpactVerbs counts every occurrence of an impact verb in the text.
// Token counting rather than regex scanning so repeated verbs separated by a
// single space are all counted.
func countImpactVerbs(rawText string) int {
	counts := make(map[string]int)
	for _, w := range wordRe.FindAllString(strings.ToLower(rawText), -1) {
		counts[w]++
	}
	total := 0
	for _, verb := range impactVerbs {
		total += counts[verb]
	}
	return total
}

// buildSuggestions renders up to eight canned improvement suggestions driven
// by sub-score thresholds.
func buildSuggestions(contact, sections, keywords, formatting, impact int, resume types.ParsedResume) []string {
	var suggestions []string

	if contact < 15 {
		if resume.Email == "" {
			suggestions = append(suggestions, "Add a professional email address")
		}
		if resume.Phone == "" {
			suggestions = append(suggestions, "Include a phone number for contact")
		}
		if resume.Location == "" {
			suggestions = append(suggestions, "Add your location (city, state/country)")
		}
	}

	if sections < 15 {
		if len(resume.Experience) == 0 {
			suggestions = append(suggestions, "Add work experience section with job titles and dates")
		}
		if len(resume.Skills) < 5 {
			suggestions = append(suggestions, "List more relevant technical and soft skills")
		}
		if resume.Summary == "" {
			suggestions = append(suggestions, "Add a professional summary at the top")
		}
	}

	if keywords < 20 {
		suggestions = append(suggestions,
			"Include more industry-specific keywords and technical skills",
			"Add relevant certifications and tools you've used")
	}

	if formatting < 12 {
		suggestions = append(suggestions,
			"Use bullet points to organize information",
			"Keep formatting simple - avoid tables and complex layouts",
			"Maintain consistent spacing and structure")
	}

	if impact < 10 {
		suggestions = append(suggestions,
			"Use action verbs (achieved, led, improved, developed)",
			"Quantify achievements with numbers and percentages",
			"Focus on results and impact, not just responsibilities")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// buildStrengths renders up to six canned strengths for high sub-scores and
// notable resume content.
func buildStrengths(contact, sections, keywords, formatting, impact int, resume types.ParsedResume) []string {
	var strengths []string

	if contact >= 18 {
		strengths = append(strengths, "Complete contact information")
	}
	if sections >= 18 {
		strengths = append(strengths, "Well-structured with all key sections")
	}
	if keywords >= 25 {
		strengths = append(strengths, "Strong keyword optimization")
	}
	if formatting >= 13 {
		strengths = append(strengths, "ATS-friendly formatting")
	}
	if impact >= 12 {
		strengths = append(strengths, "Strong impact statements with quantifiable results")
	}
	if len(resume.Skills) >= 8 {
		strengths = append(strengths, fmt.Sprintf("Comprehensive skills list (%d skills)", len(resume.Skills)))
	}
	if len(resume.Experience) >= 3 {
		strengths = append(strengths, "Solid work experience history")
	}
	if len(resume.Certifications) > 0 {
		strengths = append(strengths, "Professional certifications included")
	}

	if len(strengths) > maxStrengths {
		strengths = strengths[:maxStrengths]
	}
	return strengths
}
