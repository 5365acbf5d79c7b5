package matching

import "strings"

// SkillOverlap computes how much of a job's required skills are covered by a
// resume's skills. The ratio is |intersection| / |distinct job skills|; an
// empty requirement list is trivially satisfied and scores 1.0. The missing
// list preserves the original casing and order of jobSkills, with duplicates
// removed. Comparison is case-insensitive.
func SkillOverlap(resumeSkills, jobSkills []string) (float64, []string) {
	if len(jobSkills) == 0 {
		return 1.0, nil
	}

	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key != "" {
			resumeSet[key] = true
		}
	}

	seen := make(map[string]bool, len(jobSkills))
	distinct := 0
	matched := 0
	var missing []string
	for _, s := range jobSkills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		distinct++
		if resumeSet[key] {
			matched++
		} else {
			missing = append(missing, s)
		}
	}

	if distinct == 0 {
		return 1.0, nil
	}
	return float64(matched) / float64(distinct), missing
}
