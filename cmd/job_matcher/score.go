package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/matching"
)

var (
	scoreResumePath   string
	scoreJobPath      string
	scoreResumeSkills string
	scoreJobSkills    string
	scoreUserLocation string
	scoreRemotePref   string
	scoreJobLocation  string
	scoreJobWorkType  string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long: `Score a resume text file against a job description text file without
touching the database. Skills are extracted from both texts; explicit skill
lists can be supplied to supplement extraction.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResumePath, "resume", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to job description text file (required)")
	scoreCmd.Flags().StringVar(&scoreResumeSkills, "resume-skills", "", "Comma-separated resume skills to add")
	scoreCmd.Flags().StringVar(&scoreJobSkills, "job-skills", "", "Comma-separated job skills to add")
	scoreCmd.Flags().StringVar(&scoreUserLocation, "location", "", "Candidate location")
	scoreCmd.Flags().StringVar(&scoreRemotePref, "remote-pref", "", "Candidate work type preference (remote, hybrid, onsite)")
	scoreCmd.Flags().StringVar(&scoreJobLocation, "job-location", "", "Job location")
	scoreCmd.Flags().StringVar(&scoreJobWorkType, "job-work-type", "", "Job work type (remote, hybrid, onsite)")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	resumeText, err := os.ReadFile(scoreResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	jobText, err := os.ReadFile(scoreJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	resumeTech, resumeSoft := matching.ExtractSkills(string(resumeText))
	jobTech, jobSoft := matching.ExtractSkills(string(jobText))

	resumeSkills := append(append(resumeTech, resumeSoft...), splitSkills(scoreResumeSkills)...)
	jobSkills := append(append(jobTech, jobSoft...), splitSkills(scoreJobSkills)...)

	result := matching.ComputeMatchScore(matching.MatchInput{
		ResumeText:           string(resumeText),
		JobDescription:       string(jobText),
		ResumeSkills:         resumeSkills,
		JobSkills:            jobSkills,
		UserLocation:         scoreUserLocation,
		UserRemotePreference: scoreRemotePref,
		JobLocation:          scoreJobLocation,
		JobWorkType:          scoreJobWorkType,
	})

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func splitSkills(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
