package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/ats"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

var (
	atsResumePath string
	atsParsedPath string
)

var atsScoreCmd = &cobra.Command{
	Use:   "ats-score",
	Short: "Grade a resume against the ATS compatibility rubric",
	Long: `Compute an ATS scorecard for a resume text file. A structured resume
JSON file can be supplied for the contact, sections, and impact checks;
without one those checks run against empty fields.`,
	RunE: runATSScore,
}

func init() {
	atsScoreCmd.Flags().StringVar(&atsResumePath, "resume", "", "Path to resume text file (required)")
	atsScoreCmd.Flags().StringVar(&atsParsedPath, "parsed", "", "Path to structured resume JSON file")
	_ = atsScoreCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(atsScoreCmd)
}

func runATSScore(_ *cobra.Command, _ []string) error {
	rawText, err := os.ReadFile(atsResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var parsed types.ParsedResume
	if atsParsedPath != "" {
		doc, err := os.ReadFile(atsParsedPath)
		if err != nil {
			return fmt.Errorf("failed to read parsed resume: %w", err)
		}
		if err := schemas.ValidateParsedResumeJSON(doc); err != nil {
			return fmt.Errorf("parsed resume failed schema validation: %w", err)
		}
		if err := json.Unmarshal(doc, &parsed); err != nil {
			return fmt.Errorf("failed to decode parsed resume: %w", err)
		}
		if err := types.ValidateParsedResume(&parsed); err != nil {
			return fmt.Errorf("invalid parsed resume: %w", err)
		}
	}

	card := ats.NewScorer().CalculateScore(parsed, string(rawText))

	out, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scorecard: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
