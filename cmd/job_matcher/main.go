// Package main provides the entry point for the Job Matcher service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_matcher",
	Short: "Job Matcher relevance scoring service",
	Long:  "Job Matcher scores resumes against active job postings using TF-IDF content similarity, skill overlap, and location preferences, and grades resumes against an ATS compatibility rubric.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
