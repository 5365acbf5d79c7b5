package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/batch"
	"github.com/jonathan/job-matcher/internal/db"
	"github.com/jonathan/job-matcher/internal/logger"
)

var (
	recomputeMinScore    float64
	recomputeConcurrency int
	recomputeJSONLogs    bool
	recomputeVerbose     bool
)

var recomputeCmd = &cobra.Command{
	Use:   "recompute-all",
	Short: "Recompute matches for all active users",
	Long: `Run the batch match computation across every active user, replacing
each user's stored match set. Intended to be run nightly from a scheduler.`,
	RunE: runRecomputeAll,
}

func init() {
	recomputeCmd.Flags().Float64Var(&recomputeMinScore, "min-score", batch.DefaultBatchMinScore, "Minimum score for a match to be stored")
	recomputeCmd.Flags().IntVar(&recomputeConcurrency, "concurrency", 0, "Users scored in parallel (default BATCH_CONCURRENCY, then 4)")
	recomputeCmd.Flags().BoolVar(&recomputeJSONLogs, "json-logs", false, "Emit JSON logs instead of console output")
	recomputeCmd.Flags().BoolVarP(&recomputeVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(recomputeCmd)
}

func runRecomputeAll(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(recomputeJSONLogs, recomputeVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	concurrency := recomputeConcurrency
	if concurrency <= 0 {
		if v := os.Getenv("BATCH_CONCURRENCY"); v != "" {
			concurrency, err = strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid BATCH_CONCURRENCY %q: %w", v, err)
			}
		}
	}

	service := batch.NewServiceWith(database, database, database, database, database, log, concurrency)
	report, err := service.ComputeMatchesForAllUsers(ctx, recomputeMinScore)
	if err != nil {
		return fmt.Errorf("batch computation failed: %w", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(out))

	if len(report.Errors) > 0 {
		return fmt.Errorf("%d user(s) failed during batch computation", len(report.Errors))
	}
	return nil
}
