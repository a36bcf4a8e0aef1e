// Command matchctl runs the cycle-matching engine over a JSON snapshot of
// teacher records read from disk, and writes the resulting matches to
// stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cycleswap/matcher/collab"
	"github.com/cycleswap/matcher/engine"
	"github.com/cycleswap/matcher/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath string
		maxLen    int
		parallel  bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "matchctl",
		Short: "Find teacher transfer cycles over a JSON snapshot of teacher records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(inputPath, maxLen, parallel, verbose)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a JSON array of teacher records (required)")
	cmd.Flags().IntVar(&maxLen, "max-cycle-length", 10, "largest trade cycle to search for")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "process eligibility classes concurrently")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "emit structured logs to stderr")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func run(inputPath string, maxLen int, parallel, verbose bool) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("matchctl: reading %s: %w", inputPath, err)
	}

	var teachers []model.Teacher
	if err := json.Unmarshal(raw, &teachers); err != nil {
		return fmt.Errorf("matchctl: parsing teacher snapshot: %w", err)
	}
	store := collab.NewInMemoryTeacherStore(teachers)

	ctx := context.Background()
	snapshot, err := store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("matchctl: snapshot: %w", err)
	}

	logger := zap.NewNop()
	if verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("matchctl: building logger: %w", err)
		}
	}
	defer func() { _ = logger.Sync() }()

	e := engine.New(
		engine.WithLogger(logger),
		engine.WithMaxCycleLength(maxLen),
		engine.WithParallelClasses(parallel),
	)

	results, err := e.FindMatches(ctx, snapshot)
	if err != nil {
		return fmt.Errorf("matchctl: find_matches: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}
