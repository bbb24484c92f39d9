package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/fourvec/fourvec/cli"
	"github.com/fourvec/fourvec/internal/config"
	"github.com/fourvec/fourvec/internal/reportdb"
)

// runHistory implements "fourvec history".
func runHistory(args []string, dir string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(stderr)
	limit := fs.Int("n", 20, "number of runs to list")
	runID := fs.String("run", "", "show the checks of one run")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(dir)
	if err != nil {
		cli.Errorf(stderr, "failed to load config: %v", err)
		return 1
	}
	if cfg.Report.DatabaseURL == "" {
		cli.Errorf(stderr, "report.database_url is not configured\n  Set it in %s or FOURVEC_DATABASE_URL", config.ConfigFilename)
		return 1
	}

	ctx := context.Background()
	store, err := reportdb.Open(ctx, cfg.Report.DatabaseURL)
	if err != nil {
		cli.Errorf(stderr, "failed to open report store: %v", err)
		return 1
	}
	defer store.Close()

	if *runID != "" {
		results, err := store.Results(ctx, *runID)
		if err != nil {
			cli.Errorf(stderr, "%v", err)
			return 1
		}
		if len(results) == 0 {
			cli.Errorf(stderr, "no checks stored for run %s", *runID)
			return 1
		}
		for _, r := range results {
			cli.PrintCheck(stdout, r.Ordinal, len(results), fmt.Sprintf("%s (%v)", r.Name, r.Duration), r.Passed, false)
		}
		return 0
	}

	runs, err := store.Runs(ctx, *limit)
	if err != nil {
		cli.Errorf(stderr, "%v", err)
		return 1
	}
	if len(runs) == 0 {
		fmt.Fprintln(stdout, "no runs stored")
		return 0
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "%s  %s  seed=%#08x  trials=%d  %s\n",
			r.ID, r.CreatedAt.UTC().Format(time.RFC3339), r.Seed, r.Trials,
			cli.SummaryLine(r.Passed, r.Failed, false))
	}
	return 0
}
