package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/fourvec/fourvec/cli"
	"github.com/fourvec/fourvec/dburl"
	"github.com/fourvec/fourvec/internal/config"
	"github.com/fourvec/fourvec/internal/reportdb"
	"github.com/fourvec/fourvec/logging"
	"github.com/fourvec/fourvec/proptest"
	"github.com/fourvec/fourvec/selftest"
)

// runSelftest implements "fourvec selftest".
func runSelftest(args []string, dir string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("selftest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.String("seed", "", "generator seed, decimal or 0x hex (0 picks a time-based seed)")
	trials := fs.Int("trials", 0, "trials per check")
	verbose := fs.Bool("v", false, "debug logging")
	noSave := fs.Bool("no-save", false, "do not store the run")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(dir)
	if err != nil {
		cli.Errorf(stderr, "failed to load config: %v", err)
		return 1
	}

	if *seed != "" {
		if err := cfg.Selftest.Seed.UnmarshalText([]byte(*seed)); err != nil {
			cli.Errorf(stderr, "-seed: %v", err)
			return 2
		}
	}
	if *trials > 0 {
		cfg.Selftest.Trials = *trials
	}
	if *verbose {
		cfg.Log.Verbose = true
	}

	logger := newLogger(cfg, stderr)
	rep := executeSelftest(context.Background(), cfg, !*noSave, stdout, stderr, logger)
	if !rep.OK() {
		return 1
	}
	return 0
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Log.Verbose {
		level = slog.LevelDebug
	}
	logger, err := logging.New(cfg.Log.Format, w, level)
	if err != nil {
		// Validated by config.Load.
		return logging.Discard
	}
	return logger
}

// executeSelftest runs every check, prints one line per check and the
// summary, and stores the report when persistence is configured and save is
// set. Storage failures are reported as warnings.
func executeSelftest(ctx context.Context, cfg *config.Config, save bool, stdout, stderr io.Writer, logger *slog.Logger) selftest.Report {
	color := stdout == io.Writer(os.Stdout) && cli.Color()
	g := proptest.New(uint32(cfg.Selftest.Seed))
	cases := selftest.Cases(cfg.Options())

	logger.Debug("selftest_started", "seed", g.Seed(), "trials", cfg.Selftest.Trials, "checks", len(cases))

	rep := selftest.Run(g, cfg.Selftest.Trials, cases, func(index, total int, res selftest.Result) {
		cli.PrintCheck(stdout, index, total, res.Name, res.Passed, color)
		logger.Debug("check_finished", "check", res.Name, "passed", res.Passed, "duration", res.Duration)
	})
	cli.PrintSummary(stdout, rep.Passed, rep.Failed, color)

	logger.Info("selftest_finished", "seed", rep.Seed, "trials", rep.Trials, "passed", rep.Passed, "failed", rep.Failed)

	if !save || cfg.Report.DatabaseURL == "" {
		return rep
	}

	store, err := reportdb.Open(ctx, cfg.Report.DatabaseURL)
	if err != nil {
		cli.Warnf(stderr, "failed to open report store: %v", err)
		return rep
	}
	defer store.Close()

	id, err := store.SaveRun(ctx, rep)
	if err != nil {
		cli.Warnf(stderr, "failed to save run: %v", err)
		return rep
	}
	logger.Info("run_saved", "run_id", id, "database", dburl.Redact(cfg.Report.DatabaseURL))
	return rep
}
