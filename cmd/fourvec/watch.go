package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fourvec/fourvec/cli"
	"github.com/fourvec/fourvec/internal/config"
	"github.com/fourvec/fourvec/internal/watch"
)

// runWatch implements "fourvec watch".
func runWatch(args []string, dir string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		cli.Errorf(stderr, "watch takes no arguments")
		return 2
	}

	cfg, err := config.Load(dir)
	if err != nil {
		cli.Errorf(stderr, "failed to load config: %v", err)
		return 1
	}
	logger := newLogger(cfg, stderr)

	path := cfg.Path
	if path == "" {
		base := dir
		if base == "" {
			base = "."
		}
		path = filepath.Join(base, config.ConfigFilename)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = watch.Watch(ctx, path, func(ctx context.Context) error {
		cfg, err := config.Load(dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout)
		executeSelftest(ctx, cfg, true, stdout, stderr, logger)
		return nil
	}, logger)
	if err != nil {
		cli.Errorf(stderr, "%v", err)
		return 1
	}
	return 0
}
