// Package config provides unified configuration loading from fourvec.ini and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/fourvec/fourvec/dburl"
	"github.com/fourvec/fourvec/inifile"
	"github.com/fourvec/fourvec/logging"
	"github.com/fourvec/fourvec/project"
	"github.com/fourvec/fourvec/selftest"
)

// ConfigFilename is the name of the config file.
const ConfigFilename = "fourvec.ini"

// ErrInvalidValue is wrapped by every validation error.
var ErrInvalidValue = errors.New("invalid configuration value")

// Seed is a generator seed. It accepts decimal or 0x-prefixed hex text.
type Seed uint32

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seed) UnmarshalText(b []byte) error {
	n, err := strconv.ParseUint(strings.TrimSpace(string(b)), 0, 32)
	if err != nil {
		return fmt.Errorf("%w: seed %q: %v", ErrInvalidValue, b, err)
	}
	*s = Seed(n)
	return nil
}

// Config holds the complete configuration.
type Config struct {
	// Path is the config file that was read, or "" when none was found.
	Path string

	Selftest SelftestConfig `envPrefix:"FOURVEC_"`
	Report   ReportConfig   `envPrefix:"FOURVEC_"`
	Log      LogConfig      `envPrefix:"FOURVEC_"`
}

// SelftestConfig holds settings from the [selftest] section.
type SelftestConfig struct {
	Seed            Seed    `env:"SEED"`
	Trials          int     `env:"TRIALS"`
	Tolerance       float64 `env:"TOLERANCE"`
	RenderTolerance float64 `env:"RENDER_TOLERANCE"`
}

// ReportConfig holds settings from the [report] section.
type ReportConfig struct {
	// DatabaseURL selects the run-history store. Empty disables persistence.
	DatabaseURL string `env:"DATABASE_URL"`
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Format  string `env:"LOG_FORMAT"`
	Verbose bool   `env:"VERBOSE"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	opts := selftest.DefaultOptions()
	return &Config{
		Selftest: SelftestConfig{
			Seed:            Seed(selftest.DefaultSeed),
			Trials:          opts.Trials,
			Tolerance:       opts.Tolerance,
			RenderTolerance: opts.RenderTolerance,
		},
		Log: LogConfig{Format: logging.FormatText},
	}
}

// Options converts the [selftest] settings for selftest.Cases.
func (c *Config) Options() selftest.Options {
	return selftest.Options{
		Trials:          c.Selftest.Trials,
		Tolerance:       c.Selftest.Tolerance,
		RenderTolerance: c.Selftest.RenderTolerance,
	}
}

// Load reads fourvec.ini from the given directory, then applies FOURVEC_*
// environment overrides. A missing file is not an error. When dir is empty the
// nearest fourvec.ini at or above the working directory is used.
func Load(dir string) (*Config, error) {
	if dir == "" {
		var err error
		dir, err = project.FindUpFromCwd(ConfigFilename)
		if errors.Is(err, project.ErrNotFound) {
			dir, err = os.Getwd()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	cfg := Default()

	iniPath := filepath.Join(dir, ConfigFilename)
	f, err := inifile.ParseFile(iniPath)
	switch {
	case err == nil:
		cfg.Path = iniPath
		if err := parseFile(f, cfg); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFilename, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Report.DatabaseURL = resolveSQLite(cfg.Report.DatabaseURL, dir)
	return cfg, nil
}

// resolveSQLite makes a relative SQLite path relative to the config directory.
func resolveSQLite(databaseURL, dir string) string {
	if databaseURL == "" {
		return databaseURL
	}
	if d, err := dburl.InferDialect(databaseURL); err != nil || d != dburl.DialectSQLite {
		return databaseURL
	}
	path := dburl.SQLitePath(databaseURL)
	if path == "" || path == ":memory:" || filepath.IsAbs(path) {
		return databaseURL
	}
	return dburl.BuildSQLiteURL(filepath.Join(dir, path))
}

func parseFile(f *inifile.File, cfg *Config) error {
	if v, ok := f.Lookup("selftest", "seed"); ok && v != "" {
		if err := cfg.Selftest.Seed.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("%s: selftest.seed: %w", ConfigFilename, err)
		}
	}

	if v, ok, err := f.Int("selftest", "trials"); err != nil {
		return fmt.Errorf("%s: %w: %v", ConfigFilename, ErrInvalidValue, err)
	} else if ok {
		cfg.Selftest.Trials = v
	}

	if v, ok, err := f.Float("selftest", "tolerance"); err != nil {
		return fmt.Errorf("%s: %w: %v", ConfigFilename, ErrInvalidValue, err)
	} else if ok {
		cfg.Selftest.Tolerance = v
	}

	if v, ok, err := f.Float("selftest", "render_tolerance"); err != nil {
		return fmt.Errorf("%s: %w: %v", ConfigFilename, ErrInvalidValue, err)
	} else if ok {
		cfg.Selftest.RenderTolerance = v
	}

	if v := f.Get("report", "database_url"); v != "" {
		cfg.Report.DatabaseURL = v
	}

	if v := f.Get("log", "format"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := f.Get("log", "verbose"); v != "" {
		b, err := parseBool(v, "log.verbose")
		if err != nil {
			return err
		}
		cfg.Log.Verbose = b
	}

	return nil
}

// Validate checks value ranges and the database URL scheme.
func (c *Config) Validate() error {
	if c.Selftest.Trials <= 0 {
		return fmt.Errorf("%w: selftest.trials must be positive, got %d", ErrInvalidValue, c.Selftest.Trials)
	}
	if c.Selftest.Tolerance <= 0 {
		return fmt.Errorf("%w: selftest.tolerance must be positive, got %v", ErrInvalidValue, c.Selftest.Tolerance)
	}
	if c.Selftest.RenderTolerance <= 0 {
		return fmt.Errorf("%w: selftest.render_tolerance must be positive, got %v", ErrInvalidValue, c.Selftest.RenderTolerance)
	}

	switch c.Log.Format {
	case logging.FormatText, logging.FormatJSON, logging.FormatPretty:
	default:
		return fmt.Errorf("%w: log.format must be text, json or pretty, got %q", ErrInvalidValue, c.Log.Format)
	}

	if c.Report.DatabaseURL != "" {
		if _, err := dburl.InferDialect(c.Report.DatabaseURL); err != nil {
			return fmt.Errorf("%w: report.database_url: %v", ErrInvalidValue, err)
		}
	}
	return nil
}

// WriteDefault creates fourvec.ini in dir with the default settings.
// It refuses to overwrite an existing file.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, ConfigFilename)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}

	d := Default()
	f := &inifile.File{}
	f.Set("selftest", "seed", fmt.Sprintf("%#x", uint32(d.Selftest.Seed)))
	f.Set("selftest", "trials", strconv.Itoa(d.Selftest.Trials))
	f.Set("selftest", "tolerance", strconv.FormatFloat(d.Selftest.Tolerance, 'g', -1, 64))
	f.Set("selftest", "render_tolerance", strconv.FormatFloat(d.Selftest.RenderTolerance, 'g', -1, 64))
	f.Set("report", "database_url", dburl.BuildSQLiteURL("fourvec.db"))
	f.Set("log", "format", d.Log.Format)

	if err := f.WriteFile(path); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", ConfigFilename, err)
	}
	return path, nil
}

func parseBool(s, key string) (bool, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%s: %w: %s: %q (expected true/false/1/0)", ConfigFilename, ErrInvalidValue, key, s)
	}
}
