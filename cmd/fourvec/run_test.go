package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fourvec/fourvec/internal/config"
)

func TestRun_NoArgs(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := runWithOutput(nil, stdout, stderr)

	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}

	output := stdout.String()
	for _, want := range []string{"fourvec", "selftest", "eval", "history", "watch"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected help to contain %q, got %q", want, output)
		}
	}
}

func TestRun_Help(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"help", []string{"help"}},
		{"--help", []string{"--help"}},
		{"-h", []string{"-h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			code := runWithOutput(tt.args, stdout, stderr)

			if code != 0 {
				t.Errorf("expected exit code 0, got %d", code)
			}
			if !strings.Contains(stdout.String(), "Usage:") {
				t.Errorf("expected usage text, got %q", stdout.String())
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := runWithOutput([]string{"version"}, stdout, stderr)

	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("expected version %q in output, got %q", Version, stdout.String())
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := runWithOutput([]string{"unknown"}, stdout, stderr)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Errorf("expected error about unknown command, got %q", stderr.String())
	}
}

func TestRun_DirFlagRequiresValue(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := runWithOutput([]string{"--dir"}, stdout, stderr)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "--dir requires") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

// clearEnv unsets FOURVEC_* variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"FOURVEC_SEED", "FOURVEC_TRIALS", "FOURVEC_TOLERANCE", "FOURVEC_RENDER_TOLERANCE",
		"FOURVEC_DATABASE_URL", "FOURVEC_LOG_FORMAT", "FOURVEC_VERBOSE",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestRun_Selftest(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := runWithOutput([]string{"--dir", dir, "selftest", "-no-save"}, stdout, stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d\nstdout: %s\nstderr: %s", code, stdout.String(), stderr.String())
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected 8 check lines and a summary, got %d:\n%s", len(lines), stdout.String())
	}
	if !strings.HasPrefix(lines[0], "✓ [1/8] ") {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[8] != "✓. 8 passed, 0 failed." {
		t.Errorf("summary = %q", lines[8])
	}
}

func TestRun_SelftestExplicitSeed(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := runWithOutput([]string{"--dir=" + dir, "selftest", "-seed", "0x1234", "-trials", "4", "-no-save"}, stdout, stderr)

	if code != 0 {
		t.Fatalf("expected exit code 0, got %d\nstderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "seed=4660") {
		t.Errorf("expected log to record seed 4660, got %q", stderr.String())
	}
}

func TestRun_SelftestBadSeed(t *testing.T) {
	clearEnv(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := runWithOutput([]string{"--dir", t.TempDir(), "selftest", "-seed", "nope"}, stdout, stderr)

	if code != 2 {
		t.Errorf("expected exit code 2, got %d", code)
	}
}

func TestRun_SelftestSavesAndHistoryLists(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "runs.db")
	t.Setenv("FOURVEC_DATABASE_URL", "sqlite:"+dbPath)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	if code := runWithOutput([]string{"--dir", dir, "selftest"}, stdout, stderr); code != 0 {
		t.Fatalf("selftest exit code %d\nstderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "run_saved") {
		t.Errorf("expected run_saved log, got %q", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := runWithOutput([]string{"--dir", dir, "history", "-n", "5"}, stdout, stderr); code != 0 {
		t.Fatalf("history exit code %d\nstderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "seed=0xdeadbeef") {
		t.Errorf("expected default seed in history, got %q", out)
	}
	if !strings.Contains(out, "8 passed, 0 failed.") {
		t.Errorf("expected summary in history, got %q", out)
	}

	runID := strings.Fields(out)[0]
	stdout.Reset()
	if code := runWithOutput([]string{"--dir", dir, "history", "-run", runID}, stdout, stderr); code != 0 {
		t.Fatalf("history -run exit code %d\nstderr: %s", code, stderr.String())
	}
	if got := strings.Count(stdout.String(), "\n"); got != 8 {
		t.Errorf("expected 8 check lines, got %d:\n%s", got, stdout.String())
	}
}

func TestRun_HistoryWithoutDatabase(t *testing.T) {
	clearEnv(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := runWithOutput([]string{"--dir", t.TempDir(), "history"}, stdout, stderr)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "database_url") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestRun_Init(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	if code := runWithOutput([]string{"--dir", dir, "init"}, stdout, stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d\nstderr: %s", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, config.ConfigFilename)); err != nil {
		t.Fatalf("expected %s to exist: %v", config.ConfigFilename, err)
	}

	// A second init must not overwrite.
	stderr.Reset()
	if code := runWithOutput([]string{"--dir", dir, "init"}, stdout, stderr); code != 1 {
		t.Errorf("expected exit code 1 on second init, got %d", code)
	}
}

func TestRun_Eval(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		want     []string
	}{
		{
			name:     "norm only",
			args:     []string{"eval", "1", "2", "3", "4"},
			wantCode: 0,
			want:     []string{"vector:   (1; 2; 3; 4)", "interval: -28", "dot:      30"},
		},
		{
			name:     "boost",
			args:     []string{"eval", "5", "0", "0", "3", "-beta", "0.5"},
			wantCode: 0,
			want:     []string{"norm:     4", "boosted:  (7.505553499465"},
		},
		{
			name:     "negative components and flag first",
			args:     []string{"eval", "--beta=0", "-1", "0", "0", "0"},
			wantCode: 0,
			want:     []string{"vector:   (-1; 0; 0; 0)", "boosted:  (-1; 0; 0; 0)"},
		},
		{
			name:     "too few components",
			args:     []string{"eval", "1", "2"},
			wantCode: 2,
		},
		{
			name:     "not a number",
			args:     []string{"eval", "1", "2", "three", "4"},
			wantCode: 2,
		},
		{
			name:     "missing beta value",
			args:     []string{"eval", "1", "2", "3", "4", "-beta"},
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			code := runWithOutput(tt.args, stdout, stderr)

			if code != tt.wantCode {
				t.Fatalf("expected exit code %d, got %d\nstderr: %s", tt.wantCode, code, stderr.String())
			}
			for _, w := range tt.want {
				if !strings.Contains(stdout.String(), w) {
					t.Errorf("expected output to contain %q, got:\n%s", w, stdout.String())
				}
			}
		})
	}
}
