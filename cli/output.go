package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Markers printed next to check results.
const (
	PassMarker = "✓"
	FailMarker = "✗"
)

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// Color reports whether stdout is a terminal and NO_COLOR is unset.
func Color() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Successf writes a formatted success message to w.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, PassMarker+" "+format+"\n", args...)
}

// Warnf writes a formatted warning message to w.
func Warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "warning: "+format+"\n", args...)
}

// Errorf writes a formatted error message to w.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "error: "+format+"\n", args...)
}

func marker(passed, color bool) string {
	m, c := FailMarker, ansiRed
	if passed {
		m, c = PassMarker, ansiGreen
	}
	if !color {
		return m
	}
	return c + m + ansiReset
}

// CheckLine formats one self-test line: marker, running count and name.
func CheckLine(index, total int, name string, passed, color bool) string {
	return fmt.Sprintf("%s [%d/%d] %s", marker(passed, color), index, total, name)
}

// SummaryLine formats the closing self-test line, for example
// "✓. 8 passed, 0 failed.". The pass marker is used only when nothing failed.
func SummaryLine(passed, failed int, color bool) string {
	return fmt.Sprintf("%s. %d passed, %d failed.", marker(failed == 0, color), passed, failed)
}

// PrintCheck writes a CheckLine to w.
func PrintCheck(w io.Writer, index, total int, name string, passed, color bool) {
	fmt.Fprintln(w, CheckLine(index, total, name, passed, color))
}

// PrintSummary writes a SummaryLine to w.
func PrintSummary(w io.Writer, passed, failed int, color bool) {
	fmt.Fprintln(w, SummaryLine(passed, failed, color))
}
