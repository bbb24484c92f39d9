package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Version is the fourvec version string.
var Version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches commands and returns an exit code.
func run(args []string) int {
	return runWithOutput(args, os.Stdout, os.Stderr)
}

// runWithOutput dispatches commands with custom output writers.
func runWithOutput(args []string, stdout, stderr io.Writer) int {
	// Parse global flags first
	var dir string
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--dir" {
			if i+1 >= len(args) {
				fmt.Fprintln(stderr, "error: --dir requires a path argument")
				return 1
			}
			dir = args[i+1]
			i++
			continue
		}
		if strings.HasPrefix(arg, "--dir=") {
			dir = strings.TrimPrefix(arg, "--dir=")
			continue
		}

		// Once we hit a non-global-flag argument, everything else is the command and its args
		remaining = args[i:]
		break
	}

	if len(remaining) == 0 {
		printHelp(stdout)
		return 0
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "help", "--help", "-h":
		printHelp(stdout)
		return 0

	case "version", "--version":
		fmt.Fprintf(stdout, "fourvec version %s\n", Version)
		return 0

	case "init":
		return runInit(dir, stdout, stderr)

	case "selftest":
		return runSelftest(cmdArgs, dir, stdout, stderr)

	case "eval":
		return runEval(cmdArgs, stdout, stderr)

	case "history":
		return runHistory(cmdArgs, dir, stdout, stderr)

	case "watch":
		return runWatch(cmdArgs, dir, stdout, stderr)

	default:
		fmt.Fprintf(stderr, "error: unknown command %q\n\n", cmd)
		printHelp(stderr)
		return 1
	}
}

// printHelp prints the top-level help message.
func printHelp(w io.Writer) {
	help := `fourvec - Minkowski four-vectors and their self-test

Usage:
  fourvec [--dir <path>] <command> [arguments]

Commands:
  init              Create fourvec.ini with default settings
  selftest          Run the randomized property checks
  eval t x y z      Print norm, dot and an optional boost of a vector
  history           List stored self-test runs
  watch             Rerun the self-test whenever fourvec.ini changes
  help              Show this help message
  version           Show version information

Global Flags:
  --dir <path>      Directory containing fourvec.ini (default: current directory)

Examples:
  fourvec selftest                        Run with the configured seed
  fourvec selftest -seed 0xDEADBEEF -v    Run with an explicit seed and debug logs
  fourvec eval 5 0 0 3 -beta 0.5          Boost (5; 0; 0; 3) along z
  fourvec history -n 5                    Show the five most recent runs

Environment:
  FOURVEC_SEED, FOURVEC_TRIALS, FOURVEC_TOLERANCE, FOURVEC_RENDER_TOLERANCE,
  FOURVEC_DATABASE_URL, FOURVEC_LOG_FORMAT, FOURVEC_VERBOSE override fourvec.ini.
`
	fmt.Fprint(w, help)
}
