package main

import (
	"io"

	"github.com/fourvec/fourvec/cli"
	"github.com/fourvec/fourvec/internal/config"
)

// runInit writes a default fourvec.ini.
func runInit(dir string, stdout, stderr io.Writer) int {
	if dir == "" {
		dir = "."
	}
	path, err := config.WriteDefault(dir)
	if err != nil {
		cli.Errorf(stderr, "%v", err)
		return 1
	}
	cli.Successf(stdout, "created %s", path)
	return 0
}
