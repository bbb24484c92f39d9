package project

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no ancestor directory contains the file.
var ErrNotFound = errors.New("file not found in any parent directory")

// FindUp walks up from startDir looking for a file called name.
// Returns the directory containing it, or ErrNotFound.
func FindUp(startDir, name string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if HasFile(dir, name) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNotFound
		}
		dir = parent
	}
}

// FindUpFromCwd is FindUp starting at the current working directory.
func FindUpFromCwd(name string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindUp(cwd, name)
}

// HasFile reports whether dir contains a regular file called name.
func HasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.Mode().IsRegular()
}
