// Package dburl interprets the database URLs accepted in the [report] section.
package dburl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Supported database dialects
const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite"
)

var (
	ErrUnknownDialect = errors.New("unknown database dialect")
	ErrInvalidURL     = errors.New("invalid database URL")
)

// InferDialect returns the dialect ("postgres", "mysql", or "sqlite")
// based on the URL scheme.
func InferDialect(dbURL string) (string, error) {
	u, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "postgres", "postgresql":
		return DialectPostgres, nil
	case "mysql":
		return DialectMySQL, nil
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, scheme)
	}
}

// BuildSQLiteURL constructs a SQLite connection URL.
// Format: sqlite:///abs/path.db or sqlite:rel/path.db
func BuildSQLiteURL(path string) string {
	if strings.HasPrefix(path, "/") {
		return "sqlite://" + path
	}
	return "sqlite:" + path
}

// SQLitePath extracts the file path from a SQLite URL.
func SQLitePath(sqliteURL string) string {
	for _, prefix := range []string{"sqlite3://", "sqlite://", "sqlite3:", "sqlite:"} {
		if len(sqliteURL) > len(prefix) && strings.EqualFold(sqliteURL[:len(prefix)], prefix) {
			return sqliteURL[len(prefix):]
		}
	}
	return sqliteURL
}

// Redact returns dbURL with any password replaced, for logging.
func Redact(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil {
		return "<invalid url>"
	}
	return u.Redacted()
}
