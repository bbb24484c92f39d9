// Package reportdb persists self-test reports so runs can be compared over
// time. SQLite, PostgreSQL and MySQL are supported; the dialect is inferred
// from the database URL.
package reportdb

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/fourvec/fourvec/dburl"
	"github.com/fourvec/fourvec/selftest"
)

// Run is one stored self-test run.
type Run struct {
	ID        string
	Seed      uint32
	Trials    int
	Passed    int
	Failed    int
	CreatedAt time.Time
}

// Result is one stored check outcome within a run.
type Result struct {
	Ordinal  int
	Name     string
	Passed   bool
	Duration time.Duration
}

// Store reads and writes runs.
type Store struct {
	db      *sql.DB
	dialect string
}

// Open connects to databaseURL, verifies the connection and creates the
// tables if they are missing.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	dialect, err := dburl.InferDialect(databaseURL)
	if err != nil {
		return nil, err
	}

	driver, dsn, err := driverDSN(databaseURL, dialect)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", dialect, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", dialect, err)
	}

	s := &Store{db: db, dialect: dialect}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dialect returns the database dialect in use.
func (s *Store) Dialect() string {
	return s.dialect
}

func driverDSN(databaseURL, dialect string) (driver, dsn string, err error) {
	switch dialect {
	case dburl.DialectSQLite:
		return "sqlite", dburl.SQLitePath(databaseURL), nil
	case dburl.DialectPostgres:
		return "pgx", databaseURL, nil
	case dburl.DialectMySQL:
		dsn, err := MySQLDSN(databaseURL)
		if err != nil {
			return "", "", err
		}
		return "mysql", dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported dialect: %s", dialect)
	}
}

// MySQLDSN converts a mysql:// URL to a MySQL driver DSN.
// Format: user:password@tcp(host:port)/dbname
func MySQLDSN(mysqlURL string) (string, error) {
	u, err := url.Parse(mysqlURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", dburl.ErrInvalidURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host in %q", dburl.ErrInvalidURL, dburl.Redact(mysqlURL))
	}

	cfg := mysql.NewConfig()
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	if u.Port() == "" {
		cfg.Addr = u.Host + ":3306"
	}
	cfg.DBName = strings.TrimPrefix(u.Path, "/")
	return cfg.FormatDSN(), nil
}

const (
	runsTable    = "fourvec_runs"
	resultsTable = "fourvec_results"
)

func (s *Store) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ` + runsTable + ` (
			id VARCHAR(36) PRIMARY KEY,
			seed BIGINT NOT NULL,
			trials INTEGER NOT NULL,
			passed INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			created_at BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ` + resultsTable + ` (
			run_id VARCHAR(36) NOT NULL,
			ordinal INTEGER NOT NULL,
			name VARCHAR(255) NOT NULL,
			passed BOOLEAN NOT NULL,
			duration_us BIGINT NOT NULL,
			PRIMARY KEY (run_id, ordinal)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// rebind rewrites '?' placeholders to the dialect's form.
func (s *Store) rebind(query string) string {
	if s.dialect != dburl.DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// SaveRun stores rep and its results in one transaction and returns the new
// run ID.
func (s *Store) SaveRun(ctx context.Context, rep selftest.Report) (string, error) {
	id := uuid.NewString()

	created := rep.StartedAt
	if created.IsZero() {
		created = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		s.rebind(`INSERT INTO `+runsTable+` (id, seed, trials, passed, failed, created_at) VALUES (?, ?, ?, ?, ?, ?)`),
		id, int64(rep.Seed), rep.Trials, rep.Passed, rep.Failed, created.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	insertResult := s.rebind(`INSERT INTO ` + resultsTable + ` (run_id, ordinal, name, passed, duration_us) VALUES (?, ?, ?, ?, ?)`)
	for i, r := range rep.Results {
		if _, err := tx.ExecContext(ctx, insertResult, id, i+1, r.Name, r.Passed, r.Duration.Microseconds()); err != nil {
			return "", fmt.Errorf("failed to insert result %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// Runs returns up to limit runs, newest first.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT id, seed, trials, passed, failed, created_at FROM `+runsTable+` ORDER BY created_at DESC, id LIMIT ?`),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			seed    int64
			created int64
		)
		if err := rows.Scan(&r.ID, &seed, &r.Trials, &r.Passed, &r.Failed, &created); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Seed = uint32(seed)
		r.CreatedAt = time.Unix(0, created)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the check outcomes of a run in execution order.
func (s *Store) Results(ctx context.Context, runID string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT ordinal, name, passed, duration_us FROM `+resultsTable+` WHERE run_id = ? ORDER BY ordinal`),
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r  Result
			us int64
		)
		if err := rows.Scan(&r.Ordinal, &r.Name, &r.Passed, &us); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		r.Duration = time.Duration(us) * time.Microsecond
		results = append(results, r)
	}
	return results, rows.Err()
}
