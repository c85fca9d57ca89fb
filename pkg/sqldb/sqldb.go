// Package sqldb opens the relational store behind the item service and keeps
// its schema current.
package sqldb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Driver names registered with database/sql.
const (
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"
)

const (
	memoryPath      = ":memory:"
	sqliteDSNParams = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite"
	pingTimeout     = 5 * time.Second
)

func init() {
	// sqlx does not know modernc's driver name; it takes ? placeholders.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Config holds connection pool settings.
type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Target is a parsed database URL.
type Target struct {
	Driver string
	DSN    string
	// Path is the SQLite file path; empty for in-memory and non-SQLite targets.
	Path string
}

// ParseURL resolves a database URL into a driver and DSN.
//
// Accepted forms: sqlite:path, sqlite://path, sqlite::memory:,
// postgres://... and postgresql://...
func ParseURL(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return Target{}, fmt.Errorf("database url is empty")

	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return Target{Driver: DriverPgx, DSN: raw}, nil

	case strings.HasPrefix(raw, "sqlite:"):
		path := strings.TrimPrefix(raw, "sqlite:")
		path = strings.TrimPrefix(path, "//")
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}
		if path == "" {
			return Target{}, fmt.Errorf("sqlite url %q has no path", raw)
		}
		if path == memoryPath {
			return Target{Driver: DriverSQLite, DSN: memoryPath + "?" + sqliteDSNParams}, nil
		}
		return Target{Driver: DriverSQLite, DSN: path + "?" + sqliteDSNParams, Path: path}, nil

	default:
		return Target{}, fmt.Errorf("unsupported database url scheme in %q", redact(raw))
	}
}

// Open connects to the database described by cfg.URL and verifies the
// connection. For SQLite files the file and its directory are created first.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	target, err := ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if target.Path != "" {
		if err := ensureFile(target.Path); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Open(target.Driver, target.DSN)
	if err != nil {
		return nil, fmt.Errorf("can't open %s database: %w", target.Driver, err)
	}

	if target.Driver == DriverSQLite && target.Path == "" {
		// every :memory: connection is a separate database, so pin exactly one
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can't ping %s database: %w", target.Driver, err)
	}

	return db, nil
}

func ensureFile(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("can't create database directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("can't create database file: %w", err)
	}
	return f.Close()
}

func redact(raw string) string {
	if i := strings.Index(raw, "@"); i >= 0 {
		if j := strings.Index(raw, "://"); j >= 0 && j < i {
			return raw[:j+3] + "***" + raw[i:]
		}
	}
	return raw
}
