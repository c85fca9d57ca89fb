package sqldb

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies every pending up migration for db's dialect.
// url is the same database URL db was opened with; Postgres migrations run on
// a dedicated connection opened from it.
func Migrate(db *sqlx.DB, url string) error {
	switch db.DriverName() {
	case DriverSQLite:
		return migrateSQLite(db)
	case DriverPgx:
		return migratePostgres(url)
	default:
		return fmt.Errorf("no migrations for driver %q", db.DriverName())
	}
}

func migrateSQLite(db *sqlx.DB) error {
	src, err := iofs.New(migrationsFS, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("can't load sqlite migrations: %w", err)
	}
	defer src.Close()

	drv, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("can't init sqlite migration driver: %w", err)
	}

	// m is not closed: closing the driver would close the shared pool.
	m, err := migrate.NewWithInstance("iofs", src, DriverSQLite, drv)
	if err != nil {
		return fmt.Errorf("can't init migrator: %w", err)
	}
	return up(m)
}

func migratePostgres(url string) error {
	src, err := iofs.New(migrationsFS, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("can't load postgres migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, pgx5URL(url))
	if err != nil {
		return fmt.Errorf("can't init migrator: %w", err)
	}
	defer m.Close()

	return up(m)
}

func up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("can't apply migrations: %w", err)
	}
	return nil
}

// pgx5URL rewrites a postgres URL to the scheme golang-migrate's pgx/v5
// driver is registered under.
func pgx5URL(url string) string {
	for _, scheme := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(url, scheme) {
			return "pgx5://" + strings.TrimPrefix(url, scheme)
		}
	}
	return url
}
