package sqlstore

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"item-api/internal/item/repository"
	"item-api/pkg/log"
)

type implRepository struct {
	db  *sqlx.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQL-backed Repository for the item domain. The dialect
// (SQLite or Postgres) follows db's driver.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/sqlstore: db is required")
	}
	return &implRepository{
		db:  db,
		l:   l,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/sqlstore.%s", method)
}
