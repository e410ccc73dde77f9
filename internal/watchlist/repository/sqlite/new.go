package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"financial-agent/internal/watchlist/repository"
	"financial-agent/pkg/log"
)

const driverName = "sqlite3"

const schema = `
CREATE TABLE IF NOT EXISTS watchlist_items (
	id       TEXT PRIMARY KEY,
	user_id  INTEGER NOT NULL,
	symbol   TEXT NOT NULL,
	notes    TEXT NOT NULL DEFAULT '',
	added_at TIMESTAMP NOT NULL,
	UNIQUE (user_id, symbol)
);
CREATE INDEX IF NOT EXISTS idx_watchlist_items_user ON watchlist_items (user_id, added_at);`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Open opens the SQLite database at path. ":memory:" gives a private
// in-memory database bound to a single connection.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	if path == ":memory:" {
		dsn = ":memory:"
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}
	// SQLite serializes writers; one connection also keeps :memory: stable.
	db.SetMaxOpenConns(1)
	return db, nil
}

// New creates a SQLite-backed Repository for the watchlist domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("watchlist/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates the watchlist schema when it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("watchlist/repository/sqlite.%s", method)
}
