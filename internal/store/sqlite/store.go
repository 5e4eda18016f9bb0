// Package sqlite implements the store interface on an embedded relational
// database: three normalized tables plus a join table, with foreign-key
// cascades doing the referential cleanup the local backend replicates by hand.
package sqlite

import (
	"database/sql"
	_ "embed"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"github.com/salonbook/salonbook-server/internal/domain"
	"github.com/salonbook/salonbook-server/internal/store"
)

//go:embed schema.sql
var schemaSQL string

// Store provides SQLite-backed persistence for the salonbook server.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates a new SQLite store at the given path.
// It configures WAL mode, sets pragmas, and runs schema migrations.
func Open(path string, logger *slog.Logger) (*Store, error) {
	// Pragmas go in the DSN so every pooled connection gets them; a plain
	// db.Exec("PRAGMA ...") would only configure whichever connection it
	// happens to land on, and foreign_keys is per-connection state.
	dsn := "file:" + path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, store.ErrPersistence.WithMessage("open sqlite").WithCause(err)
	}

	// Set connection pool to a small size (SQLite single-writer limitation).
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	// Run schema migration.
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, store.ErrPersistence.WithMessage("exec schema").WithCause(err)
	}

	if logger != nil {
		logger.Info("sqlite database opened", "path", path)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// formatDate formats a wall-clock timestamp for storage.
func formatDate(t domain.LocalTime) string {
	return t.Format(domain.Layout)
}

// parseDate parses a stored date back to a wall-clock timestamp.
func parseDate(s string) (domain.LocalTime, error) {
	return domain.ParseLocalTime(s)
}
