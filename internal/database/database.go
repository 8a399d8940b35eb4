// Package database persists whole-state save snapshots to SQLite (default)
// or PostgreSQL.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Store wraps the database connection and provides snapshot operations.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open opens or creates the SQLite save store at the given path.
func Open(path string) (*Store, error) {
	return OpenWithConfig(DefaultConfig(path))
}

// OpenWithConfig opens a save store using the configured backend.
func OpenWithConfig(cfg Config) (*Store, error) {
	dialect := NewDialect(cfg.Driver)

	if cfg.Driver == DialectSQLite {
		dir := filepath.Dir(cfg.SQLitePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create save directory: %w", err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open save store: %w", err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize save store: %w", err)
		}
	}

	s := &Store{db: db, dialect: dialect}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the snapshot schema if it doesn't exist.
func (s *Store) migrate() error {
	migrations := []string{
		// Single-row player aggregate.
		`CREATE TABLE IF NOT EXISTS player (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			currency REAL NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			xp INTEGER NOT NULL DEFAULT 0,
			current_zone TEXT NOT NULL DEFAULT 'Lake',
			items TEXT NOT NULL DEFAULT '[]',
			clock_hour INTEGER NOT NULL DEFAULT 0,
			event TEXT NOT NULL DEFAULT 'Nothing'
		)`,

		// One row per caught fish instance.
		`CREATE TABLE IF NOT EXISTS inventory (
			id TEXT PRIMARY KEY,
			species TEXT NOT NULL,
			rarity INTEGER NOT NULL,
			weight REAL NOT NULL,
			value REAL NOT NULL,
			zone TEXT NOT NULL
		)`,

		// Per-zone per-species discovery log.
		`CREATE TABLE IF NOT EXISTS discovery (
			zone TEXT NOT NULL,
			species TEXT NOT NULL,
			count INTEGER NOT NULL,
			max_weight REAL NOT NULL,
			max_value REAL NOT NULL,
			PRIMARY KEY (zone, species)
		)`,

		// Per-zone quest log as JSON, one row per unlocked zone.
		`CREATE TABLE IF NOT EXISTS quest_logs (
			zone TEXT PRIMARY KEY,
			log TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// DB returns the underlying sql.DB for advanced operations.
func (s *Store) DB() *sql.DB {
	return s.db
}
