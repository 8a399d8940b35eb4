package database

import (
	"fmt"
	"strings"
)

// Dialect abstracts the SQL syntax differences between the SQLite and
// PostgreSQL save-store backends.
type Dialect interface {
	// DriverName returns the driver name for sql.Open().
	DriverName() string

	// Placeholder returns the parameter placeholder for the given
	// 1-indexed position. SQLite: "?", PostgreSQL: "$1", "$2", ...
	Placeholder(position int) string

	// InitStatements returns backend-specific connection setup.
	InitStatements() []string
}

// DialectType identifies the database dialect.
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect creates a Dialect for the given type.
func NewDialect(dialectType DialectType) Dialect {
	switch dialectType {
	case DialectPostgres:
		return &PostgresDialect{}
	default:
		return &SQLiteDialect{}
	}
}

// rebind converts a query written with ? placeholders to the dialect's
// placeholder style.
func rebind(d Dialect, query string) string {
	if _, ok := d.(*SQLiteDialect); ok {
		return query
	}
	var b strings.Builder
	position := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			b.WriteString(d.Placeholder(position))
			position++
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}

// SQLiteDialect implements Dialect for the modernc.org/sqlite driver.
type SQLiteDialect struct{}

func (d *SQLiteDialect) DriverName() string { return "sqlite" }

func (d *SQLiteDialect) Placeholder(position int) string { return "?" }

func (d *SQLiteDialect) InitStatements() []string {
	return []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

// PostgresDialect implements Dialect for the lib/pq driver.
type PostgresDialect struct{}

func (d *PostgresDialect) DriverName() string { return "postgres" }

func (d *PostgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

func (d *PostgresDialect) InitStatements() []string {
	// Foreign keys are always on in PostgreSQL; nothing to set up.
	return nil
}
