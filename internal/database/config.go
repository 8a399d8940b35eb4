package database

import "fmt"

// Config holds save-store connection configuration.
type Config struct {
	// Driver specifies which backend to use: "sqlite" or "postgres".
	Driver DialectType

	// SQLite configuration.
	SQLitePath string

	// PostgreSQL configuration.
	Postgres PostgresConfig
}

// PostgresConfig holds PostgreSQL-specific connection settings.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DefaultConfig returns a Config using the SQLite backend at the given path.
func DefaultConfig(sqlitePath string) Config {
	return Config{
		Driver:     DialectSQLite,
		SQLitePath: sqlitePath,
	}
}

// DSN builds the driver connection string.
func (c Config) DSN() string {
	if c.Driver == DialectPostgres {
		sslMode := c.Postgres.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Postgres.Host, c.Postgres.Port, c.Postgres.User,
			c.Postgres.Password, c.Postgres.Database, sslMode)
	}
	return c.SQLitePath
}
