// migrate-to-postgres copies a SQLite save snapshot to PostgreSQL.
//
// Usage:
//
//	go run ./cmd/migrate-to-postgres \
//	    -sqlite data/deepcast.db \
//	    -pg-host localhost \
//	    -pg-port 5432 \
//	    -pg-user deepcast \
//	    -pg-password deepcast \
//	    -pg-database deepcast
package main

import (
	"flag"
	"log"

	"github.com/saltlinegames/deepcast/internal/database"
)

func main() {
	sqlitePath := flag.String("sqlite", "data/deepcast.db", "Path to SQLite save database")
	pgHost := flag.String("pg-host", "localhost", "PostgreSQL host")
	pgPort := flag.Int("pg-port", 5432, "PostgreSQL port")
	pgUser := flag.String("pg-user", "deepcast", "PostgreSQL user")
	pgPassword := flag.String("pg-password", "deepcast", "PostgreSQL password")
	pgDatabase := flag.String("pg-database", "deepcast", "PostgreSQL database name")
	pgSSLMode := flag.String("pg-sslmode", "disable", "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be migrated without making changes")
	flag.Parse()

	log.Println("SQLite to PostgreSQL save migration")

	log.Printf("Opening SQLite save: %s", *sqlitePath)
	src, err := database.Open(*sqlitePath)
	if err != nil {
		log.Fatalf("Failed to open SQLite save: %v", err)
	}
	defer src.Close()

	state, clock, err := src.LoadSnapshot()
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}
	if state == nil {
		log.Fatal("SQLite save holds no snapshot; nothing to migrate")
	}
	log.Printf("Snapshot loaded: level %d, %.2f gold, %d fish, %d quest logs",
		state.Level, state.Currency, len(state.Inventory), len(state.Quests))

	if *dryRun {
		log.Println("Dry run: snapshot not written")
		return
	}

	cfg := database.Config{
		Driver: database.DialectPostgres,
		Postgres: database.PostgresConfig{
			Host:     *pgHost,
			Port:     *pgPort,
			User:     *pgUser,
			Password: *pgPassword,
			Database: *pgDatabase,
			SSLMode:  *pgSSLMode,
		},
	}

	log.Printf("Opening PostgreSQL save: %s@%s:%d/%s", *pgUser, *pgHost, *pgPort, *pgDatabase)
	dst, err := database.OpenWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to open PostgreSQL save: %v", err)
	}
	defer dst.Close()

	if err := dst.SaveSnapshot(state, clock); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}
	log.Println("Migration complete")
}
