// Package main applies or rolls back the Postgres schema.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run ./cmd/migrate up
//	go run ./cmd/migrate --database-url postgres://... down
package main

import (
	"fmt"
	"os"

	"github.com/listenupapp/shelves-server/internal/config"
	"github.com/listenupapp/shelves-server/internal/store/sqlstore"
)

func main() {
	cfg, args, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: migrate [flags] up|down")
		os.Exit(2)
	}

	if cfg.Database.PostgresDSN == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required; SQLite applies its schema on open")
		os.Exit(2)
	}

	if err := sqlstore.MigratePostgres(cfg.Database.PostgresDSN, args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Migration %s complete\n", args[0])
}
