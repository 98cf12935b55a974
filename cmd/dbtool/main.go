package main

import (
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"hosplanner/internal/adapters/audit"
	"hosplanner/internal/config"
	"hosplanner/internal/platform/db"
)

// dbtool initializes the Postgres schema backing the trip-plan audit log
// (internal/adapters/audit). It takes no seed data: the audit log, unlike
// the teacher's package repository, is write-only from the server and has
// nothing to seed ahead of time.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing audit schema...")
	if err := audit.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
