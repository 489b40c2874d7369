package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lac-hong-legacy/guestbook_api/seed/seeders"
	"github.com/lac-hong-legacy/guestbook_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, none")
		dbPath   = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	databasePath := *dbPath
	if databasePath == "" {
		databasePath = os.Getenv("DB_DATABASE")
		if databasePath == "" {
			databasePath = "guestbook.db"
		}
	}

	store := &services.SqliteService{}
	if err := store.Open(databasePath); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Shutdown()

	log.Printf("Connected to database: %s", databasePath)

	mainSeeder := seeders.NewMainSeeder(store)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(context.Background()); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "none":
		log.Println("Schema migrated, no data seeded")
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all' or 'none'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func showHelp() {
	log.Print(`
Database Seeding Tool for the Portfolio Guestbook

Usage: go run ./seed [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, none
  -db string
        SQLite database path (overrides DB_DATABASE environment variable)
  -help
        Show this help message

Environment Variables:
  DB_DATABASE - Default database path (default: guestbook.db)
`)
}
