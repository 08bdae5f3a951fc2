package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/bkk-rail-3d/analyzer/internal/config"
	"github.com/bkk-rail-3d/analyzer/internal/db"
	"github.com/bkk-rail-3d/analyzer/internal/stations"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	dataPath := flag.String("data", cfg.StationsCSV, "Path to stations CSV")
	dbPath := flag.String("db", cfg.DatabasePath, "Path to SQLite database")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("-db (or SQLITE_DATABASE) is required")
	}

	list, err := stations.LoadCSV(*dataPath)
	if err != nil {
		log.Fatalf("Failed to load stations: %v", err)
	}
	log.Printf("Parsed %d stations from %s", len(list), *dataPath)

	database, err := db.Connect(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	if err := database.ReplaceStations(ctx, list); err != nil {
		log.Fatalf("Failed to import stations: %v", err)
	}

	log.Printf("Imported %d stations into %s", len(list), *dbPath)
}
