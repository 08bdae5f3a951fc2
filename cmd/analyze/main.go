package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/bkk-rail-3d/analyzer/internal/analysis"
	"github.com/bkk-rail-3d/analyzer/internal/config"
	"github.com/bkk-rail-3d/analyzer/internal/db"
	"github.com/bkk-rail-3d/analyzer/internal/geojson"
	"github.com/bkk-rail-3d/analyzer/internal/report"
	"github.com/bkk-rail-3d/analyzer/internal/stations"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	dataPath := flag.String("data", cfg.StationsCSV, "Path to stations CSV")
	dbPath := flag.String("db", cfg.DatabasePath, "Path to SQLite database (optional)")
	outPath := flag.String("out", cfg.OutputPath, "Path for the generated GeoJSON document")
	fromDB := flag.Bool("from-db", false, "Load stations from the SQLite database instead of CSV")
	flag.Parse()

	var database *db.DB
	if *dbPath != "" {
		var err error
		database, err = db.Connect(*dbPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer database.Close()

		if err := database.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
	}

	// Load errors are fatal: no geometry is computed and no output is
	// written from a partially loaded network.
	var list []stations.Station
	var err error
	if *fromDB {
		if database == nil {
			log.Fatal("-from-db requires -db (or SQLITE_DATABASE)")
		}
		list, err = database.LoadStations(context.Background())
	} else {
		list, err = stations.LoadCSV(*dataPath)
	}
	if err != nil {
		log.Fatalf("Failed to load stations: %v", err)
	}
	log.Printf("Loaded %d stations", len(list))

	params := analysis.Params{
		BufferRadiusKm:   cfg.BufferRadiusKm,
		GapThresholdKm:   cfg.GapThresholdKm,
		CellSizeKm:       cfg.CellSizeKm,
		ReferenceLat:     cfg.ReferenceLat,
		BufferRingPoints: cfg.BufferRingPoints,
		DesertRingPoints: cfg.DesertRingPoints,
		DesertRadiusKm:   cfg.DesertRadiusKm,
		IsolationStride:  cfg.IsolationStride,
		MaxDesertZones:   cfg.MaxDesertZones,
		Workers:          cfg.Workers,
	}

	res := analysis.Run(list, params)
	log.Printf("Coverage: %d/%d cells (%.2f sq km), %d gaps, %d desert zones",
		res.Coverage.CoveredCells, res.Coverage.TotalCells, res.Coverage.AreaSqKm,
		len(res.Gaps), len(res.Zones))

	doc := geojson.Assemble(res)
	if err := geojson.Write(doc, *outPath); err != nil {
		log.Fatalf("Failed to write GeoJSON: %v", err)
	}
	log.Printf("GeoJSON written to %s (%d features)", *outPath, len(doc.Features))

	if database != nil {
		if err := database.InsertRun(context.Background(), res, *outPath); err != nil {
			log.Printf("Warning: failed to record run: %v", err)
		}
	}

	report.Print(os.Stdout, res)
}
