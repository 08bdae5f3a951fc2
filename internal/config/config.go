package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the analyzer tools
type Config struct {
	// Input / output
	StationsCSV  string
	DatabasePath string
	OutputPath   string

	// Analysis parameters
	BufferRadiusKm float64 // walkable catchment radius around each station
	GapThresholdKm float64 // transit-desert threshold between consecutive stations
	CellSizeKm     float64 // coverage grid resolution
	ReferenceLat   float64 // latitude the planar projection constants are computed for

	// Geometry output
	BufferRingPoints int
	DesertRingPoints int
	DesertRadiusKm   float64

	// Isolation scan
	IsolationStride int
	MaxDesertZones  int

	// Coverage scan parallelism (0 = one worker per CPU)
	Workers int
}

// Load reads configuration from environment variables with sensible defaults.
// Defaults match the Bangkok network the analyzer was built for.
func Load() *Config {
	return &Config{
		StationsCSV:  getEnv("STATIONS_CSV", "data/stations.csv"),
		DatabasePath: getEnv("SQLITE_DATABASE", ""),
		OutputPath:   getEnv("OUTPUT_GEOJSON", "coverage.geojson"),

		BufferRadiusKm: getEnvFloat("BUFFER_RADIUS_KM", 1.0),
		GapThresholdKm: getEnvFloat("GAP_THRESHOLD_KM", 5.0),
		CellSizeKm:     getEnvFloat("CELL_SIZE_KM", 0.1),
		ReferenceLat:   getEnvFloat("REFERENCE_LAT", 13.7),

		BufferRingPoints: getEnvInt("BUFFER_RING_POINTS", 64),
		DesertRingPoints: getEnvInt("DESERT_RING_POINTS", 48),
		DesertRadiusKm:   getEnvFloat("DESERT_RADIUS_KM", 2.0),

		IsolationStride: getEnvInt("ISOLATION_STRIDE", 5),
		MaxDesertZones:  getEnvInt("MAX_DESERT_ZONES", 10),

		Workers: getEnvInt("COVERAGE_WORKERS", 0),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
