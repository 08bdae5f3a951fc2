package db

import (
	"context"
	"fmt"
	"time"

	"github.com/bkk-rail-3d/analyzer/internal/analysis"
)

// RunSummary is one row of the analysis run history.
type RunSummary struct {
	RunID           string    `json:"run_id"`
	GeneratedAt     time.Time `json:"generated_at"`
	StationCount    int       `json:"station_count"`
	BufferRadiusKm  float64   `json:"buffer_radius_km"`
	GapThresholdKm  float64   `json:"gap_threshold_km"`
	CoveredCells    int       `json:"covered_cells"`
	TotalCells      int       `json:"total_cells"`
	CoverageSqKm    float64   `json:"coverage_sqkm"`
	GapCount        int       `json:"gap_count"`
	DesertZoneCount int       `json:"desert_zone_count"`
	OutputPath      string    `json:"output_path"`
}

// InsertRun records a completed analysis run.
func (db *DB) InsertRun(ctx context.Context, res analysis.Result, outputPath string) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO analysis_runs (
			run_id, generated_at_utc, station_count, buffer_radius_km,
			gap_threshold_km, covered_cells, total_cells, coverage_sqkm,
			gap_count, desert_zone_count, output_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		res.RunID,
		res.GeneratedAt.UTC().Format(time.RFC3339),
		len(res.Stations),
		res.Params.BufferRadiusKm,
		res.Params.GapThresholdKm,
		res.Coverage.CoveredCells,
		res.Coverage.TotalCells,
		res.Coverage.AreaSqKm,
		len(res.Gaps),
		len(res.Zones),
		outputPath,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// ListRuns returns the run history, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.conn.QueryContext(ctx, `
		SELECT run_id, generated_at_utc, station_count, buffer_radius_km,
		       gap_threshold_km, covered_cells, total_cells, coverage_sqkm,
		       gap_count, desert_zone_count, output_path
		FROM analysis_runs
		ORDER BY generated_at_utc DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var generatedAt string
		if err := rows.Scan(&r.RunID, &generatedAt, &r.StationCount, &r.BufferRadiusKm,
			&r.GapThresholdKm, &r.CoveredCells, &r.TotalCells, &r.CoverageSqKm,
			&r.GapCount, &r.DesertZoneCount, &r.OutputPath); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, generatedAt); err == nil {
			r.GeneratedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRun returns a single run by ID, or (nil, nil) when it does not exist.
func (db *DB) GetRun(ctx context.Context, runID string) (*RunSummary, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT run_id, generated_at_utc, station_count, buffer_radius_km,
		       gap_threshold_km, covered_cells, total_cells, coverage_sqkm,
		       gap_count, desert_zone_count, output_path
		FROM analysis_runs
		WHERE run_id = ?
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var r RunSummary
	var generatedAt string
	if err := rows.Scan(&r.RunID, &generatedAt, &r.StationCount, &r.BufferRadiusKm,
		&r.GapThresholdKm, &r.CoveredCells, &r.TotalCells, &r.CoverageSqKm,
		&r.GapCount, &r.DesertZoneCount, &r.OutputPath); err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, generatedAt); err == nil {
		r.GeneratedAt = t
	}
	return &r, nil
}
