package db

import (
	"context"
	"fmt"

	"github.com/bkk-rail-3d/analyzer/internal/stations"
)

// ReplaceStations replaces the whole stations table with the given list,
// recording input order so a later load reproduces the branch sequence
// exactly.
func (db *DB) ReplaceStations(ctx context.Context, list []stations.Station) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM stations"); err != nil {
		return fmt.Errorf("failed to clear stations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stations (
			station_id, name, name_eng, geo_lat, geo_lng,
			line_name, line_color, service_name, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range list {
		if _, err := stmt.ExecContext(ctx,
			s.ID, s.Name, s.NameEng, s.Lat, s.Lng,
			s.LineName, s.LineColor, s.Service, i,
		); err != nil {
			return fmt.Errorf("failed to insert station %s: %w", s.ID, err)
		}
	}

	return tx.Commit()
}

// LoadStations returns all stations in their original input order.
func (db *DB) LoadStations(ctx context.Context) ([]stations.Station, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT station_id, name, name_eng, geo_lat, geo_lng,
		       line_name, line_color, service_name
		FROM stations
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	var out []stations.Station
	for rows.Next() {
		var s stations.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.NameEng, &s.Lat, &s.Lng,
			&s.LineName, &s.LineColor, &s.Service); err != nil {
			return nil, fmt.Errorf("failed to scan station: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
