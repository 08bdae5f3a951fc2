package stations

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads station records from a CSV file with a header row.
// Expected columns: stationId, name, nameEng, geoLat, geoLng, lineNameEng,
// lineColorHex, lineServiceName.
//
// Any malformed row or non-numeric coordinate is a fatal load error: the
// analysis must never run on a partially loaded network.
func LoadCSV(path string) ([]Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stations file: %w", err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]Station, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	idx := makeIndex(header)

	for _, col := range []string{"stationId", "geoLat", "geoLng"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var out []Station
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		lat, err := strconv.ParseFloat(getField(record, idx, "geoLat"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid geoLat %q", row, getField(record, idx, "geoLat"))
		}
		lng, err := strconv.ParseFloat(getField(record, idx, "geoLng"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid geoLng %q", row, getField(record, idx, "geoLng"))
		}

		out = append(out, Station{
			ID:        getField(record, idx, "stationId"),
			Name:      getField(record, idx, "name"),
			NameEng:   getField(record, idx, "nameEng"),
			Lat:       lat,
			Lng:       lng,
			LineName:  getField(record, idx, "lineNameEng"),
			LineColor: getField(record, idx, "lineColorHex"),
			Service:   getField(record, idx, "lineServiceName"),
		})
	}

	return out, nil
}

func makeIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func getField(record []string, idx map[string]int, field string) string {
	if i, ok := idx[field]; ok && i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}
