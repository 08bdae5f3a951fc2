// Package stations holds the rail station model, the CSV loader, and
// branch-aware grouping.
//
// Input order matters: the station file lists stations in physical sequence
// along each line, and gap detection treats "consecutive in input order" as
// "physically adjacent". That ordering is a property of the source data and
// is not verified here; a resorted input silently breaks adjacency.
package stations

// Station is a single rail station record. Stations are loaded once per run
// and never mutated.
type Station struct {
	ID        string  // e.g. "N8", "BL01"
	Name      string  // local (Thai) name
	NameEng   string  // transliterated name
	Lat       float64 // decimal degrees, WGS84
	Lng       float64
	LineName  string // e.g. "Sukhumvit Line"
	LineColor string // hex color, e.g. "#79BC43"
	Service   string // service tier name
}
