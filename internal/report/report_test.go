package report

import (
	"strings"
	"testing"

	"github.com/bkk-rail-3d/analyzer/internal/analysis"
	"github.com/bkk-rail-3d/analyzer/internal/stations"
)

func TestPrintSections(t *testing.T) {
	list := []stations.Station{
		{ID: "N1", NameEng: "First", LineName: "Green", Lat: 13.70, Lng: 100.50},
		{ID: "N2", NameEng: "Second", LineName: "Green", Lat: 13.72, Lng: 100.50},
		{ID: "N3", NameEng: "Third", LineName: "Green", Lat: 13.80, Lng: 100.50},
	}
	res := analysis.Run(list, analysis.DefaultParams())

	var buf strings.Builder
	Print(&buf, res)
	out := buf.String()

	for _, want := range []string{
		"TRANSIT COVERAGE SUMMARY",
		"Stations analysed     : 3",
		"TRANSIT DESERTS",
		"Second -> Third",
		"TRANSIT-ORIENTED DEVELOPMENT (TOD) RECOMMENDATIONS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestPrintNoGaps(t *testing.T) {
	list := []stations.Station{
		{ID: "N1", NameEng: "First", LineName: "Green", Lat: 13.70, Lng: 100.50},
		{ID: "N2", NameEng: "Second", LineName: "Green", Lat: 13.72, Lng: 100.50},
	}
	res := analysis.Run(list, analysis.DefaultParams())

	var buf strings.Builder
	Print(&buf, res)

	if !strings.Contains(buf.String(), "No consecutive gaps") {
		t.Error("report should state that no gaps were found")
	}
}
