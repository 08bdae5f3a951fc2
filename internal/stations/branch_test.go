package stations

import "testing"

func TestBranchPrefix(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"N8", "N"},
		{"N24", "N"},
		{"E1", "E"},
		{"BL01", "BL"},
		{"PP16", "PP"},
		{"CEN", "CEN"},
		{"A1", "A"},
		{"101", "101"},   // no letter prefix: full ID
		{"x10", "x10"},   // lowercase is not a prefix letter
		{"W1N", "W"},     // only the leading run counts
		{"", ""},
	}

	for _, tt := range tests {
		if got := BranchPrefix(tt.id); got != tt.want {
			t.Errorf("BranchPrefix(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

// TestGroupByBranchSeparatesLines mirrors the interchange rule: stations with
// different ID prefixes must never land in the same group even when lines
// would otherwise collide.
func TestGroupByBranchSeparatesLines(t *testing.T) {
	list := []Station{
		{ID: "N1", LineName: "Green"},
		{ID: "N2", LineName: "Green"},
		{ID: "BL01", LineName: "Blue"},
		{ID: "BL02", LineName: "Blue"},
	}

	groups := GroupByBranch(list)
	if len(groups) != 2 {
		t.Fatalf("expected 2 branch groups, got %d", len(groups))
	}
	for _, g := range groups {
		if len(g.Stations) != 2 {
			t.Errorf("branch %v: expected 2 stations, got %d", g.Key, len(g.Stations))
		}
	}
}

func TestGroupByBranchSamelineDifferentPrefix(t *testing.T) {
	// The Sukhumvit Line has N- and E-branches meeting at an interchange;
	// they must form separate groups.
	list := []Station{
		{ID: "N2", LineName: "Sukhumvit"},
		{ID: "N1", LineName: "Sukhumvit"},
		{ID: "E1", LineName: "Sukhumvit"},
		{ID: "E2", LineName: "Sukhumvit"},
	}

	groups := GroupByBranch(list)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups for N/E branches, got %d", len(groups))
	}

	if groups[0].Key != (BranchKey{Line: "Sukhumvit", Prefix: "N"}) {
		t.Errorf("first group key = %v, want N-branch (first-seen order)", groups[0].Key)
	}

	// Within-group order must be input order, not sorted.
	n := groups[0].Stations
	if n[0].ID != "N2" || n[1].ID != "N1" {
		t.Errorf("N-branch order = [%s %s], want input order [N2 N1]", n[0].ID, n[1].ID)
	}
}

func TestGroupByBranchEmpty(t *testing.T) {
	if groups := GroupByBranch(nil); len(groups) != 0 {
		t.Errorf("expected no groups for empty input, got %d", len(groups))
	}
}
