package stations

// BranchKey identifies one physical branch of a line. Station IDs carry a
// letter prefix (N, E, BL, PP, ...); different prefixes on the same line are
// separate branches that meet at an interchange and must never be treated as
// consecutive.
type BranchKey struct {
	Line   string
	Prefix string
}

// BranchGroup is an ordered run of stations on a single branch, in the order
// they appeared in the input.
type BranchGroup struct {
	Key      BranchKey
	Stations []Station
}

// BranchPrefix extracts the branch prefix from a station ID: the leading
// maximal run of uppercase letters, or the full ID if there is none. The
// result is never empty for a non-empty ID.
func BranchPrefix(id string) string {
	i := 0
	for i < len(id) && id[i] >= 'A' && id[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return id
	}
	return id[:i]
}

// GroupByBranch partitions stations into branch groups. Grouping is stable:
// groups appear in first-seen order and stations keep their input order
// within each group, so adjacency inside a group reflects physical sequence.
func GroupByBranch(list []Station) []BranchGroup {
	index := make(map[BranchKey]int)
	var groups []BranchGroup

	for _, s := range list {
		key := BranchKey{Line: s.LineName, Prefix: BranchPrefix(s.ID)}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, BranchGroup{Key: key})
		}
		groups[i].Stations = append(groups[i].Stations, s)
	}

	return groups
}
