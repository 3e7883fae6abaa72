package core

// Snapshot is a lightweight, read-only summary of a Map's size, used by
// diagnostics.Summarize. It is not a deep clone of the graph (core/methods_clone.go in
// the teacher clones the whole Graph; this module's Map is large enough,
// and mutated transactionally enough by mapops, that a full structural
// clone is never actually needed — see DESIGN.md).
type Snapshot struct {
	CityCount  int
	RoadCount  int
	RouteCount int
}

// Snapshot captures m's current sizes.
func (m *Map) Snapshot() Snapshot {
	roads := 0
	seen := make(map[*Road]struct{})
	for _, c := range m.Cities() {
		for _, r := range c.Neighbours() {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			roads++
		}
	}

	routes := 0
	for _, id := range m.RouteIDs() {
		_ = id
		routes++
	}

	return Snapshot{CityCount: m.CityCount(), RoadCount: roads, RouteCount: routes}
}
