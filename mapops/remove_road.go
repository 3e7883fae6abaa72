package mapops

import "github.com/piotrjasinski/roadmap/core"

// patch describes one route's repaired path after the road it used is
// deleted: route.Roads[idx] is replaced by replacement (one or more
// roads spanning the same two cities the deleted road used to span).
type patch struct {
	routeID     int
	idx         int
	replacement []*core.Road
}

// RemoveRoad deletes the road between city1 and city2, first computing
// a replacement detour for every route that used it. The change is
// all-or-nothing: if any affected route cannot be repaired (no
// surviving path, or the replacement is ambiguous), the map is left
// untouched and an error is returned. Grounded on
// original_source/src/map.c removeRoad, which accumulates routes[]/
// paths[] before ever calling replaceRoad, so a mid-way failure never
// needs undoing — the same property this implementation relies on by
// computing every patch before applying any of them.
func (o *Ops) RemoveRoad(city1, city2 string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	road, err := o.roadBetween(city1, city2)
	if err != nil {
		return err
	}

	var patches []patch
	for _, routeID := range road.PartOfRoutes() {
		route, ok := o.m.Route(routeID)
		if !ok {
			continue
		}
		idx := indexOfRoad(route, road)
		if idx < 0 {
			continue
		}
		before, after := routeEndpointsOfRoad(route, idx)
		exclude := routeCityNames(route)

		replacementPath, err := pathBetweenExcluding(o.m, before, after, road, exclude)
		if err != nil {
			return err
		}
		if !pathUniqueExcluding(o.m, replacementPath, road, exclude) {
			return ErrAmbiguousPath
		}

		patches = append(patches, patch{routeID: routeID, idx: idx, replacement: replacementPath.Roads})
	}

	for _, p := range patches {
		route, _ := o.m.Route(p.routeID)
		newRoads := make([]*core.Road, 0, len(route.Roads)-1+len(p.replacement))
		newRoads = append(newRoads, route.Roads[:p.idx]...)
		newRoads = append(newRoads, p.replacement...)
		newRoads = append(newRoads, route.Roads[p.idx+1:]...)

		updated := &core.Route{ID: route.ID, FirstCity: route.FirstCity, LastCity: route.LastCity, Roads: newRoads}
		_ = o.m.ReplaceRoute(updated)
		for _, r := range p.replacement {
			o.m.MarkRouteOnRoad(r, p.routeID)
		}
	}

	o.m.RemoveRoad(road)

	return nil
}

func indexOfRoad(route *core.Route, road *core.Road) int {
	for i, r := range route.Roads {
		if r == road {
			return i
		}
	}

	return -1
}
