// Package diagnostics offers read-only structural queries and
// consistency checks over a core.Map, living alongside the mutable API
// the same way core.City.Degree does — a read-only accessor shipped
// next to the type it inspects rather than folded into mapops' verb
// surface. Grounded on core/methods_vertices.go's Degree().
package diagnostics

import (
	"errors"
	"fmt"
	"slices"

	"github.com/piotrjasinski/roadmap/core"
)

// ErrDanglingRouteMarker indicates a road claims membership in a route
// whose slot does not actually reference that road, or a route
// references a road that is not marked with the route's ID — a
// structural inconsistency that should never occur if mapops is the
// map's only mutator.
var ErrDanglingRouteMarker = errors.New("diagnostics: road's route marker does not match any route's path")

// Summary reports aggregate counts over a Map.
type Summary struct {
	Cities int
	Roads  int
	Routes int
}

// Summarize computes aggregate counts for m.
func Summarize(m *core.Map) Summary {
	snap := m.Snapshot()

	return Summary{Cities: snap.CityCount, Roads: snap.RoadCount, Routes: snap.RouteCount}
}

// ActiveRouteIDs returns every currently occupied route slot ID.
func ActiveRouteIDs(m *core.Map) []int {
	return m.RouteIDs()
}

// Validate checks that every road's route-membership markers agree with
// the routes that actually reference it, and that every route's
// FirstCity/LastCity match the endpoints its Roads slice actually
// visits. It does not check neighbour-table symmetry, and it does not
// check that a route's path is free of repeated cities. It returns the
// first inconsistency found, or nil.
func Validate(m *core.Map) error {
	roadRoutes := make(map[*core.Road]map[int]struct{})
	for _, c := range m.Cities() {
		for _, r := range c.Neighbours() {
			if _, ok := roadRoutes[r]; ok {
				continue
			}
			set := make(map[int]struct{})
			for _, id := range r.PartOfRoutes() {
				set[id] = struct{}{}
			}
			roadRoutes[r] = set
		}
	}

	for road, ids := range roadRoutes {
		for id := range ids {
			route, ok := m.Route(id)
			if !ok || !slices.Contains(route.Roads, road) {
				return fmt.Errorf("diagnostics: a road is marked with route %d but is not on its path: %w", id, ErrDanglingRouteMarker)
			}
		}
	}

	for _, routeID := range m.RouteIDs() {
		route, ok := m.Route(routeID)
		if !ok {
			continue
		}

		cur := route.FirstCity
		for _, road := range route.Roads {
			set, tracked := roadRoutes[road]
			if !tracked {
				return fmt.Errorf("diagnostics: route %d references an untracked road: %w", routeID, ErrDanglingRouteMarker)
			}
			if _, marked := set[routeID]; !marked {
				return fmt.Errorf("diagnostics: route %d's road is not marked with its own id: %w", routeID, ErrDanglingRouteMarker)
			}

			c, exists := m.City(cur)
			if !exists {
				return fmt.Errorf("diagnostics: route %d visits missing city %q", routeID, cur)
			}
			next := road.Other(c)
			if next == nil {
				return fmt.Errorf("diagnostics: route %d's road does not connect to %q", routeID, cur)
			}
			cur = next.Name
		}
		if cur != route.LastCity {
			return fmt.Errorf("diagnostics: route %d ends at %q, want %q", routeID, cur, route.LastCity)
		}
	}

	return nil
}
