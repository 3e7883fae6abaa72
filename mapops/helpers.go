package mapops

import (
	"errors"

	"github.com/piotrjasinski/roadmap/core"
	"github.com/piotrjasinski/roadmap/pathfinder"
	"github.com/piotrjasinski/roadmap/routedesc"
	"github.com/piotrjasinski/roadmap/validate"
)

func validateRouteID(id int) error {
	if err := validate.RouteID(id); err != nil {
		return err
	}

	return nil
}

// pathBetween finds the best path between a and b, excluding exclude
// from contention as interior hops (pathfinder itself never excludes a
// and b even if they're listed), and translates pathfinder's sentinels
// into mapops' own.
func pathBetween(m *core.Map, a, b string, exclude []string) (pathfinder.Path, error) {
	path, err := pathfinder.FindBestPath(m, a, b, pathfinder.Options{AllowDirect: true, Exclude: exclude})
	if err != nil {
		switch {
		case errors.Is(err, pathfinder.ErrNoPath):
			return pathfinder.Path{}, ErrNoPath
		case errors.Is(err, pathfinder.ErrCityNotFound):
			return pathfinder.Path{}, core.ErrCityNotFound
		default:
			return pathfinder.Path{}, err
		}
	}

	return path, nil
}

// pathBetweenExcluding finds the best path between a and b that does
// not use direct (the road being removed), also excluding exclude from
// contention as interior hops — used when replacing a road being
// removed, where exclude is the rest of the affected route's own
// cities (spec §4.5's non-reuse constraint: a detour must not cut back
// through a city the route already visits elsewhere).
func pathBetweenExcluding(m *core.Map, a, b string, direct *core.Road, exclude []string) (pathfinder.Path, error) {
	path, err := pathfinder.FindBestPath(m, a, b, pathfinder.Options{DirectRoad: direct, Exclude: exclude})
	if err != nil {
		switch {
		case errors.Is(err, pathfinder.ErrNoPath):
			return pathfinder.Path{}, ErrNoPath
		case errors.Is(err, pathfinder.ErrCityNotFound):
			return pathfinder.Path{}, core.ErrCityNotFound
		default:
			return pathfinder.Path{}, err
		}
	}

	return path, nil
}

func pathUnique(m *core.Map, path pathfinder.Path, exclude []string) bool {
	return pathfinder.IsPathUnique(m, path, pathfinder.Options{AllowDirect: true, Exclude: exclude})
}

func pathUniqueExcluding(m *core.Map, path pathfinder.Path, direct *core.Road, exclude []string) bool {
	return pathfinder.IsPathUnique(m, path, pathfinder.Options{DirectRoad: direct, Exclude: exclude})
}

// formatRoute serializes route's current path using routedesc.
func formatRoute(route *core.Route) string {
	segments := make([]routedesc.Segment, 0, len(route.Roads)+1)
	segments = append(segments, routedesc.Segment{City: route.FirstCity})

	cur := route.FirstCity
	for _, road := range route.Roads {
		next := otherEndpointName(road, cur)
		segments = append(segments, routedesc.Segment{City: next, Length: road.Length, Year: road.Year})
		cur = next
	}

	return routedesc.Format(routedesc.Description{RouteID: route.ID, Segments: segments})
}

func otherEndpointName(road *core.Road, from string) string {
	if road.City1.Name == from {
		return road.City2.Name
	}

	return road.City1.Name
}

// routeEndpointsOfRoad returns the (before, after) city names straddling
// route.Roads[idx] in the route's own FirstCity-to-LastCity direction.
func routeEndpointsOfRoad(route *core.Route, idx int) (before, after string) {
	cur := route.FirstCity
	for i, road := range route.Roads {
		next := otherEndpointName(road, cur)
		if i == idx {
			return cur, next
		}
		cur = next
	}

	return "", ""
}

// routeCityNames returns every city name route's path visits (its
// FirstCity, LastCity, and every interior hop), in visiting order with
// duplicates removed. Used to build the exclude list for a detour
// search so the detour cannot cut back through a city the rest of the
// route already uses (spec §4.5/§8 scenario 1).
func routeCityNames(route *core.Route) []string {
	seen := make(map[string]bool, len(route.Roads)+1)
	names := make([]string, 0, len(route.Roads)+1)

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	add(route.FirstCity)
	cur := route.FirstCity
	for _, road := range route.Roads {
		next := otherEndpointName(road, cur)
		add(next)
		cur = next
	}

	return names
}
