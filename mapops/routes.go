package mapops

import "github.com/piotrjasinski/roadmap/core"

// NewRoute finds the best path between firstCity and lastCity and
// installs it as route routeID, provided that path is unambiguous.
// Grounded on original_source/src/map.c newRoute, which is exactly
// findBestPath followed by checkIfPathDefinedUnambiguously.
func (o *Ops) NewRoute(routeID int, firstCity, lastCity string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := validateRouteID(routeID); err != nil {
		return err
	}
	if _, ok := o.m.Route(routeID); ok {
		return ErrRouteExists
	}

	path, err := pathBetween(o.m, firstCity, lastCity, nil)
	if err != nil {
		return err
	}
	if !pathUnique(o.m, path, nil) {
		return ErrAmbiguousPath
	}

	route := &core.Route{ID: routeID, FirstCity: firstCity, LastCity: lastCity, Roads: path.Roads}
	if err := o.m.InstallRoute(route); err != nil {
		return err
	}
	for _, road := range route.Roads {
		o.m.MarkRouteOnRoad(road, routeID)
	}

	return nil
}

// ExtendRoute grows route routeID to also reach newCity, attaching at
// whichever end (first or last city) yields the strictly better path;
// a tie between the two ends is rejected as ambiguous. Grounded on
// original_source/src/map.c extendRoute / checkIfFirstPathBetter and
// original_source/src/route.c extendRouteInDirection.
func (o *Ops) ExtendRoute(routeID int, newCity string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	route, ok := o.m.Route(routeID)
	if !ok {
		return ErrRouteNotFound
	}

	exclude := routeCityNames(route)
	fromFirst, errFirst := pathBetween(o.m, route.FirstCity, newCity, exclude)
	fromLast, errLast := pathBetween(o.m, route.LastCity, newCity, exclude)

	if errFirst != nil && errLast != nil {
		return ErrNoPath
	}

	var extendFromFirst bool
	switch {
	case errFirst != nil:
		extendFromFirst = false
	case errLast != nil:
		extendFromFirst = true
	case fromFirst.Cost.Less(fromLast.Cost):
		extendFromFirst = true
	case fromLast.Cost.Less(fromFirst.Cost):
		extendFromFirst = false
	default:
		return ErrAmbiguousExtend
	}

	chosen := fromLast
	if extendFromFirst {
		chosen = fromFirst
	}
	if !pathUnique(o.m, chosen, exclude) {
		return ErrAmbiguousPath
	}

	updated := &core.Route{ID: route.ID, FirstCity: route.FirstCity, LastCity: route.LastCity, Roads: route.Roads}
	if extendFromFirst {
		updated.Roads = append(reversedRoads(chosen.Roads), updated.Roads...)
		updated.FirstCity = newCity
	} else {
		updated.Roads = append(append([]*core.Road{}, updated.Roads...), chosen.Roads...)
		updated.LastCity = newCity
	}

	if err := o.m.ReplaceRoute(updated); err != nil {
		return err
	}
	for _, road := range chosen.Roads {
		o.m.MarkRouteOnRoad(road, routeID)
	}

	return nil
}

// RemoveRoute clears routeID's slot and unmarks every road it used.
// The roads and cities themselves are left untouched. Grounded on
// original_source/src/map.c removeRoute.
func (o *Ops) RemoveRoute(routeID int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	route, ok := o.m.Route(routeID)
	if !ok {
		return ErrRouteNotFound
	}
	for _, road := range route.Roads {
		o.m.UnmarkRouteOnRoad(road, routeID)
	}

	return o.m.RemoveRoute(routeID)
}

// DescribeRoute serializes routeID's current path, or returns "" if the
// slot is unoccupied. Grounded on original_source/src/map.c
// getRouteDescription.
func (o *Ops) DescribeRoute(routeID int) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := validateRouteID(routeID); err != nil {
		return "", err
	}
	route, ok := o.m.Route(routeID)
	if !ok {
		return "", nil
	}

	return formatRoute(route), nil
}

func reversedRoads(roads []*core.Road) []*core.Road {
	out := make([]*core.Road, len(roads))
	for i, r := range roads {
		out[len(roads)-1-i] = r
	}

	return out
}
