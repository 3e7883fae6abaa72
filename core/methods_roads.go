package core

// AddRoad creates a road between two existing, distinct cities that are
// not already connected. Both endpoints must already exist (see
// mapops.AddRoad for the create-missing-endpoints-with-rollback wrapper
// this is deliberately too low-level to do itself).
//
// Errors:
//   - ErrCityNotFound if either endpoint is missing
//   - ErrSameCity if city1 == city2
//   - ErrRoadExists if a road already connects the pair
//   - ErrBadLength if length == 0
//   - ErrBadYear if year == 0
func (m *Map) AddRoad(city1, city2 string, length uint32, year int32) (*Road, error) {
	if city1 == city2 {
		return nil, ErrSameCity
	}
	if length == 0 {
		return nil, ErrBadLength
	}
	if year == 0 {
		return nil, ErrBadYear
	}

	c1, ok := m.cities.Get(city1)
	if !ok {
		return nil, ErrCityNotFound
	}
	c2, ok := m.cities.Get(city2)
	if !ok {
		return nil, ErrCityNotFound
	}

	if _, exists := c1.RoadTo(city2); exists {
		return nil, ErrRoadExists
	}

	road := newRoad(c1, c2, length, year)
	c1.neighbours.Set(city2, road)
	c2.neighbours.Set(city1, road)

	return road, nil
}

// RemoveRoad detaches road from both of its endpoints' neighbour tables.
// It does not touch any route that marks road as part of its path;
// callers must unmark/splice routes first (see mapops.RemoveRoad).
func (m *Map) RemoveRoad(road *Road) {
	road.City1.neighbours.Remove(road.City2.Name)
	road.City2.neighbours.Remove(road.City1.Name)
}

// RepairRoad updates road's year to newYear, provided newYear is not
// older than the road's current year (spec.md: repairs only ever move a
// road's age forward).
//
// Errors:
//   - ErrBadYear if newYear == 0
//   - ErrYearRegression if newYear < road.Year
func (m *Map) RepairRoad(road *Road, newYear int32) error {
	if newYear == 0 {
		return ErrBadYear
	}
	if newYear < road.Year {
		return ErrYearRegression
	}
	road.Year = newYear

	return nil
}

// MarkRouteOnRoad records that routeID traverses road.
func (m *Map) MarkRouteOnRoad(road *Road, routeID int) { road.markRoute(routeID) }

// UnmarkRouteOnRoad removes the record that routeID traverses road.
func (m *Map) UnmarkRouteOnRoad(road *Road, routeID int) { road.unmarkRoute(routeID) }
