package core

// InstallRoute places route into its ID's slot.
//
// Errors:
//   - ErrBadRouteID if route.ID is outside [MinRouteID, MaxRouteID]
//   - ErrRouteSlotOccupied if the slot already holds a route
func (m *Map) InstallRoute(route *Route) error {
	if route.ID < MinRouteID || route.ID > MaxRouteID {
		return ErrBadRouteID
	}
	if m.routes[route.ID] != nil {
		return ErrRouteSlotOccupied
	}
	m.routes[route.ID] = route

	return nil
}

// ReplaceRoute overwrites whatever occupies route.ID's slot (used by
// mapops when splicing a repaired/extended route back in after building
// its new Roads slice elsewhere).
//
// Errors:
//   - ErrBadRouteID if route.ID is outside [MinRouteID, MaxRouteID]
func (m *Map) ReplaceRoute(route *Route) error {
	if route.ID < MinRouteID || route.ID > MaxRouteID {
		return ErrBadRouteID
	}
	m.routes[route.ID] = route

	return nil
}

// RemoveRoute clears id's slot. Roads that were marked as part of this
// route are not automatically unmarked; callers unmark as they splice
// (see mapops.RemoveRoute).
//
// Errors:
//   - ErrBadRouteID if id is outside [MinRouteID, MaxRouteID]
//   - ErrRouteNotFound if the slot is already empty
func (m *Map) RemoveRoute(id int) error {
	if id < MinRouteID || id > MaxRouteID {
		return ErrBadRouteID
	}
	if m.routes[id] == nil {
		return ErrRouteNotFound
	}
	m.routes[id] = nil

	return nil
}

// RouteContainsCity reports whether city appears as an endpoint of any
// road on route's path (original_source/src/route.c: routeContains).
func RouteContainsCity(route *Route, city *City) bool {
	if route.FirstCity == city.Name || route.LastCity == city.Name {
		return true
	}
	for _, road := range route.Roads {
		if road.City1 == city || road.City2 == city {
			return true
		}
	}

	return false
}
