// Package core defines the persistent road-map data model: City, Road,
// Route, and the owning Map. It holds no pathfinding logic — pathfinder
// reads a Map through the exported methods below and keeps all of its own
// scratch state external (see pathfinder's doc comment and SPEC_FULL.md §2).
//
// Map is single-owner and is NOT safe for concurrent use; callers that
// need serialized access across goroutines should guard it externally
// (mapops does this once, for the whole verb surface, rather than here).
package core

import (
	"errors"
	"math"

	"github.com/piotrjasinski/roadmap/ordermap"
)

// Sentinel errors for core data-model operations. Callers must use
// errors.Is against these; they are never wrapped with formatted
// strings at the definition site.
var (
	// ErrEmptyCityName indicates a City name that is the empty string.
	ErrEmptyCityName = errors.New("core: city name is empty")

	// ErrInvalidCityName indicates a City name containing ';' or a control byte (0..31).
	ErrInvalidCityName = errors.New("core: city name contains a forbidden byte")

	// ErrCityNotFound indicates an operation referenced a non-existent city.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrSameCity indicates an operation required two distinct cities but received one.
	ErrSameCity = errors.New("core: cities must be distinct")

	// ErrRoadNotFound indicates an operation referenced a non-existent road.
	ErrRoadNotFound = errors.New("core: road not found")

	// ErrRoadExists indicates an attempt to add a road where one already connects the pair.
	ErrRoadExists = errors.New("core: road already exists between these cities")

	// ErrBadLength indicates a road length outside [1, MaxLength].
	ErrBadLength = errors.New("core: road length must be in [1, 2^32-1]")

	// ErrBadYear indicates a road/repair year of exactly zero.
	ErrBadYear = errors.New("core: year must be non-zero")

	// ErrYearRegression indicates a repair year older than the road's current year.
	ErrYearRegression = errors.New("core: year cannot move backwards")

	// ErrBadRouteID indicates a route ID outside [MinRouteID, MaxRouteID].
	ErrBadRouteID = errors.New("core: route id must be in [1, 999]")

	// ErrRouteSlotOccupied indicates the target route slot already holds a route.
	ErrRouteSlotOccupied = errors.New("core: route slot already occupied")

	// ErrRouteNotFound indicates an operation referenced an empty route slot.
	ErrRouteNotFound = errors.New("core: route not found")
)

// MaxLength is the largest permitted Road.Length ([1, MaxLength]).
const MaxLength = math.MaxUint32

// MinRouteID and MaxRouteID bound the fixed route slot array (spec.md §3: routeId ∈ [1,999]).
const (
	MinRouteID = 1
	MaxRouteID = 999
)

// City is a named vertex. Its neighbour table maps neighbour city name to
// the unique Road connecting to that neighbour (a multigraph of simple
// pairs: at most one Road per unordered city pair, enforced by Map).
type City struct {
	// Name uniquely identifies this City within its Map.
	Name string

	neighbours *ordermap.Map[string, *Road]
}

// newCity allocates a City with an empty neighbour table.
func newCity(name string) *City {
	return &City{Name: name, neighbours: ordermap.New[string, *Road]()}
}

// Neighbours returns the roads incident to c, ordered by neighbour name.
func (c *City) Neighbours() []*Road {
	return c.neighbours.ValuesInOrder()
}

// NeighbourNames returns the neighbour city names, ordered ascending.
func (c *City) NeighbourNames() []string {
	return c.neighbours.KeysInOrder()
}

// RoadTo returns the Road connecting c to the named neighbour, if any.
func (c *City) RoadTo(neighbour string) (*Road, bool) {
	return c.neighbours.Get(neighbour)
}

// Degree returns the number of roads incident to c.
func (c *City) Degree() int { return c.neighbours.Len() }

// Road is a weighted, dated undirected edge between two distinct cities.
// City1/City2 order is cosmetic (roads are undirected); both endpoints'
// neighbour tables reference the same *Road.
type Road struct {
	City1, City2 *City
	Length       uint32
	Year         int32

	// routes is the set of route IDs currently traversing this road.
	routes map[int]struct{}
}

// newRoad allocates a Road between two distinct cities.
func newRoad(c1, c2 *City, length uint32, year int32) *Road {
	return &Road{City1: c1, City2: c2, Length: length, Year: year, routes: make(map[int]struct{})}
}

// Other returns the endpoint of r other than city, or nil if city is
// not an endpoint of r.
func (r *Road) Other(city *City) *City {
	switch city {
	case r.City1:
		return r.City2
	case r.City2:
		return r.City1
	default:
		return nil
	}
}

// PartOfRoutes returns the IDs of routes currently traversing r, ascending.
func (r *Road) PartOfRoutes() []int {
	ids := make([]int, 0, len(r.routes))
	for id := range r.routes {
		ids = append(ids, id)
	}
	sortInts(ids)

	return ids
}

// RouteCount returns how many routes currently traverse r.
func (r *Road) RouteCount() int { return len(r.routes) }

func (r *Road) markRoute(routeID int)   { r.routes[routeID] = struct{}{} }
func (r *Road) unmarkRoute(routeID int) { delete(r.routes, routeID) }

func (r *Road) hasRoute(routeID int) bool {
	_, ok := r.routes[routeID]

	return ok
}

// sortInts insertion-sorts a small slice of route IDs ascending.
func sortInts(ids []int) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// Route is a numbered, oriented simple path through the graph.
// FirstCity/LastCity preserve the caller's original argument order so
// route descriptions are reproducible (spec.md §3, §6).
type Route struct {
	ID        int
	FirstCity string
	LastCity  string
	Roads     []*Road
}

// Map owns every City (and, transitively, every Road) plus a fixed-size
// catalog of Route slots indexed MinRouteID..MaxRouteID.
type Map struct {
	cities    *ordermap.Map[string, *City]
	routes    [MaxRouteID + 1]*Route
	citiesNum int
}

// NewMap creates an empty Map: no cities, no roads, no routes.
func NewMap() *Map {
	return &Map{cities: ordermap.New[string, *City]()}
}

// CityCount returns the number of cities currently in m.
func (m *Map) CityCount() int { return m.citiesNum }

// City returns the City named name, if it exists.
func (m *Map) City(name string) (*City, bool) {
	return m.cities.Get(name)
}

// HasCity reports whether a city named name exists.
func (m *Map) HasCity(name string) bool {
	return m.cities.Contains(name)
}

// Cities returns every city, ordered by name ascending.
func (m *Map) Cities() []*City {
	return m.cities.ValuesInOrder()
}

// CityNames returns every city name, ordered ascending.
func (m *Map) CityNames() []string {
	return m.cities.KeysInOrder()
}

// Route returns the route stored at id, if the slot is occupied.
// IDs outside [MinRouteID, MaxRouteID] always report "not found".
func (m *Map) Route(id int) (*Route, bool) {
	if id < MinRouteID || id > MaxRouteID {
		return nil, false
	}
	r := m.routes[id]

	return r, r != nil
}

// RouteIDs returns the IDs of every occupied route slot, ascending.
func (m *Map) RouteIDs() []int {
	out := make([]int, 0)
	for id := MinRouteID; id <= MaxRouteID; id++ {
		if m.routes[id] != nil {
			out = append(out, id)
		}
	}

	return out
}
