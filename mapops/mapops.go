// Package mapops is the transactional verb surface over a core.Map: the
// eight operations spec.md defines (add/repair a road, create/extend/
// remove a route, remove a road, remove a route, describe a route,
// build a route from a serialized description), each either fully
// applied or left with no visible effect.
//
// Every exported method takes Ops.mu before touching m, matching the
// teacher's own intent (core/types.go guards Graph mutation with a
// pair of RWMutexes) applied at the granularity spec.md §5 actually
// calls for: one lock around the whole non-concurrent verb surface,
// not per-field locks on a domain this spec states outright is
// single-owner.
//
// Grounded on original_source/src/map.c (addRoad, repairRoad, newRoute,
// extendRoute, removeRoad, removeRoute, getRouteDescription) and
// original_source/src/route.c (replaceRoad, extendRouteInDirection,
// checkIfFirstCityComesFirst).
package mapops

import (
	"errors"
	"sync"

	"github.com/piotrjasinski/roadmap/core"
	"github.com/piotrjasinski/roadmap/validate"
)

// Sentinel errors specific to the transactional verbs (field-level
// validation errors surface as validate.Err*/core.Err* directly).
var (
	ErrRouteExists        = errors.New("mapops: route id already in use")
	ErrRouteNotFound      = errors.New("mapops: route not found")
	ErrNoPath             = errors.New("mapops: no replacement path exists")
	ErrAmbiguousPath      = errors.New("mapops: replacement path is not unique")
	ErrAmbiguousExtend    = errors.New("mapops: extension is equally good from both ends")
	ErrRoadNotFound       = errors.New("mapops: road not found")
	ErrEmptyDescription   = errors.New("mapops: description names fewer than two cities")
	ErrRoadLengthMismatch = errors.New("mapops: description's road length conflicts with existing road")
	ErrRouteRevisitsCity  = errors.New("mapops: description revisits a city")
)

// Ops serializes every mutating verb on a single core.Map behind one
// mutex (see package doc).
type Ops struct {
	mu sync.Mutex
	m  *core.Map
}

// New wraps m for transactional access. m should not be mutated except
// through the returned Ops for the lifetime of this wrapping.
func New(m *core.Map) *Ops {
	return &Ops{m: m}
}

// Map returns the underlying core.Map for read-only inspection
// (diagnostics, driver's describe/query commands). Callers must not
// mutate it directly.
func (o *Ops) Map() *core.Map { return o.m }

// AddRoad creates a road between city1 and city2, creating either or
// both cities if they do not already exist. On any validation failure
// the map is left exactly as it was (newly implied cities are never
// partially created) — grounded on original_source/src/map.c addRoad,
// which tracks created_cities[] purely so it can roll them back.
func (o *Ops) AddRoad(city1, city2 string, length uint32, year int32) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := validate.CityName(city1); err != nil {
		return err
	}
	if err := validate.CityName(city2); err != nil {
		return err
	}
	if city1 == city2 {
		return core.ErrSameCity
	}
	if err := validate.Length(uint64(length)); err != nil {
		return err
	}
	if err := validate.Year(year); err != nil {
		return err
	}

	var created []string
	rollback := func() {
		for _, name := range created {
			_ = o.m.RemoveCity(name)
		}
	}

	if !o.m.HasCity(city1) {
		if _, err := o.m.AddCity(city1); err != nil {
			return err
		}
		created = append(created, city1)
	}
	if !o.m.HasCity(city2) {
		if _, err := o.m.AddCity(city2); err != nil {
			rollback()
			return err
		}
		created = append(created, city2)
	}

	if _, err := o.m.AddRoad(city1, city2, length, year); err != nil {
		rollback()
		return err
	}

	return nil
}

// RepairRoad updates the year of the road between city1 and city2.
func (o *Ops) RepairRoad(city1, city2 string, newYear int32) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	road, err := o.roadBetween(city1, city2)
	if err != nil {
		return err
	}

	return o.m.RepairRoad(road, newYear)
}

func (o *Ops) roadBetween(city1, city2 string) (*core.Road, error) {
	c1, ok := o.m.City(city1)
	if !ok {
		return nil, core.ErrCityNotFound
	}
	road, ok := c1.RoadTo(city2)
	if !ok {
		return nil, ErrRoadNotFound
	}

	return road, nil
}
