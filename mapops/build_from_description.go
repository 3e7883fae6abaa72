package mapops

import (
	"github.com/piotrjasinski/roadmap/core"
	"github.com/piotrjasinski/roadmap/routedesc"
	"github.com/piotrjasinski/roadmap/validate"
)

// yearPatch records an existing road's year before a matching
// description segment repairs it forward, so rollback can restore it.
type yearPatch struct {
	road      *core.Road
	priorYear int32
}

// BuildRouteFromDescription installs a route exactly as desc describes
// it — unlike NewRoute, it does not search for a path; it takes the
// caller's explicit sequence of (city, length, year) segments and lays
// down whatever cities/roads are missing to realize it, rolling all of
// that back if any step fails partway through. A segment naming a city
// already visited earlier in desc fails the whole call (the installed
// route must be a simple path). A segment whose edge already exists as
// a road is only a match if its length agrees; its year must not
// regress, and a newer year repairs the existing road in place.
//
// There is no surviving original_source file for this verb (see
// SPEC_FULL.md's open-question log); it follows the same
// accumulate-then-unwind-on-first-failure shape AddRoad and RemoveRoad
// both demonstrate.
func (o *Ops) BuildRouteFromDescription(desc routedesc.Description) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := validateRouteID(desc.RouteID); err != nil {
		return err
	}
	if _, ok := o.m.Route(desc.RouteID); ok {
		return ErrRouteExists
	}
	if len(desc.Segments) < 2 {
		return ErrEmptyDescription
	}
	for _, seg := range desc.Segments {
		if err := validate.CityName(seg.City); err != nil {
			return err
		}
	}
	for _, seg := range desc.Segments[1:] {
		if err := validate.Length(uint64(seg.Length)); err != nil {
			return err
		}
		if err := validate.Year(seg.Year); err != nil {
			return err
		}
	}

	var createdCities []string
	var createdRoads []*core.Road
	var repairedRoads []yearPatch
	rollback := func() {
		for _, rp := range repairedRoads {
			rp.road.Year = rp.priorYear
		}
		for _, road := range createdRoads {
			o.m.RemoveRoad(road)
		}
		for _, name := range createdCities {
			_ = o.m.RemoveCity(name)
		}
	}

	ensureCity := func(name string) error {
		if o.m.HasCity(name) {
			return nil
		}
		if _, err := o.m.AddCity(name); err != nil {
			return err
		}
		createdCities = append(createdCities, name)

		return nil
	}

	if err := ensureCity(desc.Segments[0].City); err != nil {
		rollback()
		return err
	}

	visited := make(map[string]bool, len(desc.Segments))
	visited[desc.Segments[0].City] = true

	roads := make([]*core.Road, 0, len(desc.Segments)-1)
	prev := desc.Segments[0].City
	for _, seg := range desc.Segments[1:] {
		if visited[seg.City] {
			rollback()
			return ErrRouteRevisitsCity
		}

		if err := ensureCity(seg.City); err != nil {
			rollback()
			return err
		}
		visited[seg.City] = true

		prevCity, _ := o.m.City(prev)
		if existing, ok := prevCity.RoadTo(seg.City); ok {
			if existing.Length != seg.Length {
				rollback()
				return ErrRoadLengthMismatch
			}
			if seg.Year < existing.Year {
				rollback()
				return core.ErrYearRegression
			}
			if seg.Year > existing.Year {
				repairedRoads = append(repairedRoads, yearPatch{road: existing, priorYear: existing.Year})
				existing.Year = seg.Year
			}
			roads = append(roads, existing)
			prev = seg.City
			continue
		}

		road, err := o.m.AddRoad(prev, seg.City, seg.Length, seg.Year)
		if err != nil {
			rollback()
			return err
		}
		createdRoads = append(createdRoads, road)
		roads = append(roads, road)
		prev = seg.City
	}

	route := &core.Route{
		ID:        desc.RouteID,
		FirstCity: desc.Segments[0].City,
		LastCity:  desc.Segments[len(desc.Segments)-1].City,
		Roads:     roads,
	}
	if err := o.m.InstallRoute(route); err != nil {
		rollback()
		return err
	}
	for _, road := range roads {
		o.m.MarkRouteOnRoad(road, desc.RouteID)
	}

	return nil
}
