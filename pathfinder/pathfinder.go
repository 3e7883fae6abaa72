// Package pathfinder implements route discovery over a core.Map: a
// Dijkstra variant minimizing (path length, then the year of the oldest
// road on the path — newer wins) with a strict unambiguity check.
//
// All of Dijkstra's mutable scratch state (heap handles, predecessor
// links) is kept in local maps inside this package's runner, never on
// core.City itself — core stays a plain persistent data model, reusable
// by many concurrent callers over time without carrying leftover search
// state between calls. Grounded on the teacher's dijkstra.go, which
// keeps dist/prev external to core.Graph the same way.
//
// Grounded line-for-line on original_source/src/path.c's findBestPath
// and checkIfPathDefinedUnambiguously.
package pathfinder

import (
	"errors"

	"github.com/piotrjasinski/roadmap/core"
	"github.com/piotrjasinski/roadmap/heap"
)

// Errors returned by this package.
var (
	// ErrNoPath indicates city1 and city2 are not connected (possibly
	// after excluding a given set of cities from contention).
	ErrNoPath = errors.New("pathfinder: no path exists")

	// ErrSameCity indicates city1 == city2.
	ErrSameCity = errors.New("pathfinder: cities must be distinct")

	// ErrCityNotFound indicates city1 or city2 is absent from the map.
	ErrCityNotFound = errors.New("pathfinder: city not found")
)

// Path is an ordered sequence of roads from Source to Dest along with
// its two-component cost.
type Path struct {
	Source, Dest string
	Roads        []*core.Road
	Cost         heap.Key
}

// Options tune a single FindBestPath call.
type Options struct {
	// Exclude lists city names that must not appear as interior hops
	// (src/dst themselves are never excluded even if listed). Grounded
	// on original_source/src/path.c excludeCitiesFromRoadLists, used
	// when searching for a detour around a road being removed.
	Exclude []string

	// AllowDirect, when false, suppresses the direct road between
	// Source and Dest (if one exists) from consideration — used by
	// mapops.RemoveRoad to find a replacement path for the road it is
	// deleting, which by definition must not reuse that same road.
	AllowDirect bool

	// DirectRoad is the specific road to suppress when AllowDirect is
	// false. Ignored when AllowDirect is true.
	DirectRoad *core.Road
}

// FindBestPath runs the modified Dijkstra search from source to dest
// over m, honoring opts. It returns the best path found, or ErrNoPath
// if source and dest are disconnected under opts.
func FindBestPath(m *core.Map, source, dest string, opts Options) (Path, error) {
	if source == dest {
		return Path{}, ErrSameCity
	}
	if !m.HasCity(source) || !m.HasCity(dest) {
		return Path{}, ErrCityNotFound
	}

	r := newRunner(m, source, dest, opts)
	r.run()

	key, ok := r.dist[dest]
	if !ok {
		return Path{}, ErrNoPath
	}

	return Path{Source: source, Dest: dest, Roads: r.reconstruct(dest), Cost: key}, nil
}

// runner holds one search's mutable state: final distances, predecessor
// roads, and the indexed heap driving relaxation order.
type runner struct {
	m      *core.Map
	source string
	dest   string
	opts   Options

	h    *heap.Heap
	dist map[string]heap.Key
	prev map[string]*core.Road // city name -> road used to reach it
}

func newRunner(m *core.Map, source, dest string, opts Options) *runner {
	names := m.CityNames()
	h := heap.New(len(names))

	excluded := make(map[string]bool, len(opts.Exclude))
	for _, name := range opts.Exclude {
		if name == source || name == dest {
			continue
		}
		excluded[name] = true
	}

	r := &runner{
		m:      m,
		source: source,
		dest:   dest,
		opts:   opts,
		h:      h,
		dist:   make(map[string]heap.Key, len(names)),
		prev:   make(map[string]*core.Road, len(names)),
	}

	h.FillFrom(names)
	for name := range excluded {
		h.Exclude(name)
	}
	h.DecreaseKey(source, heap.Key{Length: 0, Year: heap.Inf.Year})
	r.dist[source] = heap.Key{Length: 0, Year: heap.Inf.Year}

	return r
}

func (r *runner) run() {
	for r.h.Len() > 0 {
		city, key, ok := r.h.Pop()
		if !ok {
			break
		}
		if key == heap.Inf {
			// Every city still in the heap is at least this bad (the
			// heap pops in ascending order), so nothing left is
			// reachable from source either. Stop rather than record a
			// sentinel distance as if it were a real one.
			return
		}
		r.dist[city] = key
		if city == r.dest {
			return
		}
		r.relaxFrom(city, key)
	}
}

// relaxFrom offers every neighbour of city a candidate cost through
// city, suppressing the direct source-dest edge when the caller asked
// to treat it as unusable (mapops.RemoveRoad's use case).
func (r *runner) relaxFrom(city string, key heap.Key) {
	c, ok := r.m.City(city)
	if !ok {
		return
	}

	for _, road := range c.Neighbours() {
		if r.suppressed(city, road) {
			continue
		}
		next := road.Other(c)
		if next == nil {
			continue
		}
		if !r.h.Contains(next.Name) {
			continue
		}

		candidate := heap.Key{
			Length: key.Length + road.Length,
			Year:   minYear(key.Year, road.Year),
		}
		if r.h.DecreaseKey(next.Name, candidate) {
			r.prev[next.Name] = road
		}
	}
}

func (r *runner) suppressed(city string, road *core.Road) bool {
	if r.opts.AllowDirect {
		return false
	}
	if r.opts.DirectRoad != nil && road != r.opts.DirectRoad {
		return false
	}
	other := road.Other(mustCity(r.m, city))

	return (city == r.source && other != nil && other.Name == r.dest) ||
		(city == r.dest && other != nil && other.Name == r.source)
}

func mustCity(m *core.Map, name string) *core.City {
	c, _ := m.City(name)

	return c
}

func minYear(a, b int32) int32 {
	if a < b {
		return a
	}

	return b
}

// reconstruct walks r.prev backwards from dest to build the ordered
// road slice from source to dest.
func (r *runner) reconstruct(dest string) []*core.Road {
	var reversed []*core.Road
	cur := dest
	for cur != r.source {
		road, ok := r.prev[cur]
		if !ok {
			break
		}
		reversed = append(reversed, road)
		c, _ := r.m.City(cur)
		other := road.Other(c)
		if other == nil {
			break
		}
		cur = other.Name
	}

	out := make([]*core.Road, len(reversed))
	for i, road := range reversed {
		out[len(reversed)-1-i] = road
	}

	return out
}
