package pathfinder

import (
	"github.com/piotrjasinski/roadmap/core"
	"github.com/piotrjasinski/roadmap/heap"
)

// IsPathUnique reports whether candidate is the UNIQUE best path between
// its endpoints under opts: it re-runs relaxation seeded with
// candidate's own prefix costs and predecessor links, and rejects
// (returns false) the moment a relaxation through a road other than
// the candidate's own ties or improves the cost of a candidate city.
// A tie in cost through a different predecessor is exactly the
// ambiguity this function exists to catch.
//
// Grounded on original_source/src/path.c's
// checkIfPathDefinedUnambiguously.
func IsPathUnique(m *core.Map, candidate Path, opts Options) bool {
	if len(candidate.Roads) == 0 {
		return true
	}

	seed := newRunner(m, candidate.Source, candidate.Dest, opts)

	cur := candidate.Source
	acc := seed.dist[candidate.Source]
	for _, road := range candidate.Roads {
		c, ok := m.City(cur)
		if !ok {
			return false
		}
		next := road.Other(c)
		if next == nil {
			return false
		}
		acc = costThrough(acc, road)
		seed.dist[next.Name] = acc
		seed.prev[next.Name] = road
		seed.h.DecreaseKey(next.Name, acc)
		cur = next.Name
	}

	ambiguous := false
	seed.runCheckingAmbiguity(candidate, &ambiguous)

	return !ambiguous
}

func costThrough(base heap.Key, road *core.Road) heap.Key {
	return heap.Key{Length: base.Length + road.Length, Year: minYear(base.Year, road.Year)}
}

// runCheckingAmbiguity mirrors runner.run but additionally flags
// ambiguity whenever a relaxation ties or improves a city already
// assigned a predecessor by the candidate path, through a DIFFERENT
// road than the candidate used.
func (r *runner) runCheckingAmbiguity(candidate Path, ambiguous *bool) {
	candidatePred := make(map[string]*core.Road, len(candidate.Roads))
	cur := candidate.Source
	for _, road := range candidate.Roads {
		c, _ := r.m.City(cur)
		next := road.Other(c)
		if next == nil {
			break
		}
		candidatePred[next.Name] = road
		cur = next.Name
	}

	for r.h.Len() > 0 {
		city, key, ok := r.h.Pop()
		if !ok {
			break
		}
		if key == heap.Inf {
			return
		}
		r.dist[city] = key

		c, ok := r.m.City(city)
		if !ok {
			continue
		}
		for _, road := range c.Neighbours() {
			if r.suppressed(city, road) {
				continue
			}
			next := road.Other(c)
			if next == nil || !r.h.Contains(next.Name) {
				continue
			}

			candidateCost := costThrough(key, road)
			if want, ok := candidatePred[next.Name]; ok && want != road {
				if current, present := r.h.KeyOf(next.Name); present && !current.Less(candidateCost) {
					*ambiguous = true
				}
			}
			if r.h.DecreaseKey(next.Name, candidateCost) {
				r.prev[next.Name] = road
			}
		}
	}
}
