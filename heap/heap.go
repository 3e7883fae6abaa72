// Package heap implements the indexed minimum-heap pathfinder relies on
// for its Dijkstra variant: every entry's key is a two-component cost
// (road length ascending, then the year of the path's oldest road
// descending — newer wins), and every city carries a stable "handle"
// (its current array position) so an in-progress relaxation can call
// DecreaseKey directly instead of the lazy stale-entry trick
// container/heap encourages.
//
// A handle of 0 means "not currently contending in this heap" — either
// the city was never inserted, was already popped, or was explicitly
// excluded via Exclude. DecreaseKey and Pop both honour that: a
// handle-0 city is never touched by a swap, and Exclude is permanent
// for the lifetime of the Heap value (callers build a fresh Heap per
// search, matching pathfinder's one-Dijkstra-per-call shape).
//
// Grounded on original_source/src/heap.c (swapHeapNodes,
// checkIfFirstNodeBetter, createHeap, popHeap, decreaseHeapKey) and
// cross-checked against soniakeys/graph's dijkstra.go, where tent.fx
// plays the same "index field kept in sync across Swap" role to support
// heap.Fix-based decrease-key.
package heap

import "math"

// Key is a Dijkstra cost: Length is the path length so far; Year is the
// year of the OLDEST road on the path so far (not the direct edge's
// year — pathfinder folds each new edge's year in via min()). A Key
// with a smaller Length is always better; among equal Lengths, the
// Key with the larger Year (a "younger" oldest segment) is better.
type Key struct {
	Length uint32
	Year   int32
}

// Inf is the sentinel key assigned to every city before it has been
// reached by any relaxation. Year uses math.MaxInt32, not
// math.MinInt32: Year is accumulated by min() as edges are folded in,
// so the pre-relaxation sentinel must be the identity element for min
// (the LARGEST representable value), or the first real relaxation
// would compute min(MinInt32, anything) == MinInt32 forever and every
// path would report the same bogus oldest-road year. The reference
// implementation used MinInt32 here, which is exactly this bug.
var Inf = Key{Length: math.MaxUint32, Year: math.MaxInt32}

// Less reports whether a is a strictly better cost than b.
func (a Key) Less(b Key) bool {
	if a.Length != b.Length {
		return a.Length < b.Length
	}

	return a.Year > b.Year
}

// Heap is an indexed min-heap over city names. The zero value is not
// usable; construct with New.
type Heap struct {
	cities []string       // 1-indexed; cities[0] unused
	keys   []Key           // keys[i] is the Key for cities[i]
	pos    map[string]int // city name -> current index, 0 == not present
	size   int
}

// New creates an empty Heap sized for roughly capacityHint cities,
// rounding the backing array up to the next power of two (matching
// original_source/src/heap.c's createHeap sizing).
func New(capacityHint int) *Heap {
	n := nextPowerOfTwo(capacityHint)

	return &Heap{
		cities: make([]string, n+1),
		keys:   make([]Key, n+1),
		pos:    make(map[string]int, capacityHint),
	}
}

func nextPowerOfTwo(n int) int {
	if n < 1 {
		n = 1
	}
	p := 1
	for p <= n {
		p *= 2
	}

	return p
}

// FillFrom inserts every name in names with key Inf, skipping any name
// already present. Used once per search to seed the frontier before
// the source city's key is lowered to {0, math.MaxInt32} via DecreaseKey.
func (h *Heap) FillFrom(names []string) {
	for _, name := range names {
		h.push(name, Inf)
	}
}

// Len returns the number of cities still contending in h.
func (h *Heap) Len() int { return h.size }

// Contains reports whether name is currently present in h (handle != 0).
func (h *Heap) Contains(name string) bool {
	idx, ok := h.pos[name]

	return ok && idx != 0
}

// KeyOf returns the current key for name, if present.
func (h *Heap) KeyOf(name string) (Key, bool) {
	idx, ok := h.pos[name]
	if !ok || idx == 0 {
		return Key{}, false
	}

	return h.keys[idx], true
}

// Exclude permanently removes name from contention: if present, it is
// extracted from the heap array; name's handle becomes (and stays) 0,
// so later FillFrom/DecreaseKey calls for name are no-ops. Grounded on
// original_source/src/path.c excludeCitiesFromRoadLists, which stamps
// num_in_heap = 0 on cities that must not be considered for a given
// search (e.g. the endpoints of the road currently being bypassed).
func (h *Heap) Exclude(name string) {
	idx, ok := h.pos[name]
	if !ok {
		h.pos[name] = 0
		return
	}
	if idx == 0 {
		return
	}
	h.removeAt(idx)
	h.pos[name] = 0
}

func (h *Heap) push(name string, key Key) {
	if _, ok := h.pos[name]; ok {
		// Already present, or excluded (handle 0) — either way, no-op.
		return
	}

	h.size++
	if h.size >= len(h.cities) {
		h.grow()
	}
	h.cities[h.size] = name
	h.keys[h.size] = key
	h.pos[name] = h.size
	h.siftUp(h.size)
}

func (h *Heap) grow() {
	newCap := len(h.cities) * 2
	cities := make([]string, newCap)
	keys := make([]Key, newCap)
	copy(cities, h.cities)
	copy(keys, h.keys)
	h.cities = cities
	h.keys = keys
}

// DecreaseKey lowers name's key to newKey if name is present and
// newKey.Less(current). It reports whether the update happened.
func (h *Heap) DecreaseKey(name string, newKey Key) bool {
	idx, ok := h.pos[name]
	if !ok || idx == 0 {
		return false
	}
	if !newKey.Less(h.keys[idx]) {
		return false
	}
	h.keys[idx] = newKey
	h.siftUp(idx)

	return true
}

// Pop removes and returns the city with the smallest key.
func (h *Heap) Pop() (name string, key Key, ok bool) {
	if h.size == 0 {
		return "", Key{}, false
	}
	name = h.cities[1]
	key = h.keys[1]
	h.removeAt(1)
	h.pos[name] = 0

	return name, key, true
}

// removeAt extracts the entry at index idx by swapping in the last
// entry and sifting it into place, then shrinking size by one.
func (h *Heap) removeAt(idx int) {
	last := h.size
	if idx != last {
		h.swap(idx, last)
	}
	h.cities[last] = ""
	h.size--
	if idx <= h.size {
		h.siftDown(idx)
		h.siftUp(idx)
	}
}

func (h *Heap) swap(i, j int) {
	h.cities[i], h.cities[j] = h.cities[j], h.cities[i]
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	h.pos[h.cities[i]] = i
	h.pos[h.cities[j]] = j
}

func (h *Heap) siftUp(idx int) {
	for idx > 1 {
		parent := idx / 2
		if !h.keys[idx].Less(h.keys[parent]) {
			break
		}
		h.swap(idx, parent)
		idx = parent
	}
}

func (h *Heap) siftDown(idx int) {
	for {
		left, right := idx*2, idx*2+1
		smallest := idx
		if left <= h.size && h.keys[left].Less(h.keys[smallest]) {
			smallest = left
		}
		if right <= h.size && h.keys[right].Less(h.keys[smallest]) {
			smallest = right
		}
		if smallest == idx {
			break
		}
		h.swap(idx, smallest)
		idx = smallest
	}
}
