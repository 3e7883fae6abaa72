// Package ordermap implements a small ordered key→value container keyed
// by any cmp.Ordered type. It backs every "ordered mapping" surface in
// this module (city catalog, per-city neighbour table) the same way
// core.Graph.Vertices()/Edges() back theirs: a plain Go map plus
// deterministic sorted iteration, not a literal balanced tree.
//
// Ownership of stored keys/values is the caller's concern (Go's garbage
// collector), not a runtime teardown-mode parameter.
package ordermap

import (
	"cmp"
	"sort"
)

// Map is an ordered key→value container. The zero value is not usable;
// construct with New.
type Map[K cmp.Ordered, V any] struct {
	data map[K]V
}

// New creates an empty Map.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{data: make(map[K]V)}
}

// Insert adds key→value if key is absent. If key is already present,
// Insert is a no-op and returns false, leaving the existing value intact.
// Complexity: O(1) amortized.
func (m *Map[K, V]) Insert(key K, value V) bool {
	if _, exists := m.data[key]; exists {
		return false
	}
	m.data[key] = value

	return true
}

// Set unconditionally installs key→value, overwriting any prior value.
// Used where the caller has already established key is new or where
// replacement is intended (e.g. core's AddCity and AddRoad, which check
// for an existing entry first).
func (m *Map[K, V]) Set(key K, value V) {
	m.data[key] = value
}

// Remove deletes key if present and reports whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	if _, exists := m.data[key]; !exists {
		return false
	}
	delete(m.data, key)

	return true
}

// Get returns the value stored at key and whether key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.data[key]

	return v, ok
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.data[key]

	return ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.data) }

// KeysInOrder returns all keys sorted ascending.
// Complexity: O(n log n).
func (m *Map[K, V]) KeysInOrder() []K {
	keys := make([]K, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}

// ValuesInOrder returns all values, ordered by their key ascending.
// Complexity: O(n log n).
func (m *Map[K, V]) ValuesInOrder() []V {
	keys := m.KeysInOrder()
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.data[k])
	}

	return out
}

// Clone returns a shallow copy: a new Map with the same key→value pairs.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := New[K, V]()
	for k, v := range m.data {
		out.data[k] = v
	}

	return out
}
