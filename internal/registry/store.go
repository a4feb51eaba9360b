// Package registry provides the in-memory keyed collection behind the
// employee, member and student menus.
package registry

import (
	"cmp"
	"slices"
)

// Store is an in-memory map with sorted listing.
type Store[K cmp.Ordered, V any] struct {
	byKey map[K]V
}

// New creates an empty Store.
func New[K cmp.Ordered, V any]() *Store[K, V] {
	return &Store[K, V]{byKey: make(map[K]V)}
}

// Put inserts or replaces the value stored under key.
func (s *Store[K, V]) Put(key K, v V) {
	s.byKey[key] = v
}

// Get returns the value stored under key.
func (s *Store[K, V]) Get(key K) (V, bool) {
	v, ok := s.byKey[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Store[K, V]) Has(key K) bool {
	_, ok := s.byKey[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (s *Store[K, V]) Delete(key K) bool {
	if _, ok := s.byKey[key]; !ok {
		return false
	}
	delete(s.byKey, key)
	return true
}

// Sorted returns all values ordered by key.
func (s *Store[K, V]) Sorted() []V {
	keys := make([]K, 0, len(s.byKey))
	for k := range s.byKey {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.byKey[k])
	}
	return out
}
