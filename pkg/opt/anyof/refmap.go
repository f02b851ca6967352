package anyof

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// KeyNotFoundError reports a by-reference lookup for a key with no entry.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("anyof: key not found: %v", e.Key)
}

// RefMap maps keys to Any containers and exposes both by-reference and
// by-value access to its entries.
//
// The by-reference path (Ref, GetOrAddRef, TryRef, ForEachRef, Refs) hands
// out handles whose mutations are visible in the map without a write-back
// step. Containers are heap-allocated, so a handle stays valid even if the
// map grows afterwards. The by-value path (Get, Set) works on detached
// copies: mutating a Get result never changes the stored entry.
//
// A RefMap is not synchronized.
type RefMap[K comparable, T comparable] struct {
	entries map[K]*Any[T]
}

// NewRefMap returns an empty RefMap.
func NewRefMap[K, T comparable]() *RefMap[K, T] {
	return &RefMap[K, T]{entries: make(map[K]*Any[T])}
}

// Ref returns a handle to the container stored under k, or *KeyNotFoundError
// if there is none. Use TryRef when absence is expected.
func (m *RefMap[K, T]) Ref(k K) (*Any[T], error) {
	entry, ok := m.entries[k]
	if !ok {
		return nil, &KeyNotFoundError{Key: k}
	}
	return entry, nil
}

// GetOrAddRef returns a handle to the container stored under k, inserting an
// empty container first when the key is absent.
func (m *RefMap[K, T]) GetOrAddRef(k K) *Any[T] {
	entry, ok := m.entries[k]
	if !ok {
		entry = &Any[T]{}
		m.entries[k] = entry
	}
	return entry
}

// TryRef returns a handle to the container stored under k and whether it was
// found. On not-found the handle is nil, never a handle to another entry.
func (m *RefMap[K, T]) TryRef(k K) (*Any[T], bool) {
	entry, ok := m.entries[k]
	if !ok {
		return nil, false
	}
	return entry, true
}

// ForEachRef invokes fn with every key and a handle to its container. The
// action may mutate through the handle. It panics with *KeyNotFoundError if
// a visited key disappears mid-iteration through caller misuse.
func (m *RefMap[K, T]) ForEachRef(fn func(K, *Any[T])) {
	keys := slices.Collect(maps.Keys(m.entries))
	for _, k := range keys {
		entry, ok := m.entries[k]
		if !ok {
			panic(&KeyNotFoundError{Key: k})
		}
		fn(k, entry)
	}
}

// Refs returns an iterator over handles to all stored containers, in no
// particular order.
func (m *RefMap[K, T]) Refs() iter.Seq[*Any[T]] {
	return maps.Values(m.entries)
}

// Keys returns an iterator over all keys, in no particular order.
func (m *RefMap[K, T]) Keys() iter.Seq[K] {
	return maps.Keys(m.entries)
}

// Get returns a detached copy of the container stored under k. Mutating the
// copy does not affect the stored entry.
func (m *RefMap[K, T]) Get(k K) (Any[T], bool) {
	entry, ok := m.entries[k]
	if !ok {
		return Any[T]{}, false
	}
	return entry.Clone(), true
}

// Set stores a copy of a under k, replacing any existing entry. Later
// mutations of a do not affect the stored entry.
func (m *RefMap[K, T]) Set(k K, a Any[T]) {
	entry := a.Clone()
	m.entries[k] = &entry
}

// ContainsKey reports whether k has an entry.
func (m *RefMap[K, T]) ContainsKey(k K) bool {
	_, ok := m.entries[k]
	return ok
}

// Delete removes the entry under k, reporting whether one existed.
func (m *RefMap[K, T]) Delete(k K) bool {
	_, ok := m.entries[k]
	delete(m.entries, k)
	return ok
}

// Len returns the number of entries.
func (m *RefMap[K, T]) Len() int {
	return len(m.entries)
}
