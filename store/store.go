package store

import "github.com/elias19r/thread-cache/types"

/*
This file defines how data is actually stored inside one cache scope.

A scope is owned by exactly one execution context, so unlike a shared
cache there is nothing to synchronize: no locks, no atomics, no
copy-on-write. The store is a plain map behind a small interface, so the
cache core does not depend on the concrete layout.
*/

// Store is the interface one cache scope uses to keep its entries.
// Implementations are NOT safe for concurrent use; a store belongs to a
// single owner.
type Store interface {

	// Get retrieves an entry by key.
	Get(string) (*types.Entry, bool)

	// Put inserts or replaces an entry.
	Put(string, *types.Entry)

	// Delete removes an entry and reports whether it existed.
	Delete(string) bool

	// Len returns how many entries are stored.
	Len() int

	// Keys returns every stored key. The order is unspecified.
	Keys() []string

	// Range calls fn for each entry until fn returns false.
	// fn must not mutate the store; collect keys and mutate afterwards.
	Range(fn func(string, *types.Entry) bool)
}

// mapStore is the default Store: a bare map.
type mapStore struct {
	data map[string]*types.Entry
}

func NewMapStore() Store {
	return &mapStore{data: make(map[string]*types.Entry)}
}

func (s *mapStore) Get(key string) (*types.Entry, bool) {
	ent, ok := s.data[key]
	return ent, ok
}

func (s *mapStore) Put(key string, ent *types.Entry) {
	s.data[key] = ent
}

func (s *mapStore) Delete(key string) bool {
	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	return true
}

func (s *mapStore) Len() int {
	return len(s.data)
}

func (s *mapStore) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

func (s *mapStore) Range(fn func(string, *types.Entry) bool) {
	for k, ent := range s.data {
		if !fn(k, ent) {
			return
		}
	}
}
