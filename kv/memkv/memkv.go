// Package memkv implements kv.Store in memory, for tests and for trees
// that don't need to survive a process restart. It follows the same
// thin-wrapper shape as the teacher's storage/kv/leveldbkv, but backs
// onto a plain Go map guarded by a mutex instead of an embedded database.
package memkv

import (
	"sync"

	"github.com/sparsemt/smt-go/kv"
)

// Store is a mutex-protected map-backed kv.Store.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

var _ kv.Store = (*Store)(nil)

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[string(key)]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *Store) Set(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[string(key)] = cp
	return nil
}

func (s *Store) Remove(key []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[string(key)]
	if !ok {
		return nil, kv.ErrNotFound
	}
	delete(s.data, string(key))
	return v, nil
}

func (s *Store) Contains(key []byte) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[string(key)]
	return ok, nil
}

// Len reports the number of entries currently stored, for test assertions
// about orphan cleanup (spec §8 property 10).
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
