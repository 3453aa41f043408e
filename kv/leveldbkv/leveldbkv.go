// Package leveldbkv implements kv.Store using leveldb, for persistent
// trees. Adapted from the teacher's storage/kv/leveldbkv, trimmed to the
// four-method Store contract (spec §4.3): batch writes and ordered
// iteration aren't part of that contract, since the tree provides no
// transactional rollback to batch against and never iterates keys.
package leveldbkv

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/sparsemt/smt-go/kv"
)

// Store wraps an open leveldb.DB as a kv.Store, writing with Sync:true so
// a completed Set/Remove is durable before it returns — matching the
// teacher's guarantee that "After Put(k,v) has returned... Get(k) MUST
// always return v".
type Store struct {
	db *leveldb.DB
}

var _ kv.Store = (*Store)(nil)

var writeOpts = &opt.WriteOptions{Sync: true}

// Open opens (creating if absent) a leveldb database at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return Wrap(db), nil
}

// Wrap adapts an already-open leveldb.DB.
func Wrap(db *leveldb.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	v, err := s.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (s *Store) Set(key, value []byte) error {
	return s.db.Put(key, value, writeOpts)
}

func (s *Store) Remove(key []byte) ([]byte, error) {
	v, ok, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, kv.ErrNotFound
	}
	if err := s.db.Delete(key, writeOpts); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Store) Contains(key []byte) (bool, error) {
	return s.db.Has(key, nil)
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
