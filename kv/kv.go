// Package kv defines the content-addressed store contract the tree engine
// is parameterized by (spec §4.3): a byte-keyed, byte-valued store with
// get/set/remove/contains, where absence is distinguishable from error.
// The teacher's storage/kv.DB offered the same four operations plus batch
// writes and ordered iteration; this contract drops both, since neither is
// exercised by an SMT (ordered iteration over keys is an explicit
// spec.md Non-goal, and the tree provides no transactional rollback to
// batch against).
package kv

import "errors"

// ErrNotFound is returned by Remove when the key is absent. Get reports
// absence through its second return value instead of an error, so callers
// can distinguish "no such key" from a genuine store failure.
var ErrNotFound = errors.New("kv: key not found")

// Store is the node store a tree is constructed over. Implementations must
// be safe for the concurrency model described in spec §5: the tree never
// calls back into itself re-entrantly, so a Store only needs to support
// whatever concurrency its own callers impose on it.
type Store interface {
	// Get returns the value for key, and whether it was present. A
	// missing key is not an error.
	Get(key []byte) (value []byte, ok bool, err error)

	// Set writes value under key, overwriting any existing value.
	Set(key, value []byte) error

	// Remove deletes key and returns its former value. Returns
	// ErrNotFound if key was absent.
	Remove(key []byte) ([]byte, error)

	// Contains reports whether key is present, without fetching its
	// value.
	Contains(key []byte) (bool, error)
}
