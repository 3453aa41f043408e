package smt

import (
	"errors"
	"fmt"
)

// Sentinel errors, matching the teacher's "[merkletree] ..."-prefixed
// convention (merkletree.ErrInvalidTree) and its per-condition sentinels
// (nodekv.go's ErrorBadNodeLength / ErrorBadNodeIdentifier).
var (
	// ErrKeyNotFound is returned by Delete when the key has no leaf.
	ErrKeyNotFound = errors.New("[smt] key not found")

	// ErrCorruptStore is returned when a referenced node digest or leaf
	// value hash is absent from its store. A stored blob that fails to
	// decode (unknown prefix or wrong length) surfaces as ErrBadEncoding
	// instead, and inner nodes with a placeholder child are not treated
	// as corruption.
	ErrCorruptStore = errors.New("[smt] corrupt store")

	// ErrBadEncoding is returned by decode on an unrecognised prefix
	// byte or a blob of the wrong length.
	ErrBadEncoding = errors.New("[smt] bad node encoding")

	// ErrBadProof is returned by Verify/VerifyCompact and by Uncompact
	// when a proof is structurally malformed: too many side nodes, an
	// inconsistent compact bitmask, or a non-membership leaf whose path
	// equals the queried path.
	ErrBadProof = errors.New("[smt] bad proof")
)

// StoreError wraps any error returned by the caller's kv.Store, so it can
// be told apart from the tree's own structural errors while still
// unwrapping to the original cause (spec §7).
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("[smt] store error during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
