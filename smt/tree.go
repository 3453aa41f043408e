package smt

import (
	"github.com/sparsemt/smt-go/hasher"
	"github.com/sparsemt/smt-go/kv"
	"github.com/sparsemt/smt-go/telemetry"
)

// Tree is a sparse Merkle tree over a caller-supplied node store and
// value store, committing to its contents in a single root digest.
//
// A Tree holds no other state than its root; it is safe to keep many
// Trees over the same node store provided the store itself tolerates
// the access pattern (spec §5). A Tree is not safe for concurrent use
// by multiple goroutines without external synchronisation.
type Tree struct {
	h      hasher.Hasher
	nodes  kv.Store
	values kv.Store
	root   []byte
	log    *telemetry.Logger
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithLogger attaches a telemetry.Logger; omitted, the tree logs nothing.
func WithLogger(l *telemetry.Logger) Option {
	return func(t *Tree) { t.log = l }
}

// New returns an empty tree: root is the hasher's placeholder digest.
func New(h hasher.Hasher, nodes, values kv.Store, opts ...Option) *Tree {
	t := &Tree{
		h:      h,
		nodes:  nodes,
		values: values,
		root:   placeholder(h),
		log:    nil,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Import attaches to a node/value store that already holds a tree
// committed to the given root, rather than starting from empty.
func Import(h hasher.Hasher, nodes, values kv.Store, root []byte, opts ...Option) *Tree {
	t := New(h, nodes, values, opts...)
	t.root = append([]byte(nil), root...)
	return t
}

// Root returns the tree's current root digest.
func (t *Tree) Root() []byte {
	return append([]byte(nil), t.root...)
}

// SetRoot overrides the tree's root without touching the store. Useful
// to move the same tree instance across sibling roots that share a
// store, e.g. when replaying updates against a snapshot.
func (t *Tree) SetRoot(root []byte) {
	t.root = append([]byte(nil), root...)
}

func (t *Tree) path(key []byte) []byte {
	return t.h.Digest(key)
}

func (t *Tree) logWarn(msg string, kv ...interface{}) {
	if t.log != nil {
		t.log.Warn(msg, kv...)
	}
}
