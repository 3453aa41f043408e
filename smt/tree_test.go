package smt

import (
	"bytes"
	"testing"

	"github.com/sparsemt/smt-go/hasher/sha512256"
	"github.com/sparsemt/smt-go/kv/memkv"
)

func newTestTree(t *testing.T) (*Tree, *memkv.Store, *memkv.Store) {
	t.Helper()
	h := sha512256.New()
	nodes := memkv.New()
	values := memkv.New()
	return New(h, nodes, values), nodes, values
}

// S1: an empty tree's root is the placeholder digest.
func TestEmptyRootIsPlaceholder(t *testing.T) {
	tree, _, _ := newTestTree(t)
	if !isPlaceholder(tree.Root()) {
		t.Fatalf("empty tree root = %x, want placeholder", tree.Root())
	}
}

// S2: inserting a single key produces the expected root and is readable.
func TestUpdateReadYourWrite(t *testing.T) {
	tree, _, _ := newTestTree(t)

	if err := tree.Update([]byte("foo"), []byte("bar")); err != nil {
		t.Fatalf("Update: %v", err)
	}

	v, ok, err := tree.Get([]byte("foo"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || !bytes.Equal(v, []byte("bar")) {
		t.Fatalf("Get(foo) = (%q, %v), want (\"bar\", true)", v, ok)
	}

	v, ok, err = tree.Get([]byte("baz"))
	if err != nil {
		t.Fatalf("Get(baz): %v", err)
	}
	if ok {
		t.Fatalf("Get(baz) = (%q, true), want not-found", v)
	}

	h := sha512256.New()
	wantRoot := hashNode(h, encodeLeaf(h.Digest([]byte("foo")), h.Digest([]byte("bar"))))
	if !bytes.Equal(tree.Root(), wantRoot) {
		t.Fatalf("root = %x, want %x", tree.Root(), wantRoot)
	}
}

// S3: overwriting a key leaves the tree as if only the final value had
// ever been inserted.
func TestUpdateOverwriteConverges(t *testing.T) {
	tree, _, _ := newTestTree(t)
	mustUpdate(t, tree, "a", "1")
	mustUpdate(t, tree, "b", "2")
	mustUpdate(t, tree, "a", "1b")

	other, _, _ := newTestTree(t)
	mustUpdate(t, other, "a", "1b")
	mustUpdate(t, other, "b", "2")

	if !bytes.Equal(tree.Root(), other.Root()) {
		t.Fatalf("root after overwrite = %x, want %x (order independence)", tree.Root(), other.Root())
	}

	v, ok, err := tree.Get([]byte("a"))
	if err != nil || !ok || !bytes.Equal(v, []byte("1b")) {
		t.Fatalf("Get(a) = (%q, %v, %v), want (\"1b\", true, nil)", v, ok, err)
	}
	v, ok, err = tree.Get([]byte("b"))
	if err != nil || !ok || !bytes.Equal(v, []byte("2")) {
		t.Fatalf("Get(b) = (%q, %v, %v), want (\"2\", true, nil)", v, ok, err)
	}
}

// S4: delete is the inverse of update.
func TestDeleteInverse(t *testing.T) {
	tree, nodes, _ := newTestTree(t)
	mustUpdate(t, tree, "a", "1")
	mustUpdate(t, tree, "b", "2")
	if err := tree.Delete([]byte("a")); err != nil {
		t.Fatalf("Delete(a): %v", err)
	}

	other, otherNodes, _ := newTestTree(t)
	mustUpdate(t, other, "b", "2")

	if !bytes.Equal(tree.Root(), other.Root()) {
		t.Fatalf("root after delete = %x, want %x", tree.Root(), other.Root())
	}
	if nodes.Len() != otherNodes.Len() {
		t.Fatalf("node store has %d entries, want %d (no orphans)", nodes.Len(), otherNodes.Len())
	}

	_, ok, err := tree.Get([]byte("a"))
	if err != nil {
		t.Fatalf("Get(a): %v", err)
	}
	if ok {
		t.Fatalf("Get(a) after delete = found, want absent")
	}
}

func TestDeleteEmptiesTree(t *testing.T) {
	tree, nodes, values := newTestTree(t)
	mustUpdate(t, tree, "solo", "value")
	if err := tree.Delete([]byte("solo")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !isPlaceholder(tree.Root()) {
		t.Fatalf("root after deleting last key = %x, want placeholder", tree.Root())
	}
	if nodes.Len() != 0 || values.Len() != 0 {
		t.Fatalf("stores not empty after deleting last key: nodes=%d values=%d", nodes.Len(), values.Len())
	}
}

func TestDeleteNotFound(t *testing.T) {
	tree, _, _ := newTestTree(t)
	mustUpdate(t, tree, "a", "1")
	if err := tree.Delete([]byte("nope")); err != ErrKeyNotFound {
		t.Fatalf("Delete(nope) err = %v, want ErrKeyNotFound", err)
	}
}

// Determinism: the root doesn't depend on insertion order.
func TestUpdateDeterministicAcrossOrder(t *testing.T) {
	pairs := []struct{ k, v string }{
		{"alpha", "1"}, {"bravo", "2"}, {"charlie", "3"}, {"delta", "4"},
	}
	orders := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
	}

	var roots [][]byte
	for _, order := range orders {
		tree, _, _ := newTestTree(t)
		for _, i := range order {
			mustUpdate(t, tree, pairs[i].k, pairs[i].v)
		}
		roots = append(roots, tree.Root())
	}
	for i := 1; i < len(roots); i++ {
		if !bytes.Equal(roots[0], roots[i]) {
			t.Fatalf("root under order %v = %x, want %x (order %v)", orders[i], roots[i], roots[0], orders[0])
		}
	}
}

// Redundant writes (same value hash) are observably no-ops (spec §9).
func TestUpdateRedundantWriteIsNoop(t *testing.T) {
	tree, nodes, values := newTestTree(t)
	mustUpdate(t, tree, "a", "1")
	rootBefore := tree.Root()
	nodesBefore, valuesBefore := nodes.Len(), values.Len()

	if err := tree.Update([]byte("a"), []byte("1")); err != nil {
		t.Fatalf("redundant Update: %v", err)
	}
	if !bytes.Equal(tree.Root(), rootBefore) {
		t.Fatalf("root changed on redundant write: %x -> %x", rootBefore, tree.Root())
	}
	if nodes.Len() != nodesBefore || values.Len() != valuesBefore {
		t.Fatalf("store grew on redundant write: nodes %d->%d values %d->%d",
			nodesBefore, nodes.Len(), valuesBefore, values.Len())
	}
}

func mustUpdate(t *testing.T, tree *Tree, key, value string) {
	t.Helper()
	if err := tree.Update([]byte(key), []byte(value)); err != nil {
		t.Fatalf("Update(%q, %q): %v", key, value, err)
	}
}
