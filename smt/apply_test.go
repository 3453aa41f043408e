package smt

import (
	"bytes"
	"testing"
)

func TestApplyUpdateMatchesTreeUpdate(t *testing.T) {
	tree, _, _ := newTestTree(t)
	mustUpdate(t, tree, "a", "1")
	mustUpdate(t, tree, "b", "2")

	proof, err := tree.Prove([]byte("a"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	mustUpdate(t, tree, "a", "1b")

	ok, updates, err := ApplyUpdate(tree.h, proof, tree.Root(), []byte("a"), []byte("1b"))
	if err != nil {
		t.Fatalf("ApplyUpdate: %v", err)
	}
	if !ok {
		t.Fatal("ApplyUpdate did not verify against the tree's root after the update")
	}
	if len(updates) == 0 {
		t.Fatal("ApplyUpdate returned no node updates")
	}
	if !bytes.Equal(updates[len(updates)-1].Hash, tree.Root()) {
		t.Fatalf("last ApplyUpdate hash = %x, want root %x", updates[len(updates)-1].Hash, tree.Root())
	}
	for _, u := range updates {
		if !bytes.Equal(hashNode(tree.h, u.Encoding), u.Hash) {
			t.Fatalf("update encoding does not hash to its own Hash field")
		}
	}
}

func TestApplyUpdateRejectsWrongRoot(t *testing.T) {
	tree, _, _ := newTestTree(t)
	mustUpdate(t, tree, "a", "1")

	proof, err := tree.Prove([]byte("a"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}

	badRoot := append([]byte(nil), tree.Root()...)
	badRoot[0] ^= 0xFF

	ok, updates, err := ApplyUpdate(tree.h, proof, badRoot, []byte("a"), []byte("1"))
	if err != nil {
		t.Fatalf("ApplyUpdate: %v", err)
	}
	if ok || updates != nil {
		t.Fatalf("ApplyUpdate against wrong root = (%v, %v), want (false, nil)", ok, updates)
	}
}
