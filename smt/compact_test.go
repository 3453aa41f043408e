package smt

import (
	"bytes"
	"testing"

	"github.com/sparsemt/smt-go/hasher/sha512256"
)

// S6: compacting and uncompacting a proof round-trips and still verifies.
func TestCompactRoundTrip(t *testing.T) {
	tree, _, _ := newTestTree(t)
	keys := make([]string, 0, 64)
	for i := 0; i < 64; i++ {
		k := "key-" + string(rune('A'+i%26)) + string(rune('a'+i%17))
		keys = append(keys, k)
		mustUpdate(t, tree, k, "value-"+k)
	}

	for _, k := range keys {
		proof, err := tree.Prove([]byte(k))
		if err != nil {
			t.Fatalf("Prove(%q): %v", k, err)
		}

		cp, err := Compact(tree.h, proof)
		if err != nil {
			t.Fatalf("Compact(%q): %v", k, err)
		}

		back, err := Uncompact(tree.h, cp)
		if err != nil {
			t.Fatalf("Uncompact(%q): %v", k, err)
		}

		if len(back.SideNodes) != len(proof.SideNodes) {
			t.Fatalf("Uncompact(%q) side nodes len = %d, want %d", k, len(back.SideNodes), len(proof.SideNodes))
		}
		for i := range proof.SideNodes {
			if !bytes.Equal(back.SideNodes[i], proof.SideNodes[i]) {
				t.Fatalf("Uncompact(%q) side node %d = %x, want %x", k, i, back.SideNodes[i], proof.SideNodes[i])
			}
		}

		ok, err := VerifyCompact(tree.h, cp, tree.Root(), []byte(k), []byte("value-"+k))
		if err != nil {
			t.Fatalf("VerifyCompact(%q): %v", k, err)
		}
		if !ok {
			t.Fatalf("VerifyCompact(%q) = false, want true", k)
		}
	}
}

func TestCompactElidesPlaceholders(t *testing.T) {
	h := sha512256.New()
	n := h.Size()
	real := make([]byte, n)
	real[0] = 0x01

	proof := &Proof{SideNodes: [][]byte{placeholder(h), real, placeholder(h)}}
	cp, err := Compact(h, proof)
	if err != nil {
		t.Fatalf("Compact: %v", err)
	}
	if len(cp.SideNodesPresent) != 1 {
		t.Fatalf("SideNodesPresent len = %d, want 1", len(cp.SideNodesPresent))
	}
	if !bytes.Equal(cp.SideNodesPresent[0], real) {
		t.Fatalf("SideNodesPresent[0] = %x, want %x", cp.SideNodesPresent[0], real)
	}
	if getBitAtFromMSB(cp.Bitmask, 0) != 1 || getBitAtFromMSB(cp.Bitmask, 1) != 0 || getBitAtFromMSB(cp.Bitmask, 2) != 1 {
		t.Fatalf("bitmask = %08b, want placeholder bits at 0 and 2 only", cp.Bitmask)
	}
}

func TestUncompactRejectsInconsistentBitmask(t *testing.T) {
	tree, _, _ := newTestTree(t)
	mustUpdate(t, tree, "a", "1")
	mustUpdate(t, tree, "b", "2")

	proof, err := tree.Prove([]byte("a"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	cp, err := Compact(tree.h, proof)
	if err != nil {
		t.Fatalf("Compact: %v", err)
	}

	cp.NumSideNodes++
	if _, err := Uncompact(tree.h, cp); err != ErrBadProof {
		t.Fatalf("Uncompact with bad NumSideNodes err = %v, want ErrBadProof", err)
	}
}

func TestUncompactRejectsOversizedProof(t *testing.T) {
	tree, _, _ := newTestTree(t)
	cp := &CompactProof{NumSideNodes: tree.h.Size()*8 + 1, Bitmask: make([]byte, tree.h.Size()+1)}
	if _, err := Uncompact(tree.h, cp); err != ErrBadProof {
		t.Fatalf("Uncompact err = %v, want ErrBadProof", err)
	}
}
