package smt

import "github.com/sparsemt/smt-go/hasher"

// NodeUpdate is a single (hash, encoding) pair produced while recomputing
// a root from a proof, in the order they were derived (leaf first,
// ancestors after).
type NodeUpdate struct {
	Hash     []byte
	Encoding []byte
}

// ApplyUpdate verifies proof as a membership proof of key -> value
// against root, recomputing the root the way Verify does for a present
// value, and additionally returns every intermediate node it recomputed
// along the way. Unlike Verify, it rejects a proof carrying a
// NonMembershipLeaf with ErrBadProof, and requires SiblingData, when
// present, to hash to the deepest side node (spec
// SPEC_FULL "sibling-data capture"; grounded on the Rust original's
// verify_proof_with_updates). A caller holding its own node cache can
// feed these straight into a Store to apply the corresponding update
// without a second round trip through the tree that produced the proof.
//
// If proof does not verify against root, ApplyUpdate returns ok=false
// and a nil update list.
func ApplyUpdate(h hasher.Hasher, proof *Proof, root, key, value []byte) (ok bool, updates []NodeUpdate, err error) {
	if err := sanityCheckSiblingData(h, proof); err != nil {
		return false, nil, err
	}

	p := h.Digest(key)
	updates = make([]NodeUpdate, 0, len(proof.SideNodes)+1)

	var candidate []byte
	if proof.NonMembershipLeaf != nil {
		return false, nil, ErrBadProof
	}
	valueHash := h.Digest(value)
	leafBlob := encodeLeaf(p, valueHash)
	candidate = hashNode(h, leafBlob)
	updates = append(updates, NodeUpdate{Hash: candidate, Encoding: leafBlob})

	for i := len(proof.SideNodes) - 1; i >= 0; i-- {
		var blob []byte
		if getBitAtFromMSB(p, i) == 0 {
			blob = encodeInner(candidate, proof.SideNodes[i])
		} else {
			blob = encodeInner(proof.SideNodes[i], candidate)
		}
		candidate = hashNode(h, blob)
		updates = append(updates, NodeUpdate{Hash: candidate, Encoding: blob})
	}

	if !equalBytes(candidate, root) {
		return false, nil, nil
	}
	return true, updates, nil
}
