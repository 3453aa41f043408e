package smt

import "github.com/sparsemt/smt-go/hasher"

// CompactProof is the space-saving encoding of a Proof that elides
// placeholder side nodes and records their positions in a bitmask
// (spec §4.6), grounded on the Rust original's
// SparseCompactMerkleProof::compact/decompact.
type CompactProof struct {
	Bitmask           []byte
	SideNodesPresent  [][]byte
	NonMembershipLeaf *NonMembershipLeaf
	NumSideNodes      int
	SiblingData       []byte
}

// Compact elides placeholder side nodes from p, recording their
// positions in a bitmask. Fails ErrBadProof if p itself is malformed
// (too many side nodes, or sibling data whose hash disagrees with the
// deepest side node).
func Compact(h hasher.Hasher, p *Proof) (*CompactProof, error) {
	if err := sanityCheckSiblingData(h, p); err != nil {
		return nil, err
	}

	numSideNodes := len(p.SideNodes)
	bitmask := make([]byte, (numSideNodes+7)/8)
	present := make([][]byte, 0, numSideNodes)

	for i, side := range p.SideNodes {
		if isPlaceholder(side) {
			setBitAtFromMSB(bitmask, i)
			continue
		}
		present = append(present, side)
	}

	return &CompactProof{
		Bitmask:           bitmask,
		SideNodesPresent:  present,
		NonMembershipLeaf: p.NonMembershipLeaf,
		NumSideNodes:      numSideNodes,
		SiblingData:       p.SiblingData,
	}, nil
}

// Uncompact reinserts placeholders at the positions cp's bitmask marks,
// reconstructing the full Proof. Fails ErrBadProof if the bitmask width,
// the side-node count, or cp.NumSideNodes disagree with each other.
func Uncompact(h hasher.Hasher, cp *CompactProof) (*Proof, error) {
	depth := h.Size() * 8
	if cp.NumSideNodes > depth {
		return nil, ErrBadProof
	}
	wantBitmaskLen := (cp.NumSideNodes + 7) / 8
	if len(cp.Bitmask) != wantBitmaskLen {
		return nil, ErrBadProof
	}
	if cp.NumSideNodes > 0 {
		placeholderCount := countSetBits(cp.Bitmask)
		if len(cp.SideNodesPresent) != cp.NumSideNodes-placeholderCount {
			return nil, ErrBadProof
		}
	} else if len(cp.SideNodesPresent) != 0 {
		return nil, ErrBadProof
	}

	sideNodes := make([][]byte, cp.NumSideNodes)
	pos := 0
	ph := placeholder(h)
	for i := 0; i < cp.NumSideNodes; i++ {
		if getBitAtFromMSB(cp.Bitmask, i) == 1 {
			sideNodes[i] = ph
			continue
		}
		if pos >= len(cp.SideNodesPresent) {
			return nil, ErrBadProof
		}
		sideNodes[i] = cp.SideNodesPresent[pos]
		pos++
	}

	return &Proof{
		SideNodes:         sideNodes,
		NonMembershipLeaf: cp.NonMembershipLeaf,
		SiblingData:       cp.SiblingData,
	}, nil
}

// sanityCheckProof rejects structurally malformed proofs before any root
// recomputation is attempted (Rust original's
// SparseMerkleProof::sanity_check): an oversized side-node list, a side
// node of the wrong width, or a malformed non-membership leaf. This is
// the check a verifier runs: a content mismatch (a tampered side node or
// value) is not a structural defect and must surface as a plain failed
// verification, not ErrBadProof (spec §7).
func sanityCheckProof(h hasher.Hasher, p *Proof) error {
	n := h.Size()
	depth := n * 8

	if len(p.SideNodes) > depth {
		return ErrBadProof
	}
	for _, side := range p.SideNodes {
		if len(side) != n {
			return ErrBadProof
		}
	}
	if p.NonMembershipLeaf != nil {
		if len(p.NonMembershipLeaf.Path) != n || len(p.NonMembershipLeaf.ValueHash) != n {
			return ErrBadProof
		}
	}
	return nil
}

// sanityCheckSiblingData additionally requires that, when present,
// SiblingData hashes to the deepest side node. Only meaningful to a
// caller about to use SiblingData itself (ApplyUpdate, or Compact
// packaging it for transport); Verify never touches SiblingData, so it
// does not run this check.
func sanityCheckSiblingData(h hasher.Hasher, p *Proof) error {
	if err := sanityCheckProof(h, p); err != nil {
		return err
	}
	if len(p.SideNodes) == 0 || p.SiblingData == nil {
		return nil
	}
	if !equalBytes(hashNode(h, p.SiblingData), p.SideNodes[len(p.SideNodes)-1]) {
		return ErrBadProof
	}
	return nil
}
