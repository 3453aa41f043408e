package smt

// Proof is produced by Prove and consumed by Verify (spec §4.5).
//
// SideNodes is the ordered sibling-digest list gathered walking from the
// root to the termination point, top of tree first. NonMembershipLeaf is
// nil unless the walk terminated on a *different* key's leaf, in which
// case it names that leaf's path and value hash — sufficient to prove
// the queried key's absence by collision (spec §9 glossary).
//
// SiblingData is the encoded blob of the deepest side node (the one
// adjacent to the termination point), when the proof has at least one
// (§ SPEC_FULL "Sibling-data capture"); it lets a
// verifier that also caches nodes apply the corresponding update locally
// without a second store round-trip, via ApplyUpdate. A proof built for
// a membership/non-membership check that will only ever be verified, not
// applied, may leave it unused.
type Proof struct {
	SideNodes         [][]byte
	NonMembershipLeaf *NonMembershipLeaf
	SiblingData       []byte
}

// NonMembershipLeaf names the unrelated leaf occupying a queried key's
// slot, proving the key's absence by prefix collision.
type NonMembershipLeaf struct {
	Path      []byte
	ValueHash []byte
}

// Prove builds an inclusion or non-inclusion proof for key against the
// tree's current root (spec §4.5). It performs the same walk as Get and
// never writes to the store.
func (t *Tree) Prove(key []byte) (*Proof, error) {
	return t.proveForRoot(key, t.root)
}

// ProveForRoot builds a proof against an explicit historical root rather
// than the tree's current one, provided the underlying store still holds
// every node on that root's paths. Useful for verifying a proof against
// a root observed earlier (spec §5: a proof is only ever valid against
// the root it was produced for).
func (t *Tree) ProveForRoot(key, root []byte) (*Proof, error) {
	return t.proveForRoot(key, root)
}

func (t *Tree) proveForRoot(key, root []byte) (*Proof, error) {
	p := t.path(key)

	sideNodes, _, siblingData, terminal, err := t.sideNodesForRoot(p, root, true)
	if err != nil {
		return nil, err
	}

	proof := &Proof{
		SideNodes:   sideNodes,
		SiblingData: siblingData,
	}

	if terminal != nil {
		leaf, _, derr := decodeNode(terminal, t.h.Size())
		if derr != nil {
			return nil, derr
		}
		if !equalBytes(leaf.path, p) {
			proof.NonMembershipLeaf = &NonMembershipLeaf{
				Path:      leaf.path,
				ValueHash: leaf.valueHash,
			}
		}
	}

	return proof, nil
}
