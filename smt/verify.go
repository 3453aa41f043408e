package smt

import "github.com/sparsemt/smt-go/hasher"

// Absent is passed as the value argument to Verify/VerifyCompact for a
// non-membership query. It is distinct from nil so a caller proving
// "the key maps to the empty byte string" cannot be confused with one
// proving the key is unset.
var Absent = &struct{}{}

// Verify recomputes a candidate root from proof and reports whether it
// matches root (spec §4.7). value is either a membership query's value
// bytes, or the sentinel Absent for a non-membership query. Verify needs
// no store: every input it touches comes from proof, key, and value.
//
// Structural defects in proof (too many side nodes, a side node of the
// wrong width, a malformed non-membership leaf) are reported as an
// error; a proof that is well-formed but simply doesn't recompute to
// root — including one with a tampered side node — returns (false, nil).
// SiblingData is not read, so its content has no effect on the result.
func Verify(h hasher.Hasher, proof *Proof, root, key []byte, value interface{}) (bool, error) {
	if err := sanityCheckProof(h, proof); err != nil {
		return false, err
	}

	n := h.Size()
	p := h.Digest(key)

	var candidate []byte
	if value == Absent {
		switch {
		case proof.NonMembershipLeaf == nil:
			candidate = placeholder(h)
		case equalBytes(proof.NonMembershipLeaf.Path, p):
			// A leaf at the queried path cannot prove that path absent.
			return false, ErrBadProof
		default:
			if len(proof.NonMembershipLeaf.ValueHash) != n {
				return false, ErrBadProof
			}
			candidate = hashNode(h, encodeLeaf(proof.NonMembershipLeaf.Path, proof.NonMembershipLeaf.ValueHash))
		}
	} else {
		if proof.NonMembershipLeaf != nil {
			return false, ErrBadProof
		}
		valueBytes, ok := value.([]byte)
		if !ok {
			return false, ErrBadProof
		}
		candidate = hashNode(h, encodeLeaf(p, h.Digest(valueBytes)))
	}

	for i := len(proof.SideNodes) - 1; i >= 0; i-- {
		if getBitAtFromMSB(p, i) == 0 {
			candidate = hashNode(h, encodeInner(candidate, proof.SideNodes[i]))
		} else {
			candidate = hashNode(h, encodeInner(proof.SideNodes[i], candidate))
		}
	}

	return equalBytes(candidate, root), nil
}

// VerifyCompact uncompacts cp and verifies it (spec §4.6 "verify_compact
// = verify ∘ uncompact").
func VerifyCompact(h hasher.Hasher, cp *CompactProof, root, key []byte, value interface{}) (bool, error) {
	proof, err := Uncompact(h, cp)
	if err != nil {
		return false, err
	}
	return Verify(h, proof, root, key, value)
}
