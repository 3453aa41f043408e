package smt

import "github.com/sparsemt/smt-go/hasher"

// Marshal serialises proof to its wire form (spec §6):
// encode(non_membership_leaf) || encode(side_nodes). SiblingData is not
// part of the wire form; it is a local optimisation hint and is dropped.
func Marshal(h hasher.Hasher, proof *Proof) ([]byte, error) {
	if err := sanityCheckProof(h, proof); err != nil {
		return nil, err
	}
	n := h.Size()

	buf := make([]byte, 0, 1+2*n+1+len(proof.SideNodes)*n)
	if proof.NonMembershipLeaf == nil {
		buf = append(buf, 0x00)
	} else {
		buf = append(buf, 0x01)
		buf = append(buf, proof.NonMembershipLeaf.Path...)
		buf = append(buf, proof.NonMembershipLeaf.ValueHash...)
	}

	buf = append(buf, byte(len(proof.SideNodes)))
	for _, s := range proof.SideNodes {
		buf = append(buf, s...)
	}
	return buf, nil
}

// Unmarshal parses a proof written by Marshal. Fails ErrBadProof on any
// truncation or length mismatch.
func Unmarshal(h hasher.Hasher, blob []byte) (*Proof, error) {
	n := h.Size()
	depth := n * 8

	if len(blob) < 1 {
		return nil, ErrBadProof
	}
	tag := blob[0]
	blob = blob[1:]

	proof := &Proof{}
	switch tag {
	case 0x00:
	case 0x01:
		if len(blob) < 2*n {
			return nil, ErrBadProof
		}
		proof.NonMembershipLeaf = &NonMembershipLeaf{
			Path:      append([]byte(nil), blob[:n]...),
			ValueHash: append([]byte(nil), blob[n:2*n]...),
		}
		blob = blob[2*n:]
	default:
		return nil, ErrBadProof
	}

	if len(blob) < 1 {
		return nil, ErrBadProof
	}
	count := int(blob[0])
	blob = blob[1:]
	if count > depth {
		return nil, ErrBadProof
	}
	if len(blob) != count*n {
		return nil, ErrBadProof
	}

	sideNodes := make([][]byte, count)
	for i := 0; i < count; i++ {
		sideNodes[i] = append([]byte(nil), blob[i*n:(i+1)*n]...)
	}
	proof.SideNodes = sideNodes

	return proof, sanityCheckProof(h, proof)
}

// MarshalCompact serialises cp: the non-membership-leaf block from
// Marshal, followed by num_side_nodes (1 byte), the bitmask
// (ceil(num_side_nodes/8) bytes), then the present side-node digests.
func MarshalCompact(h hasher.Hasher, cp *CompactProof) ([]byte, error) {
	n := h.Size()
	depth := n * 8
	if cp.NumSideNodes > depth {
		return nil, ErrBadProof
	}

	buf := make([]byte, 0, 1+2*n+1+len(cp.Bitmask)+len(cp.SideNodesPresent)*n)
	if cp.NonMembershipLeaf == nil {
		buf = append(buf, 0x00)
	} else {
		buf = append(buf, 0x01)
		buf = append(buf, cp.NonMembershipLeaf.Path...)
		buf = append(buf, cp.NonMembershipLeaf.ValueHash...)
	}

	buf = append(buf, byte(cp.NumSideNodes))
	buf = append(buf, cp.Bitmask...)
	for _, s := range cp.SideNodesPresent {
		buf = append(buf, s...)
	}
	return buf, nil
}

// UnmarshalCompact parses a compact proof written by MarshalCompact.
func UnmarshalCompact(h hasher.Hasher, blob []byte) (*CompactProof, error) {
	n := h.Size()
	depth := n * 8

	if len(blob) < 1 {
		return nil, ErrBadProof
	}
	tag := blob[0]
	blob = blob[1:]

	cp := &CompactProof{}
	switch tag {
	case 0x00:
	case 0x01:
		if len(blob) < 2*n {
			return nil, ErrBadProof
		}
		cp.NonMembershipLeaf = &NonMembershipLeaf{
			Path:      append([]byte(nil), blob[:n]...),
			ValueHash: append([]byte(nil), blob[n:2*n]...),
		}
		blob = blob[2*n:]
	default:
		return nil, ErrBadProof
	}

	if len(blob) < 1 {
		return nil, ErrBadProof
	}
	cp.NumSideNodes = int(blob[0])
	blob = blob[1:]
	if cp.NumSideNodes > depth {
		return nil, ErrBadProof
	}

	bitmaskLen := (cp.NumSideNodes + 7) / 8
	if len(blob) < bitmaskLen {
		return nil, ErrBadProof
	}
	cp.Bitmask = append([]byte(nil), blob[:bitmaskLen]...)
	blob = blob[bitmaskLen:]

	numPresent := cp.NumSideNodes - countSetBits(cp.Bitmask)
	if numPresent < 0 || len(blob) != numPresent*n {
		return nil, ErrBadProof
	}
	present := make([][]byte, numPresent)
	for i := 0; i < numPresent; i++ {
		present[i] = append([]byte(nil), blob[i*n:(i+1)*n]...)
	}
	cp.SideNodesPresent = present

	return cp, nil
}
