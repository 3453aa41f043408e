package smt

// getNode fetches and returns the raw encoding stored under hash,
// failing CorruptStore if the store has nothing there.
func (t *Tree) getNode(hash []byte) ([]byte, error) {
	blob, ok, err := t.nodes.Get(hash)
	if err != nil {
		return nil, storeErr("get node", err)
	}
	if !ok {
		t.logWarn("referenced node missing from store", "hash", hash)
		return nil, ErrCorruptStore
	}
	return blob, nil
}

// splitInner decodes blob as an inner node, failing ErrBadEncoding if it
// does not decode and CorruptStore if it decodes to a leaf.
func splitInner(blob []byte, n int) (left, right []byte, err error) {
	_, inner, err := decodeNode(blob, n)
	if err != nil {
		return nil, nil, err
	}
	if inner == nil {
		return nil, nil, ErrCorruptStore
	}
	return inner.left, inner.right, nil
}

// sideNodesForRoot walks from root along path p, collecting the
// sibling digest at every real inner node crossed (side-node list,
// spec §4.4 traversal primitive) until it reaches a placeholder child
// (empty slot) or a leaf (matching key or collision). sideNodes[i]
// pairs with bit i of p.
//
// pathNodes records the hash occupying each level along the path,
// pathNodes[0] being root; it is used by update/delete to remove
// superseded node encodings from the store. If wantSibling is set, the
// blob of the side node adjacent to the termination point is also
// returned, for the proof builder's reserved sibling_data field.
//
// terminal is the raw (undecoded) blob at the walk's end: nil if it
// ended on a placeholder, otherwise the leaf blob found there.
func (t *Tree) sideNodesForRoot(p, root []byte, wantSibling bool) (sideNodes, pathNodes [][]byte, siblingData, terminal []byte, err error) {
	pathNodes = append(pathNodes, append([]byte(nil), root...))

	if isPlaceholder(root) {
		return nil, pathNodes, nil, nil, nil
	}

	current, err := t.getNode(root)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if isLeafBlob(current) {
		return nil, pathNodes, nil, current, nil
	}

	depth := t.h.Size() * 8
	for i := 0; i < depth; i++ {
		left, right, derr := splitInner(current, t.h.Size())
		if derr != nil {
			return nil, nil, nil, nil, derr
		}

		var side, next []byte
		if getBitAtFromMSB(p, i) == 1 {
			side, next = left, right
		} else {
			side, next = right, left
		}

		if isPlaceholder(next) {
			if wantSibling {
				siblingData, err = t.getNode(side)
				if err != nil {
					return nil, nil, nil, nil, err
				}
			}
			sideNodes = append(sideNodes, side)
			pathNodes = append(pathNodes, next)
			return sideNodes, pathNodes, siblingData, nil, nil
		}

		current, err = t.getNode(next)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		if isLeafBlob(current) {
			if wantSibling {
				siblingData, err = t.getNode(side)
				if err != nil {
					return nil, nil, nil, nil, err
				}
			}
			sideNodes = append(sideNodes, side)
			pathNodes = append(pathNodes, next)
			return sideNodes, pathNodes, siblingData, current, nil
		}

		sideNodes = append(sideNodes, side)
		pathNodes = append(pathNodes, next)
	}

	return sideNodes, pathNodes, nil, current, nil
}
