package smt

// Delete removes key's leaf from the tree (spec §4.4 delete). It fails
// with ErrKeyNotFound if key has no leaf planted.
func (t *Tree) Delete(key []byte) error {
	p := t.path(key)

	sideNodes, pathNodes, _, oldLeafBlob, err := t.sideNodesForRoot(p, t.root, false)
	if err != nil {
		return err
	}

	newRoot, err := t.removeWithSideNodes(p, sideNodes, pathNodes, oldLeafBlob)
	if err != nil {
		return err
	}
	t.root = newRoot
	return nil
}

func (t *Tree) removeWithSideNodes(p []byte, sideNodes, pathNodes [][]byte, oldLeafBlob []byte) ([]byte, error) {
	if isPlaceholder(pathNodes[0]) && len(pathNodes) == 1 {
		return nil, ErrKeyNotFound
	}
	if oldLeafBlob == nil {
		return nil, ErrKeyNotFound
	}

	oldLeaf, _, err := decodeNode(oldLeafBlob, t.h.Size())
	if err != nil {
		return nil, err
	}
	if !equalBytes(oldLeaf.path, p) {
		return nil, ErrKeyNotFound
	}

	// All nodes on the path to the deleted leaf, root included, are
	// orphaned.
	for i := 0; i < len(pathNodes); i++ {
		if err := t.removeNode(pathNodes[i]); err != nil {
			return nil, err
		}
	}
	if err := t.removeValue(oldLeaf.valueHash); err != nil {
		return nil, err
	}

	numSideNodes := len(sideNodes)
	var currentHash, currentData []byte
	nonPlaceholderReached := false

	for idx := 0; idx < numSideNodes; idx++ {
		// sideNodes is root-first; the ascend starts at the leaf's
		// immediate sibling and climbs toward the root, so walk the
		// list back to front.
		sideNode := sideNodes[numSideNodes-idx-1]

		if currentData == nil {
			blob, err := t.getNode(sideNode)
			if err != nil {
				return nil, err
			}
			if isLeafBlob(blob) {
				// The leaf sibling bubbles up to replace the deleted
				// leaf's position (path compression).
				currentHash = append([]byte(nil), sideNode...)
				currentData = append([]byte(nil), sideNode...)
				continue
			}
			// The sibling is itself an inner node: it stays exactly
			// where it is at this depth (the walk is depth-indexed, so
			// its ancestor can't simply vanish), so this ancestor is
			// rebuilt with a placeholder standing in for the removed
			// leaf's now-empty side.
			currentData = placeholder(t.h)
			nonPlaceholderReached = true
		}

		if !nonPlaceholderReached && isPlaceholder(sideNode) {
			continue
		} else if !nonPlaceholderReached {
			nonPlaceholderReached = true
		}

		var blob []byte
		if getBitAtFromMSB(p, numSideNodes-idx-1) == 1 {
			blob = encodeInner(sideNode, currentData)
		} else {
			blob = encodeInner(currentData, sideNode)
		}
		currentHash = hashNode(t.h, blob)
		if err := t.setNode(currentHash, blob); err != nil {
			return nil, err
		}
		currentData = currentHash
	}

	if currentHash == nil {
		currentHash = placeholder(t.h)
	}
	return currentHash, nil
}
