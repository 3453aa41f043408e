package smt

// Update inserts or overwrites the value at key (spec §4.4 update).
//
// If value's hash already matches the leaf currently at this key, the
// call is a no-op (§9 open question: redundant same-value writes may
// be skipped so long as get/prove are unaffected; this implementation
// skips them).
func (t *Tree) Update(key, value []byte) error {
	p := t.path(key)

	sideNodes, pathNodes, _, oldLeaf, err := t.sideNodesForRoot(p, t.root, false)
	if err != nil {
		return err
	}

	newRoot, err := t.updateWithSideNodes(p, value, sideNodes, pathNodes, oldLeaf)
	if err != nil {
		return err
	}
	t.root = newRoot
	return nil
}

func (t *Tree) updateWithSideNodes(p, value []byte, sideNodes, pathNodes [][]byte, oldLeafBlob []byte) ([]byte, error) {
	depth := t.h.Size() * 8
	valueHash := t.h.Digest(value)

	leafBlob := encodeLeaf(p, valueHash)
	currentHash := hashNode(t.h, leafBlob)
	currentData := currentHash

	// If the termination point already holds a leaf, figure out whether
	// it is the same key (plain overwrite) or a different key that
	// collides on a shared path prefix (spec §4.4 step 3).
	var commonPrefixCount int
	var oldValueHash []byte
	if isPlaceholder(pathNodes[0]) && len(pathNodes) == 1 {
		commonPrefixCount = depth
	} else if oldLeafBlob == nil {
		commonPrefixCount = depth
	} else {
		oldLeaf, _, err := decodeNode(oldLeafBlob, t.h.Size())
		if err != nil {
			return nil, err
		}
		commonPrefixCount = countCommonPrefixBits(p, oldLeaf.path)
		oldValueHash = oldLeaf.valueHash
	}

	if commonPrefixCount != depth {
		// Collision: the two leaves branch at commonPrefixCount. Build
		// the inner node where they finally diverge; the loop below
		// wraps it in placeholder-sided inner nodes up to the
		// termination depth (len(sideNodes)).
		var innerBlob []byte
		if getBitAtFromMSB(p, commonPrefixCount) == 1 {
			innerBlob = encodeInner(pathNodes[len(pathNodes)-1], currentData)
		} else {
			innerBlob = encodeInner(currentData, pathNodes[len(pathNodes)-1])
		}
		currentHash = hashNode(t.h, innerBlob)
		if err := t.setNode(currentHash, innerBlob); err != nil {
			return nil, err
		}
		currentData = currentHash
	} else if oldValueHash != nil {
		if equalBytes(valueHash, oldValueHash) {
			// Redundant write: same value already planted here.
			return t.root, nil
		}
		// Same key, new value: the old leaf encoding is superseded.
		if err := t.removeNode(pathNodes[len(pathNodes)-1]); err != nil {
			return nil, err
		}
		if err := t.removeValue(oldValueHash); err != nil {
			return nil, err
		}
	}

	// The new leaf is written only now, after the redundant-write check.
	if err := t.setNode(hashNode(t.h, leafBlob), leafBlob); err != nil {
		return nil, err
	}

	// Every other real ancestor along the old path, root included, is
	// superseded by the rebuild below and must be dropped (spec §3
	// lifecycle: space-stability). The terminal entry was already
	// handled above (reused as a child, or removed on overwrite).
	for i := 0; i < len(pathNodes)-1; i++ {
		if err := t.removeNode(pathNodes[i]); err != nil {
			return nil, err
		}
	}

	offset := depth - len(sideNodes)
	for i := 0; i < depth; i++ {
		var side []byte
		if i < offset {
			if commonPrefixCount != depth && commonPrefixCount > depth-i-1 {
				// No recorded side node is this shallow, but the two
				// leaves' shared prefix still reaches this depth: the
				// walk is depth-indexed (spec §4.4), so the ancestor
				// chain down to the branch point has to stay at
				// consecutive depths even though one side is empty.
				side = placeholder(t.h)
			} else {
				continue
			}
		} else {
			// sideNodes is root-first (sideNodesForRoot walks root to
			// leaf); the ascend below runs leaf to root, so consume it
			// back to front.
			side = sideNodes[len(sideNodes)-1-(i-offset)]
		}

		var blob []byte
		if getBitAtFromMSB(p, depth-i-1) == 1 {
			blob = encodeInner(side, currentData)
		} else {
			blob = encodeInner(currentData, side)
		}
		currentHash = hashNode(t.h, blob)
		if err := t.setNode(currentHash, blob); err != nil {
			return nil, err
		}
		currentData = currentHash
	}

	if err := t.setValue(valueHash, value); err != nil {
		return nil, err
	}
	return currentHash, nil
}

func (t *Tree) setNode(hash, blob []byte) error {
	return storeErr("set node", t.nodes.Set(hash, blob))
}

func (t *Tree) removeNode(hash []byte) error {
	if isPlaceholder(hash) {
		return nil
	}
	_, err := t.nodes.Remove(hash)
	return storeErr("remove node", err)
}

func (t *Tree) setValue(hash, value []byte) error {
	return storeErr("set value", t.values.Set(hash, value))
}

func (t *Tree) removeValue(hash []byte) error {
	_, err := t.values.Remove(hash)
	return storeErr("remove value", err)
}
