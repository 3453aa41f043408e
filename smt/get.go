package smt

// Get returns the value stored at key, and false if no leaf is planted
// at path(key) (spec §4.4 get).
func (t *Tree) Get(key []byte) ([]byte, bool, error) {
	if isPlaceholder(t.root) {
		return nil, false, nil
	}

	p := t.path(key)
	_, _, _, terminal, err := t.sideNodesForRoot(p, t.root, false)
	if err != nil {
		return nil, false, err
	}
	if terminal == nil {
		return nil, false, nil
	}

	leaf, _, err := decodeNode(terminal, t.h.Size())
	if err != nil {
		return nil, false, err
	}
	if leaf == nil || !equalBytes(leaf.path, p) {
		return nil, false, nil
	}

	v, ok, err := t.values.Get(leaf.valueHash)
	if err != nil {
		return nil, false, storeErr("get value", err)
	}
	if !ok {
		t.logWarn("leaf value missing from store", "valueHash", leaf.valueHash)
		return nil, false, ErrCorruptStore
	}
	return v, true, nil
}

// Contains reports whether key has a leaf planted, without fetching
// the value itself.
func (t *Tree) Contains(key []byte) (bool, error) {
	_, ok, err := t.Get(key)
	return ok, err
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
