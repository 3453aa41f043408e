package smt

import "github.com/sparsemt/smt-go/hasher"

// Node kind prefixes (spec §3, §4.2). These match the Rust original's
// LEAF_PREFIX=[0]/NODE_PREFIX=[1] byte for byte; decodeNode rejects any
// other leading byte per invariant 1.
const (
	leafPrefix  byte = 0x00
	innerPrefix byte = 0x01
)

type leafNode struct {
	path      []byte
	valueHash []byte
}

type innerNode struct {
	left  []byte
	right []byte
}

// encodeLeaf builds the 1+2N-byte encoding of a leaf node: prefix, the
// full path the leaf was planted at, then H(value).
func encodeLeaf(path, valueHash []byte) []byte {
	buf := make([]byte, 0, 1+len(path)+len(valueHash))
	buf = append(buf, leafPrefix)
	buf = append(buf, path...)
	buf = append(buf, valueHash...)
	return buf
}

// encodeInner builds the 1+2N-byte encoding of an inner node: prefix,
// left child hash, right child hash.
func encodeInner(left, right []byte) []byte {
	buf := make([]byte, 0, 1+len(left)+len(right))
	buf = append(buf, innerPrefix)
	buf = append(buf, left...)
	buf = append(buf, right...)
	return buf
}

// isLeafBlob reports whether a raw store blob encodes a leaf, without
// fully decoding it.
func isLeafBlob(blob []byte) bool {
	return len(blob) > 0 && blob[0] == leafPrefix
}

// decodeNode classifies and decodes blob, which must be exactly 1+2n
// bytes with a recognised prefix. Exactly one of the returned pointers
// is non-nil on success.
func decodeNode(blob []byte, n int) (*leafNode, *innerNode, error) {
	if len(blob) != 1+2*n {
		return nil, nil, ErrBadEncoding
	}
	switch blob[0] {
	case leafPrefix:
		return &leafNode{
			path:      append([]byte(nil), blob[1:1+n]...),
			valueHash: append([]byte(nil), blob[1+n:]...),
		}, nil, nil
	case innerPrefix:
		return nil, &innerNode{
			left:  append([]byte(nil), blob[1:1+n]...),
			right: append([]byte(nil), blob[1+n:]...),
		}, nil
	default:
		return nil, nil, ErrBadEncoding
	}
}

// hashNode computes H(blob), the node-hash of an encoded node.
func hashNode(h hasher.Hasher, blob []byte) []byte {
	return h.Digest(blob)
}

// placeholder returns the all-zero digest standing for an empty subtree.
func placeholder(h hasher.Hasher) []byte {
	return make([]byte, h.Size())
}

// isPlaceholder reports whether d is the all-zero digest.
func isPlaceholder(d []byte) bool {
	for _, b := range d {
		if b != 0 {
			return false
		}
	}
	return true
}
