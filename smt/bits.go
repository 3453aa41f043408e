package smt

// getBitAtFromMSB reports the bit of data at position pos, counting from
// the most significant bit of data[0]. Ported from the teacher's
// merkletree.getNthBit / utils.GetNthBit and the Rust original's
// get_bit_at_from_msb; all three agree on MSB-first bit numbering.
func getBitAtFromMSB(data []byte, pos int) int {
	if data[pos/8]&(1<<uint(7-pos%8)) > 0 {
		return 1
	}
	return 0
}

// setBitAtFromMSB sets the bit of data at position pos (MSB-first).
func setBitAtFromMSB(data []byte, pos int) {
	data[pos/8] |= 1 << uint(7-pos%8)
}

// countSetBits counts the 1-bits in data.
func countSetBits(data []byte) int {
	n := 0
	for _, b := range data {
		for b != 0 {
			n += int(b & 1)
			b >>= 1
		}
	}
	return n
}

// countCommonPrefixBits returns the number of leading bits a and b share,
// MSB-first. Both slices must have equal length.
func countCommonPrefixBits(a, b []byte) int {
	n := 0
	for i := 0; i < len(a)*8; i++ {
		if getBitAtFromMSB(a, i) != getBitAtFromMSB(b, i) {
			break
		}
		n++
	}
	return n
}
