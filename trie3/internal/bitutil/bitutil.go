// Package bitutil holds the small bit-arithmetic helpers the trie layout
// invariants and diagnostics lean on. None of it is part of the trie3
// public contract.
package bitutil

import "math/bits"

// IsPow2 reports whether size is a power of two. Zero is not.
func IsPow2(size int) bool {
	if size <= 0 {
		return false
	}
	return size&(size-1) == 0
}

// BitLength returns the number of bits needed to represent v (0 for v==0).
func BitLength(v uint64) int {
	return bits.Len64(v)
}

// PopCount returns the number of set bits in v.
func PopCount(v uint64) int {
	return bits.OnesCount64(v)
}
