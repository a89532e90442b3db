// Package trie3 implements a compressed, immutable lookup table from every
// Unicode code point in U+0000..=U+10FFFF to an unsigned 32-bit value.
//
// A flat 2^21-entry array would waste memory on code points that never get
// assigned anything but a shared default; a tree walk would be too slow for
// the hot path this package targets (per-character general-category, script
// and line-break lookups). Instead the trie uses a two-level index so that
// long runs of code points sharing a value collapse onto a single shared
// block, at the cost of an extra array indirection.
//
// Layout
//
// A serialized trie is a fixed 24-byte little-endian header (signature,
// options, indexLength, shiftedDataLength, index2NullOffset,
// shiftedHighStart, highValue, errorValue) followed by a uint16 index array and then a uint16-or-uint32 data array, depending on
// the value width recorded in the header. The two-level index walks:
//
//	BMP code points (<=0xFFFF):    index[cp>>SHIFT_2] is an absolute data
//	                                block offset.
//	Supplementary code points:     index[i1] is an index-2 block offset,
//	                                index[i1block+i2] is a *shifted* data
//	                                block offset (multiply by 4 to use it).
//
// That asymmetry — the BMP index stores pre-shifted offsets while the
// supplementary index-2 table stores offsets the reader must shift left by
// INDEX_SHIFT — is load-bearing: it lets the BMP table stay linear (no
// separate index-1 indirection) while still letting the supplementary index
// address a data array wider than a uint16 can address directly. Do not
// unify the two paths.
//
// A trie is immutable once constructed and is safe for unsynchronized
// concurrent reads from any number of goroutines. Nothing in this package
// blocks or performs I/O. Building a trie from a source mapping, and
// iterating code points out of a UTF-8 or UTF-16 string, are the job of
// collaborators outside this package.
package trie3
