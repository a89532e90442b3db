package trie3

import "encoding/binary"

// sigV1, sigV2 and sigV3 are the little-endian uint32 readings of the
// 4-byte ASCII signatures "Trie", "Tri2" and "Tri3" that have tagged this
// trie format and its two predecessors. Reading the same 4 bytes as
// big-endian instead yields the byte-reversed signature a swapped-endian
// image would present — which is exactly what anyEndianOK compares against
// below, with no separate reversed-signature table to keep in sync.
var (
	sigV1 = binary.LittleEndian.Uint32([]byte("Trie"))
	sigV2 = binary.LittleEndian.Uint32([]byte("Tri2"))
	sigV3 = binary.LittleEndian.Uint32([]byte("Tri3"))
)

// Version classifies data as holding a version 1, 2 or 3 serialized trie by
// inspecting its first 4 bytes, or returns 0 if it recognizes none of them.
// When anyEndianOK is set, the byte-reversed (opposite-endian) signatures
// are also accepted.
func Version(data []byte, anyEndianOK bool) int {
	if len(data) < 16 {
		return 0
	}
	sig := binary.LittleEndian.Uint32(data[0:4])
	switch sig {
	case sigV3:
		return 3
	case sigV2:
		return 2
	case sigV1:
		return 1
	}
	if !anyEndianOK {
		return 0
	}
	sig = binary.BigEndian.Uint32(data[0:4])
	switch sig {
	case sigV3:
		return 3
	case sigV2:
		return 2
	case sigV1:
		return 1
	}
	return 0
}
