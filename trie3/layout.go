package trie3

import "github.com/foliotrie/go-trie3/trie3/internal/bitutil"

// Bit geometry constants. These are contractual: they are encoded in every
// serialized trie image, and every reader of this format must use them
// literally. See the package doc for the BMP/supplementary asymmetry they
// parameterize.
const (
	shift2   = 5
	shift1   = 14
	shift1_2 = shift1 - shift2 // 9

	// indexShift is the left-shift applied when recovering a supplementary
	// data-block offset from its (compacted) index-2 entry. BMP index
	// entries already store the unshifted, absolute offset.
	indexShift = 2

	dataBlockLength = 1 << shift2 // 32
	dataMask        = dataBlockLength - 1

	index2BlockLength = 1 << shift1_2 // 512
	index2Mask        = index2BlockLength - 1

	cpPerIndex1Entry = 1 << shift1 // 16384

	index2BMPLength        = 0x10000 >> shift2 // 2048
	omittedBMPIndex1Length = 0x10000 >> shift1 // 4
	index1Offset           = index2BMPLength   // 2048

	// MaxCodePoint is the largest valid Unicode code point this trie maps.
	MaxCodePoint = 0x10FFFF

	// asciiLimit bounds the linear fast path: code points [0, asciiLimit]
	// are looked up directly at data[cp].
	asciiLimit = 0x7F

	bmpLimit = 0xFFFF

	// minIndexLength is the smallest indexLength that can hold the fully
	// linearized BMP index-2 table (invariant 3 in the data model).
	minIndexLength = index1Offset

	// minDataLength is the smallest dataLength that can hold the linear
	// ASCII segment the fast path depends on.
	minDataLength = asciiLimit + 1
)

// headerSize is the fixed, 4-byte-aligned serialized header size: signature,
// options, indexLength, shiftedDataLength, index2NullOffset, shiftedHighStart
// (4+4+2+2+2+2 = 16 bytes) plus highValue and errorValue (4+4 = 8 bytes).
const headerSize = 24

const (
	optionsValueWidthMask uint32 = 0x00FF
	optionsReservedMask   uint32 = 0x0F00
	optionsDataNullShift         = 12
)

// The block and entry widths below are only safe to mask and shift against
// (&^, <<, >>) because they are powers of two; this is cheap enough to check
// once at package init rather than trust as a comment.
func init() {
	for _, n := range []int{dataBlockLength, index2BlockLength, cpPerIndex1Entry} {
		if !bitutil.IsPow2(n) {
			panic("trie3: layout constant is not a power of two")
		}
	}
}
