// Package fixture builds small, hand-crafted serialized trie3 images for
// tests across this module's packages. It only ever writes the public wire
// format (the same bytes trie3.Serialize would produce), never reaches into
// trie3's private fields, and is not part of the trie3 contract itself.
//
// Every image built here keeps the four lowest data blocks (offsets 0, 32,
// 64, 96 — the ASCII range) addressed by the four lowest BMP index entries
// at their identity offsets. ValueOf's linear fast path reads data[cp]
// directly for cp <= 0x7F without consulting the index at all, so any other
// reader that does walk the index (NextRange, in particular) only agrees
// with it if those first four blocks are not shared with anything else.
package fixture

import (
	"encoding/binary"

	"github.com/foliotrie/go-trie3/trie3"
)

const (
	shift1           = 14
	shift2           = 5
	indexShift       = 2
	dataBlockLength  = 32
	asciiBlockCount  = 4 // covers code points 0..127
	index1Offset     = 2048
	headerSize       = 24
	optionsNullShift = 12
	optionsWidthMask = 0x00FF
)

var sigV3 = binary.LittleEndian.Uint32([]byte("Tri3"))

// Image is a fully assembled set of header fields and arrays, ready to be
// marshaled by Build.
type Image struct {
	Width            trie3.ValueWidth
	Index2NullOffset int
	DataNullOffset   int
	HighStart        int
	HighValue        uint32
	ErrorValue       uint32
	Index            []uint16
	Data16           []uint16
	Data32           []uint32
	// BadSignature, when non-zero, overwrites the signature field so tests
	// can exercise Deserialize's and Version's rejection paths.
	BadSignature uint32
}

// Build marshals img into the 24-byte-header wire format Deserialize and
// Version expect. It does not validate img; callers that want an invalid
// image (for a negative test) build one on purpose.
func Build(img Image) []byte {
	dataLength := len(img.Data16)
	if img.Width == trie3.Width32 {
		dataLength = len(img.Data32)
	}

	sig := sigV3
	if img.BadSignature != 0 {
		sig = img.BadSignature
	}

	options := uint32(img.DataNullOffset)<<optionsNullShift | uint32(img.Width)&optionsWidthMask

	buf := make([]byte, headerSize+len(img.Index)*2+dataWidthBytes(img.Width, dataLength))
	binary.LittleEndian.PutUint32(buf[0:4], sig)
	binary.LittleEndian.PutUint32(buf[4:8], options)
	binary.LittleEndian.PutUint16(buf[8:10], uint16(len(img.Index)))
	binary.LittleEndian.PutUint16(buf[10:12], uint16(dataLength>>indexShift))
	binary.LittleEndian.PutUint16(buf[12:14], uint16(img.Index2NullOffset))
	binary.LittleEndian.PutUint16(buf[14:16], uint16(img.HighStart>>shift1))
	binary.LittleEndian.PutUint32(buf[16:20], img.HighValue)
	binary.LittleEndian.PutUint32(buf[20:24], img.ErrorValue)

	off := headerSize
	for _, v := range img.Index {
		binary.LittleEndian.PutUint16(buf[off:off+2], v)
		off += 2
	}
	if img.Width == trie3.Width32 {
		for _, v := range img.Data32 {
			binary.LittleEndian.PutUint32(buf[off:off+4], v)
			off += 4
		}
	} else {
		for _, v := range img.Data16 {
			binary.LittleEndian.PutUint16(buf[off:off+2], v)
			off += 2
		}
	}
	return buf
}

func dataWidthBytes(width trie3.ValueWidth, length int) int {
	if width == trie3.Width32 {
		return length * 4
	}
	return length * 2
}

// baseIndex returns a full BMP-plus-supplementary-capacity index array with
// the four ASCII blocks wired at their identity offsets and every other
// entry pointing at nullBlock.
func baseIndex(length, nullBlock int) []uint16 {
	index := make([]uint16, length)
	for i := asciiBlockCount; i < index1Offset && i < length; i++ {
		index[i] = uint16(nullBlock)
	}
	for i := 0; i < asciiBlockCount; i++ {
		index[i] = uint16(i * dataBlockLength)
	}
	return index
}

// baseData allocates the ASCII blocks plus one shared null block (both
// filled with initial) and returns the null block's offset alongside the
// arrays, ready for a caller to append further blocks after it.
func baseData(width trie3.ValueWidth, initial uint32, extra int) (data16 []uint16, data32 []uint32, nullBlock int) {
	nullBlock = asciiBlockCount * dataBlockLength
	length := nullBlock + dataBlockLength + extra
	if width == trie3.Width32 {
		data32 = make([]uint32, length)
		for i := range data32 {
			data32[i] = initial
		}
		return nil, data32, nullBlock
	}
	data16 = make([]uint16, length)
	for i := range data16 {
		data16[i] = uint16(initial)
	}
	return data16, nil, nullBlock
}

// AllDefault builds a minimal BMP-only image (HighStart == 0x10000) in
// which every code point below HighStart reads back initial.
func AllDefault(width trie3.ValueWidth, initial, high, errVal uint32) []byte {
	data16, data32, nullBlock := baseData(width, initial, 0)
	return Build(Image{
		Width:            width,
		Index2NullOffset: 0xFFFF, // sentinel: never matches a real BMP i2Block
		DataNullOffset:   nullBlock,
		HighStart:        0x10000,
		HighValue:        high,
		ErrorValue:       errVal,
		Index:            baseIndex(index1Offset, nullBlock),
		Data16:           data16,
		Data32:           data32,
	})
}

// ASCIIOverride is AllDefault with a handful of ASCII code points (which
// must all be <= 0x7F) pointed at distinct values, exercising the linear
// fast path against the shared null block everything else still reads.
func ASCIIOverride(width trie3.ValueWidth, initial, high, errVal uint32, overrides map[int]uint32) []byte {
	data16, data32, nullBlock := baseData(width, initial, 0)
	for cp, v := range overrides {
		if width == trie3.Width32 {
			data32[cp] = v
		} else {
			data16[cp] = uint16(v)
		}
	}
	return Build(Image{
		Width:            width,
		Index2NullOffset: 0xFFFF,
		DataNullOffset:   nullBlock,
		HighStart:        0x10000,
		HighValue:        high,
		ErrorValue:       errVal,
		Index:            baseIndex(index1Offset, nullBlock),
		Data16:           data16,
		Data32:           data32,
	})
}

// Supplementary builds an image covering the four 16384-code-point
// supplementary chunks of U+10000..U+1FFFF, all of which share a single
// index-2 block: the first data block of each chunk (U+10000..U+1001F,
// U+14000..U+1401F, U+18000..U+1801F and U+1C000..U+1C01F) reads back
// override, everything else below HighStart (0x20000) reads back initial,
// and everything at or above HighStart reads back high.
func Supplementary(width trie3.ValueWidth, initial, override, high, errVal uint32) []byte {
	const i2Block = index1Offset + 4 // just past the 4-entry index-1 table

	data16, data32, nullBlock := baseData(width, initial, dataBlockLength)
	overrideBlock := nullBlock + dataBlockLength
	if width == trie3.Width32 {
		for i := overrideBlock; i < overrideBlock+dataBlockLength; i++ {
			data32[i] = override
		}
	} else {
		for i := overrideBlock; i < overrideBlock+dataBlockLength; i++ {
			data16[i] = uint16(override)
		}
	}

	index := baseIndex(i2Block+512, nullBlock)
	// Index-1 table: the 4 chunks covering U+10000..U+1FFFF all share
	// i2Block. (i1 = index1Offset - omittedBMPIndex1Length + (cp>>shift1);
	// for cp>>14 in {4,5,6,7} that is index1Offset..index1Offset+3.)
	for i1 := index1Offset; i1 < index1Offset+4; i1++ {
		index[i1] = uint16(i2Block)
	}
	// Index-2 block: sub-block 0 points at the override data block (stored
	// pre-shift, i.e. divided by 4); every other sub-block points at the
	// null data block, also pre-shifted.
	index[i2Block+0] = uint16(overrideBlock >> indexShift)
	for i2 := 1; i2 < 512; i2++ {
		index[i2Block+i2] = uint16(nullBlock >> indexShift)
	}

	return Build(Image{
		Width:            width,
		Index2NullOffset: 0xFFFF,
		DataNullOffset:   nullBlock,
		HighStart:        0x20000,
		HighValue:        high,
		ErrorValue:       errVal,
		Index:            index,
		Data16:           data16,
		Data32:           data32,
	})
}
