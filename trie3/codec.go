package trie3

import (
	"encoding/binary"
)

// header mirrors the 24-byte serialized form described in the package doc.
// Every field is written and read little-endian regardless of host
// endianness; Swap is the only operation that produces or consumes a
// big-endian image.
type header struct {
	signature         uint32
	options           uint32
	indexLength       uint16
	shiftedDataLength uint16
	index2NullOffset  uint16
	shiftedHighStart  uint16
	highValue         uint32
	errorValue        uint32
}

func encodeOptions(dataNullOffset int, width ValueWidth) uint32 {
	return uint32(dataNullOffset)<<optionsDataNullShift | uint32(width)&optionsValueWidthMask
}

func decodeOptions(options uint32) (dataNullOffset int, width ValueWidth, reservedOK bool) {
	width = ValueWidth(options & optionsValueWidthMask)
	reservedOK = options&optionsReservedMask == 0
	dataNullOffset = int(options >> optionsDataNullShift)
	return
}

func writeHeader(dst []byte, h header) {
	binary.LittleEndian.PutUint32(dst[0:4], h.signature)
	binary.LittleEndian.PutUint32(dst[4:8], h.options)
	binary.LittleEndian.PutUint16(dst[8:10], h.indexLength)
	binary.LittleEndian.PutUint16(dst[10:12], h.shiftedDataLength)
	binary.LittleEndian.PutUint16(dst[12:14], h.index2NullOffset)
	binary.LittleEndian.PutUint16(dst[14:16], h.shiftedHighStart)
	binary.LittleEndian.PutUint32(dst[16:20], h.highValue)
	binary.LittleEndian.PutUint32(dst[20:24], h.errorValue)
}

func readHeader(src []byte) header {
	return header{
		signature:         binary.LittleEndian.Uint32(src[0:4]),
		options:           binary.LittleEndian.Uint32(src[4:8]),
		indexLength:       binary.LittleEndian.Uint16(src[8:10]),
		shiftedDataLength: binary.LittleEndian.Uint16(src[10:12]),
		index2NullOffset:  binary.LittleEndian.Uint16(src[12:14]),
		shiftedHighStart:  binary.LittleEndian.Uint16(src[14:16]),
		highValue:         binary.LittleEndian.Uint32(src[16:20]),
		errorValue:        binary.LittleEndian.Uint32(src[20:24]),
	}
}

// SerializedLength returns the exact number of bytes Serialize would write
// for t.
func (t *Trie) SerializedLength() int {
	n := headerSize + t.IndexLength()*2
	if t.data32 != nil {
		n += t.DataLength() * 4
	} else {
		n += t.DataLength() * 2
	}
	return n
}

// Serialize writes t's frozen form into dst and returns the number of bytes
// written. If dst is smaller than SerializedLength(), it writes nothing and
// returns a *BufferOverflowError carrying the required length, so the
// caller can retry with a larger buffer.
func (t *Trie) Serialize(dst []byte) (int, error) {
	n := t.SerializedLength()
	if len(dst) < n {
		return 0, &BufferOverflowError{Required: n}
	}

	sig := sigV3
	h := header{
		signature:         sig,
		options:           encodeOptions(t.dataNullOffset, t.Width()),
		indexLength:       uint16(t.IndexLength()),
		shiftedDataLength: uint16(t.DataLength() >> indexShift),
		index2NullOffset:  uint16(t.index2NullOffset),
		shiftedHighStart:  uint16(t.highStart >> shift1),
		highValue:         t.highValue,
		errorValue:        t.errorValue,
	}
	writeHeader(dst, h)

	off := headerSize
	for _, v := range t.index {
		binary.LittleEndian.PutUint16(dst[off:off+2], v)
		off += 2
	}
	if t.data32 != nil {
		for _, v := range t.data32 {
			binary.LittleEndian.PutUint32(dst[off:off+4], v)
			off += 4
		}
	} else {
		for _, v := range t.data16 {
			binary.LittleEndian.PutUint16(dst[off:off+2], v)
			off += 2
		}
	}
	return n, nil
}

// Deserialize parses a serialized trie3 image for the given value width. It
// rejects images too short to hold a header, a wrong signature, a stored
// value width other than width, set reserved option bits, or a declared
// length exceeding the supplied data.
func Deserialize(width ValueWidth, data []byte) (*Trie, error) {
	if width != Width16 && width != Width32 {
		return nil, ErrIllegalArgument
	}
	if len(data) < headerSize {
		return nil, ErrInvalidFormat
	}

	h := readHeader(data)
	if h.signature != sigV3 {
		return nil, ErrInvalidFormat
	}

	dataNullOffset, storedWidth, reservedOK := decodeOptions(h.options)
	if !reservedOK || storedWidth != width {
		return nil, ErrInvalidFormat
	}

	indexLength := int(h.indexLength)
	dataLength := int(h.shiftedDataLength) << indexShift
	if indexLength < minIndexLength || dataLength < minDataLength {
		return nil, ErrInvalidFormat
	}
	if dataLength%dataBlockLength != 0 {
		return nil, ErrInvalidFormat
	}

	need := headerSize + indexLength*2
	if width == Width32 {
		need += dataLength * 4
	} else {
		need += dataLength * 2
	}
	if len(data) < need {
		return nil, ErrInvalidFormat
	}

	t := &Trie{
		Name:             "fromSerialized",
		index2NullOffset: int(h.index2NullOffset),
		dataNullOffset:   dataNullOffset,
		highStart:        int(h.shiftedHighStart) << shift1,
		highValue:        h.highValue,
		errorValue:       h.errorValue,
	}

	off := headerSize
	t.index = make([]uint16, indexLength)
	for i := range t.index {
		t.index[i] = binary.LittleEndian.Uint16(data[off : off+2])
		off += 2
	}

	if width == Width32 {
		t.data32 = make([]uint32, dataLength)
		for i := range t.data32 {
			t.data32[i] = binary.LittleEndian.Uint32(data[off : off+4])
			off += 4
		}
		if dataNullOffset >= 0 && dataNullOffset < dataLength {
			t.initialValue = t.data32[dataNullOffset]
		} else {
			t.initialValue = t.highValue
		}
	} else {
		t.data16 = make([]uint16, dataLength)
		for i := range t.data16 {
			t.data16[i] = binary.LittleEndian.Uint16(data[off : off+2])
			off += 2
		}
		if dataNullOffset >= 0 && dataNullOffset < dataLength {
			t.initialValue = uint32(t.data16[dataNullOffset])
		} else {
			t.initialValue = t.highValue
		}
	}

	return t, nil
}
