package trie3

import "encoding/binary"

// SwappedSize reads just enough of a serialized image — in srcOrder — to
// validate its header and report the number of bytes Swap would need to
// write. It does not allocate or touch the index/data arrays.
func SwappedSize(src []byte, srcOrder binary.ByteOrder) (int, error) {
	if len(src) < headerSize {
		return 0, ErrIndexOutOfBounds
	}
	sig := srcOrder.Uint32(src[0:4])
	options := srcOrder.Uint32(src[4:8])
	indexLength := int(srcOrder.Uint16(src[8:10]))
	shiftedDataLength := int(srcOrder.Uint16(src[10:12]))
	dataLength := shiftedDataLength << indexShift

	_, width, reservedOK := decodeOptions(options)
	if sig != sigV3 || !reservedOK || (width != Width16 && width != Width32) ||
		indexLength < minIndexLength || dataLength < minDataLength {
		return 0, ErrInvalidFormat
	}

	size := headerSize + indexLength*2
	if width == Width32 {
		size += dataLength * 4
	} else {
		size += dataLength * 2
	}
	return size, nil
}

// Swap rewrites a serialized trie3 image from srcOrder byte order into
// dstOrder byte order. dst and src may alias the same backing array for an
// in-place swap; otherwise dst must be at least as long as the size
// SwappedSize reports. It swaps the header fields per their declared widths,
// then the index array as 16-bit words, then the data array as 16-bit or
// 32-bit words depending on the value width recorded in the header.
func Swap(dst, src []byte, srcOrder, dstOrder binary.ByteOrder) (int, error) {
	size, err := SwappedSize(src, srcOrder)
	if err != nil {
		return 0, err
	}
	if len(src) < size {
		return 0, ErrIndexOutOfBounds
	}
	if len(dst) < size {
		return 0, &BufferOverflowError{Required: size}
	}

	options := srcOrder.Uint32(src[4:8])
	_, width, _ := decodeOptions(options)
	indexLength := int(srcOrder.Uint16(src[8:10]))
	dataLength := int(srcOrder.Uint16(src[10:12])) << indexShift

	// The header and the index/data arrays occupy disjoint byte ranges, so
	// staging the header in scratch space and the arrays in place (even
	// when dst aliases src) is safe regardless of write order.
	var hdr [headerSize]byte
	dstOrder.PutUint32(hdr[0:4], srcOrder.Uint32(src[0:4]))
	dstOrder.PutUint32(hdr[4:8], srcOrder.Uint32(src[4:8]))
	dstOrder.PutUint16(hdr[8:10], srcOrder.Uint16(src[8:10]))
	dstOrder.PutUint16(hdr[10:12], srcOrder.Uint16(src[10:12]))
	dstOrder.PutUint16(hdr[12:14], srcOrder.Uint16(src[12:14]))
	dstOrder.PutUint16(hdr[14:16], srcOrder.Uint16(src[14:16]))
	dstOrder.PutUint32(hdr[16:20], srcOrder.Uint32(src[16:20]))
	dstOrder.PutUint32(hdr[20:24], srcOrder.Uint32(src[20:24]))

	arrayOff := headerSize
	indexBytes := indexLength * 2
	var dataBytes int
	if width == Width32 {
		dataBytes = dataLength * 4
	} else {
		dataBytes = dataLength * 2
	}

	// The array lengths were read from src's header above, so the arrays are
	// swapped first and the staged header is copied over last; the arrays do
	// not move, only the byte order inside each word changes.
	swapWords16(dst[arrayOff:arrayOff+indexBytes], src[arrayOff:arrayOff+indexBytes], srcOrder, dstOrder)
	if width == Width32 {
		swapWords32(dst[arrayOff+indexBytes:arrayOff+indexBytes+dataBytes], src[arrayOff+indexBytes:arrayOff+indexBytes+dataBytes], srcOrder, dstOrder)
	} else {
		swapWords16(dst[arrayOff+indexBytes:arrayOff+indexBytes+dataBytes], src[arrayOff+indexBytes:arrayOff+indexBytes+dataBytes], srcOrder, dstOrder)
	}

	copy(dst[0:headerSize], hdr[:])
	return size, nil
}

func swapWords16(dst, src []byte, srcOrder, dstOrder binary.ByteOrder) {
	for i := 0; i+2 <= len(src); i += 2 {
		dstOrder.PutUint16(dst[i:i+2], srcOrder.Uint16(src[i:i+2]))
	}
}

func swapWords32(dst, src []byte, srcOrder, dstOrder binary.ByteOrder) {
	for i := 0; i+4 <= len(src); i += 4 {
		dstOrder.PutUint32(dst[i:i+4], srcOrder.Uint32(src[i:i+4]))
	}
}
