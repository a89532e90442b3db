package trie3

import "unicode/utf8"

// PrevResult is the unpacked form of the backward UTF-8 lookup result: the
// design-notes-recommended {DataIndex, UseHigh, UseError} variant, kept
// separate from the packed integer encoding callers needing ABI
// compatibility with the packed form can still obtain via Pack.
type PrevResult struct {
	// DataIndex is the data-array index to read the trie's value from.
	// Only meaningful when neither UseHigh nor UseError is set.
	DataIndex int
	// UseHigh means the decoded code point was >= the trie's HighStart:
	// the caller should use HighValue rather than reading DataIndex.
	UseHigh bool
	// UseError means the bytes immediately before src did not decode as
	// well-formed UTF-8: the caller should use ErrorValue.
	UseError bool
	// BytesConsumed is how many bytes, starting at src-1 and going
	// backward, were consumed decoding the code point (or rejecting it).
	// Always in [1, utf8.UTFMax].
	BytesConsumed int
}

// Pack flattens r into the densely packed signed integer the original C
// entry point returns: (dataIndex<<3)|bytesConsumed on success, -16|bytes
// when the caller should use HighValue, -8|bytes when it should use
// ErrorValue.
func (r PrevResult) Pack() int {
	switch {
	case r.UseError:
		return -8 | r.BytesConsumed
	case r.UseHigh:
		return -16 | r.BytesConsumed
	default:
		return (r.DataIndex << 3) | r.BytesConsumed
	}
}

// PreviousIndex decodes the code point ending at data[src-1], scanning
// backward no further than start (and never more than utf8.UTFMax bytes,
// well inside the 7-byte backward window the original packed encoding
// allows for), and reports where to read its value from. It does not
// itself read the trie's data array — that is left to the caller, the way
// the hot ValueOf path and this tightly-coupled backward-decode helper
// share the same index-walking logic without either depending on the
// other's return shape.
func (t *Trie) PreviousIndex(data []byte, start, src int) PrevResult {
	if src <= start || src > len(data) {
		return PrevResult{UseError: true, BytesConsumed: 1}
	}
	lo := start
	if src-lo > utf8.UTFMax {
		lo = src - utf8.UTFMax
	}

	r, size := utf8.DecodeLastRune(data[lo:src])
	if r == utf8.RuneError && size <= 1 {
		return PrevResult{UseError: true, BytesConsumed: 1}
	}

	cp := int(r)
	switch {
	case cp <= bmpLimit:
		return PrevResult{DataIndex: t.bmpDataIndex(cp), BytesConsumed: size}
	case cp >= t.highStart:
		return PrevResult{UseHigh: true, BytesConsumed: size}
	default:
		return PrevResult{DataIndex: t.supplementaryDataIndex(cp), BytesConsumed: size}
	}
}
