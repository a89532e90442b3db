// Package diag holds optional, non-contractual diagnostics for a frozen
// trie3.Trie: array lengths, initial-value and distinct-value counts, and a
// CBOR encoding of that summary for offline tooling. None of this is part of the trie
// format or its read/lookup contract — spec.md's design notes call this
// kind of "length/null-count printing" debug instrumentation entirely
// optional, and the original implementation gates the equivalent
// (countInitial, utrie3_printLengths) behind a debug build flag.
package diag

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/foliotrie/go-trie3/trie3"
	"github.com/foliotrie/go-trie3/trie3/internal/bitutil"
)

// Report is a point-in-time snapshot of a trie's shape.
type Report struct {
	Name         string `cbor:"name"`
	Width        string `cbor:"width"`
	IndexLength  int    `cbor:"indexLength"`
	DataLength   int    `cbor:"dataLength"`
	DataLenBits  int    `cbor:"dataLenBits"`
	HighStart    int    `cbor:"highStart"`
	InitialValue uint32 `cbor:"initialValue"`
	HighValue    uint32 `cbor:"highValue"`
	ErrorValue   uint32 `cbor:"errorValue"`

	// InitialCount is the number of code points whose value equals
	// InitialValue, the same statistic the original implementation's
	// debug-only countInitial computes (there counted over the data
	// array directly; here accumulated from NextRange, the only way this
	// package can observe a trie's contents without reaching into its
	// private fields).
	InitialCount int `cbor:"initialCount"`

	// DistinctValues is the number of distinct values NextRange reports
	// across the whole code-point space — a proxy for how much sharing
	// the trie's builder achieved, observable without reaching into the
	// trie's private block tables.
	DistinctValues int `cbor:"distinctValues"`

	SerializedBytes int `cbor:"serializedBytes"`
}

// Summarize walks t once, via NextRange, and reports its shape. If t.Name
// is empty, a fresh random name is stamped onto the returned report (not
// onto t, which stays immutable) so two reports from two anonymous tries
// are still distinguishable in a tool's output.
func Summarize(t *trie3.Trie) Report {
	name := t.Name
	if name == "" {
		name = uuid.NewString()
	}

	r := Report{
		Name:         name,
		Width:        t.Width().String(),
		IndexLength:  t.IndexLength(),
		DataLength:   t.DataLength(),
		DataLenBits:  bitutil.BitLength(uint64(t.DataLength())),
		HighStart:    t.HighStart(),
		InitialValue: t.InitialValue(),
		HighValue:    t.HighValue(),
		ErrorValue:   t.ErrorValue(),
	}

	initial := t.InitialValue()
	seen := make(map[uint32]struct{})
	for cp := 0; cp <= trie3.MaxCodePoint; {
		end, value := t.NextRange(cp, nil)
		if value == initial {
			r.InitialCount += end - cp + 1
		}
		seen[value] = struct{}{}
		if end >= trie3.MaxCodePoint {
			break
		}
		cp = end + 1
	}
	r.DistinctValues = len(seen)
	r.SerializedBytes = t.SerializedLength()

	return r
}

// EncodeCBOR marshals r as CBOR rather than JSON, for a compact,
// self-describing on-disk diagnostics artifact.
func EncodeCBOR(r Report) ([]byte, error) {
	return cbor.Marshal(r)
}

// DecodeCBOR is the inverse of EncodeCBOR.
func DecodeCBOR(data []byte) (Report, error) {
	var r Report
	err := cbor.Unmarshal(data, &r)
	return r, err
}
