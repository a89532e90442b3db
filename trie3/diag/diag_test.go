package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliotrie/go-trie3/trie3"
	"github.com/foliotrie/go-trie3/trie3/diag"
	"github.com/foliotrie/go-trie3/trie3/internal/fixture"
)

func TestSummarize_AllDefault(t *testing.T) {
	img := fixture.AllDefault(trie3.Width16, 1, 2, 0)
	tr, err := trie3.Deserialize(trie3.Width16, img)
	require.NoError(t, err)
	tr.Name = ""

	r := diag.Summarize(tr)
	require.Equal(t, "16-bit", r.Width)
	require.Equal(t, tr.IndexLength(), r.IndexLength)
	require.Equal(t, tr.DataLength(), r.DataLength)
	require.Equal(t, tr.HighStart(), r.HighStart)
	require.Equal(t, uint32(1), r.InitialValue)
	require.Equal(t, uint32(2), r.HighValue)
	require.Equal(t, 0x10000, r.InitialCount, "every code point below HighStart defaults in this fixture")
	require.Equal(t, 2, r.DistinctValues, "initial below HighStart, high at and above it")
	require.Equal(t, tr.SerializedLength(), r.SerializedBytes)
	require.NotEmpty(t, r.Name, "an anonymous trie still gets a stamped report name")
}

func TestSummarize_UsesTrieName(t *testing.T) {
	img := fixture.AllDefault(trie3.Width32, 1, 2, 0)
	tr, err := trie3.Deserialize(trie3.Width32, img)
	require.NoError(t, err)
	tr.Name = "unicode-general-category"

	r := diag.Summarize(tr)
	require.Equal(t, "unicode-general-category", r.Name)
}

func TestSummarize_CountsSupplementaryOverrideAsDistinct(t *testing.T) {
	img := fixture.Supplementary(trie3.Width16, 1, 42, 9, 0)
	tr, err := trie3.Deserialize(trie3.Width16, img)
	require.NoError(t, err)

	r := diag.Summarize(tr)
	require.Equal(t, 3, r.DistinctValues, "initial, override, and high are all distinct")
}

func TestEncodeDecodeCBOR_RoundTrips(t *testing.T) {
	img := fixture.AllDefault(trie3.Width16, 1, 2, 0)
	tr, err := trie3.Deserialize(trie3.Width16, img)
	require.NoError(t, err)
	tr.Name = "cbor-roundtrip"

	r := diag.Summarize(tr)
	encoded, err := diag.EncodeCBOR(r)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := diag.DecodeCBOR(encoded)
	require.NoError(t, err)
	require.Equal(t, r, decoded)
}
