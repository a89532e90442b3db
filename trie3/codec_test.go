package trie3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliotrie/go-trie3/trie3"
	"github.com/foliotrie/go-trie3/trie3/internal/fixture"
)

func TestDeserialize_RoundTripsThroughSerialize(t *testing.T) {
	for _, width := range []trie3.ValueWidth{trie3.Width16, trie3.Width32} {
		t.Run(width.String(), func(t *testing.T) {
			img := fixture.Supplementary(width, 1, 42, 9, 0xDEAD)
			tr, err := trie3.Deserialize(width, img)
			require.NoError(t, err)

			buf := make([]byte, tr.SerializedLength())
			n, err := tr.Serialize(buf)
			require.NoError(t, err)
			require.Equal(t, len(buf), n)

			again, err := trie3.Deserialize(width, buf)
			require.NoError(t, err)

			require.Equal(t, tr.IndexLength(), again.IndexLength())
			require.Equal(t, tr.DataLength(), again.DataLength())
			require.Equal(t, tr.HighStart(), again.HighStart())
			require.Equal(t, tr.HighValue(), again.HighValue())
			require.Equal(t, tr.ErrorValue(), again.ErrorValue())
			require.Equal(t, tr.ValueOf(0x10000), again.ValueOf(0x10000))
			require.Equal(t, tr.ValueOf(0x1FFFF), again.ValueOf(0x1FFFF))
		})
	}
}

func TestSerialize_BufferTooSmallReportsRequiredSize(t *testing.T) {
	img := fixture.AllDefault(trie3.Width16, 1, 2, 0)
	tr, err := trie3.Deserialize(trie3.Width16, img)
	require.NoError(t, err)

	_, err = tr.Serialize(make([]byte, 1))
	require.Error(t, err)

	var overflow *trie3.BufferOverflowError
	require.ErrorAs(t, err, &overflow)
	require.Equal(t, tr.SerializedLength(), overflow.Required)
	require.ErrorIs(t, err, trie3.ErrBufferOverflow)
}

func TestDeserialize_RejectsBadSignature(t *testing.T) {
	img := fixture.AllDefault(trie3.Width16, 1, 2, 0)
	bad := append([]byte(nil), img...)
	bad[0] = 'X'

	_, err := trie3.Deserialize(trie3.Width16, bad)
	require.ErrorIs(t, err, trie3.ErrInvalidFormat)
}

func TestDeserialize_RejectsMismatchedWidth(t *testing.T) {
	img := fixture.AllDefault(trie3.Width32, 1, 2, 0)
	_, err := trie3.Deserialize(trie3.Width16, img)
	require.ErrorIs(t, err, trie3.ErrInvalidFormat)
}

func TestDeserialize_RejectsTruncatedImage(t *testing.T) {
	img := fixture.AllDefault(trie3.Width16, 1, 2, 0)
	_, err := trie3.Deserialize(trie3.Width16, img[:len(img)-4])
	require.ErrorIs(t, err, trie3.ErrInvalidFormat)
}

func TestDeserialize_RejectsTooShortForHeader(t *testing.T) {
	_, err := trie3.Deserialize(trie3.Width16, make([]byte, 8))
	require.ErrorIs(t, err, trie3.ErrInvalidFormat)
}

func TestDeserialize_RejectsUnknownWidth(t *testing.T) {
	img := fixture.AllDefault(trie3.Width16, 1, 2, 0)
	_, err := trie3.Deserialize(trie3.ValueWidth(7), img)
	require.ErrorIs(t, err, trie3.ErrIllegalArgument)
}
