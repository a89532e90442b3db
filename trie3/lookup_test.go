package trie3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliotrie/go-trie3/trie3"
	"github.com/foliotrie/go-trie3/trie3/internal/fixture"
)

func TestValueOf_AllDefault(t *testing.T) {
	for _, width := range []trie3.ValueWidth{trie3.Width16, trie3.Width32} {
		t.Run(width.String(), func(t *testing.T) {
			img := fixture.AllDefault(width, 7, 99, 0xFFFFFFFF)
			tr, err := trie3.Deserialize(width, img)
			require.NoError(t, err)

			require.Equal(t, uint32(7), tr.ValueOf(0))
			require.Equal(t, uint32(7), tr.ValueOf('A'))
			require.Equal(t, uint32(7), tr.ValueOf(0x7F))
			require.Equal(t, uint32(7), tr.ValueOf(0x100))
			require.Equal(t, uint32(7), tr.ValueOf(0xFFFF))
			require.Equal(t, uint32(99), tr.ValueOf(0x10000), "HighStart is 0x10000 for this fixture")
			require.Equal(t, uint32(99), tr.ValueOf(trie3.MaxCodePoint))
			require.Equal(t, uint32(0xFFFFFFFF), tr.ValueOf(-1))
			require.Equal(t, uint32(0xFFFFFFFF), tr.ValueOf(trie3.MaxCodePoint+1))
		})
	}
}

func TestValueOf_ASCIIOverride(t *testing.T) {
	img := fixture.ASCIIOverride(trie3.Width16, 1, 2, 3, map[int]uint32{'A': 65, 'z': 122})
	tr, err := trie3.Deserialize(trie3.Width16, img)
	require.NoError(t, err)

	require.Equal(t, uint32(65), tr.ValueOf('A'))
	require.Equal(t, uint32(122), tr.ValueOf('z'))
	require.Equal(t, uint32(1), tr.ValueOf('B'))
	require.Equal(t, uint32(1), tr.ValueOf(0x41EE))
}

func TestValueOf_Supplementary(t *testing.T) {
	img := fixture.Supplementary(trie3.Width32, 1, 42, 9, 0)
	tr, err := trie3.Deserialize(trie3.Width32, img)
	require.NoError(t, err)

	require.Equal(t, uint32(42), tr.ValueOf(0x10000))
	require.Equal(t, uint32(42), tr.ValueOf(0x1001F))
	require.Equal(t, uint32(1), tr.ValueOf(0x10020))
	require.Equal(t, uint32(1), tr.ValueOf(0x1FFFF))
	require.Equal(t, uint32(9), tr.ValueOf(0x20000), "HighStart is 0x20000 for this fixture")
	require.Equal(t, uint32(9), tr.ValueOf(0x40000), "anything at or above HighStart reads back HighValue")
}
