package bitstream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPushPopRoundtrip is property 8: pushing a sequence of
// (value, width) items, then popping in order, yields the originals.
func TestPushPopRoundtrip(t *testing.T) {
	type item struct {
		value uint64
		width int
	}
	items := []item{
		{0, 1}, {1, 1}, {5, 4}, {0x1ff, 12}, {3, 2}, {0xdeadbeef, 36}, {0, 5},
	}

	w := NewWriter()
	for _, it := range items {
		w.Push(it.value, it.width)
	}

	r := NewReader(w.Bytes())
	for _, it := range items {
		got, ok := r.Pop(it.width)
		require.True(t, ok, "Pop(%d) should succeed", it.width)
		require.Equal(t, it.value, got)
	}
}

func TestPopExhaustionIsSilent(t *testing.T) {
	w := NewWriter()
	w.Push(1, 3)
	r := NewReader(w.Bytes())

	_, ok := r.Pop(3)
	require.True(t, ok)

	// Only the 5 zero padding bits of the single byte remain.
	_, ok = r.Pop(6)
	require.False(t, ok, "popping past the end should report ok=false, not panic or error")
}

func TestPushWidthOutOfRangePanics(t *testing.T) {
	w := NewWriter()
	require.Panics(t, func() { w.Push(1, 65) })
	require.Panics(t, func() { w.Push(1, -1) })
}

func TestSaveLoadRoundtrip(t *testing.T) {
	w := NewWriter()
	w.Push(42, 12)
	w.Push(7, 4)
	w.Push(0x1f, 5)

	path := filepath.Join(t.TempDir(), "stream.bin")
	require.NoError(t, w.Save(path))

	r, err := Load(path)
	require.NoError(t, err)

	v, ok := r.Pop(12)
	require.True(t, ok)
	require.Equal(t, uint64(42), v)

	v, ok = r.Pop(4)
	require.True(t, ok)
	require.Equal(t, uint64(7), v)

	v, ok = r.Pop(5)
	require.True(t, ok)
	require.Equal(t, uint64(0x1f), v)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(os.TempDir(), "does-not-exist-thistle-cube.bin"))
	require.Error(t, err)
}
