package table

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flthistle/thistle-cube/internal/cube"
)

// TestInsertMinKeepsShortest is property 10: a sequence of InsertMin
// calls yields, per key, the shortest sequence ever offered.
func TestInsertMinKeepsShortest(t *testing.T) {
	tb := New()
	tb.InsertMin(7, []byte{1, 2, 3})
	tb.InsertMin(7, []byte{9})
	tb.InsertMin(7, []byte{4, 5})

	seq, ok := tb.Get(7)
	require.True(t, ok)
	require.Equal(t, []byte{9}, seq)
}

func TestInsertMinIgnoresLongerSequence(t *testing.T) {
	tb := New()
	tb.InsertMin(3, []byte{1})
	tb.InsertMin(3, []byte{1, 2, 3})

	seq, ok := tb.Get(3)
	require.True(t, ok)
	require.Equal(t, []byte{1}, seq)
}

func TestMergeIsOrderIndependent(t *testing.T) {
	a := New()
	a.InsertMin(1, []byte{1, 2})
	a.InsertMin(2, []byte{1})

	b := New()
	b.InsertMin(1, []byte{1})
	b.InsertMin(2, []byte{1, 2, 3})

	merged1 := New()
	merged1.Merge(a)
	merged1.Merge(b)

	merged2 := New()
	merged2.Merge(b)
	merged2.Merge(a)

	seq1a, _ := merged1.Get(1)
	seq2a, _ := merged2.Get(1)
	require.Equal(t, seq1a, seq2a)

	seq1b, _ := merged1.Get(2)
	seq2b, _ := merged2.Get(2)
	require.Equal(t, seq1b, seq2b)
}

// TestSaveLoadRoundtrip is scenario S6: write a table with entries
// {(0,[]), (5,[encode(U), encode(R2)])} at key_bits=12, reload, and
// expect the map to equal the original.
func TestSaveLoadRoundtrip(t *testing.T) {
	tb := New()
	tb.InsertMin(0, []byte{})
	tb.InsertMin(5, []byte{
		cube.Encode(cube.Move{Face: cube.Up, Rot: cube.Cw, Typ: cube.Single}),
		cube.Encode(cube.Move{Face: cube.Right, Rot: cube.Cw, Typ: cube.Dual}),
	})

	path := filepath.Join(t.TempDir(), "table.bin")
	require.NoError(t, tb.Save(path, 12))

	reloaded := New()
	require.NoError(t, reloaded.Load(path, 12))

	original := make(map[cube.PhaseKey][]byte)
	tb.Range(func(k cube.PhaseKey, v []byte) { original[k] = v })
	roundtripped := make(map[cube.PhaseKey][]byte)
	reloaded.Range(func(k cube.PhaseKey, v []byte) { roundtripped[k] = v })

	require.Equal(t, original, roundtripped)
}

func TestApplyMissingKeyErrors(t *testing.T) {
	tb := New()
	c := cube.New()
	_, err := tb.Apply(42, c)
	require.Error(t, err)
}

func TestApplyAppliesStoredSequence(t *testing.T) {
	tb := New()
	seq := cube.ReverseInvert([]cube.Move{{Face: cube.Right, Rot: cube.Cw, Typ: cube.Single}})
	tb.InsertMin(99, seq)

	c := cube.New()
	c.Apply(cube.Move{Face: cube.Right, Rot: cube.Cw, Typ: cube.Single})

	desc, err := tb.Apply(99, c)
	require.NoError(t, err)
	require.NotEmpty(t, desc)
	require.True(t, c.IsSolved())
}
