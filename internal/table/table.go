// Package table implements the phase pattern-database tables: an
// in-memory map from a phase's PhaseKey to the (bit-packed, on save)
// reverse move sequence that drives that key back to the phase's
// identity coset.
package table

import (
	"fmt"

	"github.com/flthistle/thistle-cube/internal/bitstream"
	"github.com/flthistle/thistle-cube/internal/cube"
)

// MaxMoves is the largest sequence length the on-disk format can
// store: 4 bits, so 0..15 moves.
const MaxMoves = 15

// Table maps a phase key to the shortest move-code sequence found for
// it during PDB construction.
type Table struct {
	entries map[cube.PhaseKey][]byte
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[cube.PhaseKey][]byte)}
}

// Len reports the number of distinct keys stored.
func (t *Table) Len() int { return len(t.entries) }

// Get returns the stored move-code sequence for key, if present.
func (t *Table) Get(key cube.PhaseKey) ([]byte, bool) {
	seq, ok := t.entries[key]
	return seq, ok
}

// InsertMin inserts seq for key if key is absent, or replaces the
// existing entry only when seq is strictly shorter. Commutative and
// associative over a set of calls, so merging worker tables with
// InsertMin is order-independent.
func (t *Table) InsertMin(key cube.PhaseKey, seq []byte) {
	if len(seq) > MaxMoves {
		panic(fmt.Sprintf("table: sequence of length %d exceeds %d-move limit", len(seq), MaxMoves))
	}
	if existing, ok := t.entries[key]; !ok || len(seq) < len(existing) {
		t.entries[key] = append([]byte{}, seq...)
	}
}

// Range calls fn for every stored (key, sequence) pair, in unspecified order.
func (t *Table) Range(fn func(key cube.PhaseKey, seq []byte)) {
	for k, v := range t.entries {
		fn(k, v)
	}
}

// Merge folds src into t via InsertMin, leaving src untouched.
func (t *Table) Merge(src *Table) {
	for k, v := range src.entries {
		t.InsertMin(k, v)
	}
}

// Save persists the table: per entry, key (keyBits), sequence length
// (4 bits), then each move code (5 bits).
func (t *Table) Save(path string, keyBits int) error {
	w := bitstream.NewWriter()
	for key, seq := range t.entries {
		w.Push(uint64(key), keyBits)
		w.Push(uint64(len(seq)), 4)
		for _, mv := range seq {
			w.Push(uint64(mv), 5)
		}
	}
	return w.Save(path)
}

// Load replaces t's contents with the table read back from path.
func (t *Table) Load(path string, keyBits int) error {
	r, err := bitstream.Load(path)
	if err != nil {
		return err
	}
	entries := make(map[cube.PhaseKey][]byte)
	for {
		key, ok := r.Pop(keyBits)
		if !ok {
			break
		}
		n, ok := r.Pop(4)
		if !ok {
			return fmt.Errorf("table: %s: truncated after key %d (missing length)", path, key)
		}
		seq := make([]byte, n)
		for i := range seq {
			mv, ok := r.Pop(5)
			if !ok {
				return fmt.Errorf("table: %s: truncated after key %d (missing move %d/%d)", path, key, i, n)
			}
			seq[i] = byte(mv)
		}
		entries[key] = seq
	}
	t.entries = entries
	return nil
}

// Apply looks up key, applies each decoded move to c in order, and
// returns a human-readable rendering of the applied sequence. The
// caller is responsible for treating a missing key as a fatal lookup
// miss (§7 of the algorithm: a state unreachable by legal moves, or a
// corrupt/mismatched table).
func (t *Table) Apply(key cube.PhaseKey, c *cube.Cube) (string, error) {
	seq, ok := t.entries[key]
	if !ok {
		return "", fmt.Errorf("table: no entry for key %d", key)
	}
	moves := make([]cube.Move, len(seq))
	for i, mv := range seq {
		moves[i] = cube.Decode(mv)
	}
	c.ApplyAll(moves)
	return cube.FormatMoves(moves), nil
}
