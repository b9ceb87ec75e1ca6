// Package solver drives a scrambled cube through the four
// Thistlethwaite phase tables in order, applying each phase's looked
// up sequence before moving to the next.
package solver

import (
	"context"
	"fmt"

	"github.com/flthistle/thistle-cube/internal/cube"
	"github.com/flthistle/thistle-cube/internal/pdb"
	"github.com/flthistle/thistle-cube/internal/table"
)

// Tables holds the four loaded phase tables, in solving order.
type Tables [4]*table.Table

// tablePath names a phase table file the way the reference extractor
// does: tabs/mt_table_<phase>.
func tablePath(dir string, phase int) string {
	return fmt.Sprintf("%s/mt_table_%d", dir, phase)
}

// Load reads all four table files from dir.
func Load(dir string) (*Tables, error) {
	var t Tables
	specs := pdb.Specs()
	for i, spec := range specs {
		tb := table.New()
		if err := tb.Load(tablePath(dir, i+1), spec.KeyBits); err != nil {
			return nil, fmt.Errorf("solver: loading %s table: %w", spec.Name, err)
		}
		t[i] = tb
	}
	return &t, nil
}

// Save writes all four tables to dir.
func (t *Tables) Save(dir string) error {
	specs := pdb.Specs()
	for i, spec := range specs {
		if err := t[i].Save(tablePath(dir, i+1), spec.KeyBits); err != nil {
			return fmt.Errorf("solver: saving %s table: %w", spec.Name, err)
		}
	}
	return nil
}

// Build constructs all four tables in memory, without touching disk.
func Build(ctx context.Context) (*Tables, error) {
	var t Tables
	for i, spec := range pdb.Specs() {
		tb, err := pdb.BuildPhase(ctx, i+1)
		if err != nil {
			return nil, fmt.Errorf("solver: building %s table: %w", spec.Name, err)
		}
		t[i] = tb
	}
	return &t, nil
}

// Solve reduces c to the identity permutation, applying each phase's
// table entry in turn, and returns the full move sequence applied. An
// error names the phase and key on a lookup miss, which signals
// either a corrupt/mismatched table or (for phase 1) a state outside
// the legal cube group.
func (t *Tables) Solve(c *cube.Cube) ([]cube.Move, error) {
	keyFuncs := []func(*cube.Cube) cube.PhaseKey{
		(*cube.Cube).Key1, (*cube.Cube).Key2, (*cube.Cube).Key3, (*cube.Cube).Key4,
	}
	var all []cube.Move
	for i, kf := range keyFuncs {
		formatted, err := t[i].Apply(kf(c), c)
		if err != nil {
			return nil, fmt.Errorf("solver: phase %d: %w", i+1, err)
		}
		moves, err := cube.ParseMoves(formatted)
		if err != nil {
			return nil, fmt.Errorf("solver: phase %d: %w", i+1, err)
		}
		all = append(all, moves...)
	}
	if !c.IsSolved() {
		return nil, fmt.Errorf("solver: applied all four phases but cube is not solved")
	}
	return all, nil
}
