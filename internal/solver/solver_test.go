package solver

import (
	"context"
	"testing"

	"github.com/flthistle/thistle-cube/internal/cube"
	"github.com/flthistle/thistle-cube/internal/pdb"
	"github.com/flthistle/thistle-cube/internal/table"
)

// tinySpecs is the restricted move-set/depth spec tinyTables builds
// from, pulled out on its own so tests can draw scrambles from the
// exact same pools the tables are searched over.
func tinySpecs() []pdb.Spec {
	return []pdb.Spec{
		{Name: "t1", KeyBits: 12, Moves: cube.MovSet[:18], MaxDepth: 4, KeyFunc: (*cube.Cube).Key1},
		{Name: "t2", KeyBits: 36, Moves: cube.MovSet[6:18], MaxDepth: 4, KeyFunc: (*cube.Cube).Key2},
		{Name: "t3", KeyBits: 28, Moves: cube.MovSet[10:18], MaxDepth: 4, KeyFunc: (*cube.Cube).Key3},
		{Name: "t4", KeyBits: 40, Moves: cube.MovSet[:6], MaxDepth: 4, KeyFunc: (*cube.Cube).Key4},
	}
}

// tinyTables builds a stand-in for the four phase tables using shallow
// depth searches restricted to a handful of moves per phase, enough to
// solve short scrambles built from the same restricted move sets
// without the cost of the real multi-million-entry tables.
func tinyTables(t *testing.T) *Tables {
	t.Helper()
	var tabs Tables
	for i, spec := range tinySpecs() {
		tb, err := pdb.Build(context.Background(), spec)
		if err != nil {
			t.Fatalf("building %s: %v", spec.Name, err)
		}
		tabs[i] = tb
	}
	return &tabs
}

func TestSolveUnreachableKeyErrors(t *testing.T) {
	tabs := &Tables{table.New(), table.New(), table.New(), table.New()}
	c := cube.New()
	c.Apply(cube.Move{Face: cube.Right, Rot: cube.Cw, Typ: cube.Single})
	if _, err := tabs.Solve(c); err == nil {
		t.Error("Solve against empty tables should report a lookup miss")
	}
}

// TestSolveEndToEnd scrambles with double turns only, drawn straight
// from tinySpecs' phase-4 move pool (cube.MovSet[:6]). Double turns
// are legal moves in every phase's group, so they leave phases 1-3's
// invariants at their solved value; phase 4's table is an exhaustive
// depth-4 search over that same pool, so it is guaranteed to hold the
// key this two-move scramble lands on.
func TestSolveEndToEnd(t *testing.T) {
	tabs := tinyTables(t)
	duals := tinySpecs()[3].Moves
	c := cube.New()
	c.ApplyAll([]cube.Move{duals[4], duals[1]}) // Up2, Right2

	if _, err := tabs.Solve(c); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !c.IsSolved() {
		t.Error("Solve left the cube unsolved")
	}
}

func TestSaveLoadTablesRoundtrip(t *testing.T) {
	tabs := tinyTables(t)
	dir := t.TempDir()
	if err := tabs.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := range tabs {
		if tabs[i].Len() != loaded[i].Len() {
			t.Errorf("phase %d: saved %d entries, loaded %d", i+1, tabs[i].Len(), loaded[i].Len())
		}
	}
}
