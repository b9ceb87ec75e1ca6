// Package pdb builds the four Thistlethwaite phase pattern databases:
// bounded-depth depth-first search from the solved cube, fanned out
// across goroutines, each contributing entries to a shared table via
// insert-min merge.
package pdb

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/flthistle/thistle-cube/internal/cube"
	"github.com/flthistle/thistle-cube/internal/table"
)

// noFace is the sentinel lastFace value meaning "no move has been
// applied yet, so no same-face pruning applies at the root."
const noFace = cube.Face(-1)

// Spec parameterizes one phase's search: which moves are legal, how
// deep to search, the key bits reserved for its PhaseKey, and the key
// function itself.
type Spec struct {
	Name     string
	KeyBits  int
	Moves    []cube.Move
	MaxDepth int
	KeyFunc  func(*cube.Cube) cube.PhaseKey
}

// Phase1Spec covers the full 18-move set: reduce to edge-flip-correct.
func Phase1Spec() Spec {
	return Spec{Name: "phase1", KeyBits: 12, Moves: cube.MovSet[:18], MaxDepth: 7, KeyFunc: (*cube.Cube).Key1}
}

// Phase2Spec drops quarter turns of Up/Down: reduce to corner
// orientation plus LR-slice-edge membership correct.
func Phase2Spec() Spec {
	return Spec{Name: "phase2", KeyBits: 36, Moves: cube.MovSet[:14], MaxDepth: 10, KeyFunc: (*cube.Cube).Key2}
}

// Phase3Spec further drops quarter turns of Front/Back: reduce to the
// 28-bit Key3 invariant correct.
func Phase3Spec() Spec {
	return Spec{Name: "phase3", KeyBits: 28, Moves: cube.MovSet[:10], MaxDepth: 13, KeyFunc: (*cube.Cube).Key3}
}

// Phase4Spec is double-turns only: the final reduction to the identity.
func Phase4Spec() Spec {
	return Spec{Name: "phase4", KeyBits: 40, Moves: cube.MovSet[:6], MaxDepth: 15, KeyFunc: (*cube.Cube).Key4}
}

// phase3Seeds are eight double-turn prefixes used to seed independent
// phase-3 search workers: phase 3's move set alone does not reach
// every coset of the phase-3 subgroup within MaxDepth from a single
// root, so each worker starts from a different representative coset
// member.
func phase3Seeds() [][]cube.Move {
	u2 := cube.Move{Face: cube.Up, Rot: cube.Cw, Typ: cube.Dual}
	d2 := cube.Move{Face: cube.Down, Rot: cube.Cw, Typ: cube.Dual}
	f2 := cube.Move{Face: cube.Front, Rot: cube.Cw, Typ: cube.Dual}
	r2 := cube.Move{Face: cube.Right, Rot: cube.Cw, Typ: cube.Dual}
	b2 := cube.Move{Face: cube.Back, Rot: cube.Cw, Typ: cube.Dual}
	l2 := cube.Move{Face: cube.Left, Rot: cube.Cw, Typ: cube.Dual}
	return [][]cube.Move{
		{},
		{u2, l2},
		{d2, f2},
		{f2, u2},
		{u2, l2, f2},
		{r2, d2, r2},
		{r2, b2, u2},
		{u2, f2, r2, d2},
	}
}

// dfs walks the search tree from c's current state, recording an
// insert-min candidate at every node, then backtracks by applying
// each move's inverse before trying the next sibling. Consecutive
// moves on the same face are pruned: two quarter turns of one face
// are always dominated by a single turn or no turn at all.
func dfs(c *cube.Cube, path []cube.Move, lastFace cube.Face, spec Spec, local *table.Table) {
	local.InsertMin(spec.KeyFunc(c), cube.ReverseInvert(path))
	if len(path) == spec.MaxDepth {
		return
	}
	for _, m := range spec.Moves {
		if m.Face == lastFace {
			continue
		}
		c.Apply(m)
		dfs(c, append(path, m), m.Face, spec, local)
		c.Apply(m.Inverse())
	}
}

// Build runs spec's search with one worker goroutine per allowed
// first move, merging each worker's local table via insert-min.
func Build(ctx context.Context, spec Spec) (*table.Table, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]*table.Table, len(spec.Moves))

	for i, first := range spec.Moves {
		i, first := i, first
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			local := table.New()
			c := cube.New()
			local.InsertMin(spec.KeyFunc(c), nil)
			c.Apply(first)
			dfs(c, []cube.Move{first}, first.Face, spec, local)
			results[i] = local
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := table.New()
	for _, r := range results {
		out.Merge(r)
	}
	return out, nil
}

// BuildSeeded runs spec's search once per entry in seeds, each worker
// applying its seed prefix to a fresh solved cube before searching
// spec.Moves. The seed moves count toward MaxDepth, and the first
// searched move skips the face of the seed's last move (an empty seed
// has no such restriction). Used for
// Phase3Spec, whose eight seeds are phase3Seeds.
func BuildSeeded(ctx context.Context, spec Spec, seeds [][]cube.Move) (*table.Table, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]*table.Table, len(seeds))

	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			local := table.New()
			c := cube.New()
			c.ApplyAll(seed)
			last := noFace
			if len(seed) > 0 {
				last = seed[len(seed)-1].Face
			}
			path := append([]cube.Move(nil), seed...)
			dfs(c, path, last, spec, local)
			results[i] = local
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := table.New()
	for _, r := range results {
		out.Merge(r)
	}
	return out, nil
}

// BuildPhase3 is the Phase3Spec-specific entry point: seeded search
// over the eight fixed coset representatives.
func BuildPhase3(ctx context.Context) (*table.Table, error) {
	return BuildSeeded(ctx, Phase3Spec(), phase3Seeds())
}

// Specs lists all four phases in solving order.
func Specs() []Spec {
	return []Spec{Phase1Spec(), Phase2Spec(), Phase3Spec(), Phase4Spec()}
}

// BuildPhase builds the table for one of the four phases (1-indexed),
// using the seeded builder for phase 3 and the first-move builder
// otherwise.
func BuildPhase(ctx context.Context, phase int) (*table.Table, error) {
	switch phase {
	case 1:
		return Build(ctx, Phase1Spec())
	case 2:
		return Build(ctx, Phase2Spec())
	case 3:
		return BuildPhase3(ctx)
	case 4:
		return Build(ctx, Phase4Spec())
	default:
		panic("pdb: unknown phase")
	}
}
