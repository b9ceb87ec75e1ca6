package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/flthistle/thistle-cube/internal/cube"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble without solving it",
	Long: `scramble prints N random moves (mutually exclusive with solving), useful
for generating practice scrambles outside of the solve pipeline.`,
	RunE: runScramble,
}

var (
	scrambleCount    int
	scrambleGroup    int
	scrambleOptimize bool
)

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleCount, "count", "n", 25, "number of random moves")
	scrambleCmd.Flags().IntVarP(&scrambleGroup, "group", "g", 0, "restrict to the phase-G allowed subset (0-3)")
	scrambleCmd.Flags().BoolVar(&scrambleOptimize, "optimize", false, "collapse same-face runs before printing")
}

func runScramble(cmd *cobra.Command, args []string) error {
	moves := randomMoves(scrambleCount, scrambleGroup)
	if scrambleOptimize {
		moves = optimizeMoves(moves)
	}
	fmt.Println(cube.FormatMoves(moves))
	return nil
}

// randomMoves picks n random moves from the phase-group allowed
// subset (group 0 is the full 18-move set; group G restricts to
// cube.MovSet[:18-4*G], mirroring the phase-(G+1) move truncation).
// No two consecutive moves share a face, matching the reference
// scrambler's exclusion.
func randomMoves(n, group int) []cube.Move {
	pool := cube.MovSet[:len(cube.MovSet)-4*group]
	out := make([]cube.Move, 0, n)
	for i := 0; i < n; i++ {
		mv := pool[rand.Intn(len(pool))]
		for len(out) > 0 && mv.Face == out[len(out)-1].Face {
			mv = pool[rand.Intn(len(pool))]
		}
		out = append(out, mv)
	}
	return out
}

// optimizeMoves collapses a move sequence by combining consecutive
// turns on the same face into a single turn (or dropping them if they
// cancel), e.g. "R R" -> "R2", "R R'" -> "". Purely a display nicety;
// it never runs as part of solving or table building.
func optimizeMoves(moves []cube.Move) []cube.Move {
	out := make([]cube.Move, 0, len(moves))
	for _, m := range moves {
		if len(out) == 0 || out[len(out)-1].Face != m.Face {
			out = append(out, m)
			continue
		}
		combined, ok := combineSameFace(out[len(out)-1], m)
		out = out[:len(out)-1]
		if ok {
			out = append(out, combined)
		}
	}
	return out
}

func quarterTurns(m cube.Move) int {
	switch {
	case m.Typ == cube.Dual:
		return 2
	case m.Rot == cube.Cw:
		return 1
	default:
		return 3
	}
}

func combineSameFace(a, b cube.Move) (cube.Move, bool) {
	total := (quarterTurns(a) + quarterTurns(b)) % 4
	switch total {
	case 0:
		return cube.Move{}, false
	case 1:
		return cube.Move{Face: a.Face, Rot: cube.Cw, Typ: cube.Single}, true
	case 2:
		return cube.Move{Face: a.Face, Rot: cube.Cw, Typ: cube.Dual}, true
	default:
		return cube.Move{Face: a.Face, Rot: cube.Ccw, Typ: cube.Single}, true
	}
}
