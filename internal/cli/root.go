// Package cli implements the cube command's surface: solving a move
// sequence or a random scramble, building phase tables, and serving
// the solver over HTTP.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flthistle/thistle-cube/internal/cube"
)

var rootCmd = &cobra.Command{
	Use:     "cube [MOVES]",
	Short:   "A Thistlethwaite four-phase Rubik's cube solver",
	Version: "1.0.0",
	Long: `cube reduces a scrambled 3x3x3 cube to the identity permutation in
four phases, each phase looking up a precomputed minimal move sequence
for the cube's current phase invariant.

MOVES, --rand, --new and --tab are mutually exclusive: MOVES applies a
literal move string before solving, --rand scrambles with N random
moves, --new starts from a solved cube, and --tab builds and persists
phase tables instead of solving anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

var (
	flagRand  int
	flagGroup int
	flagNew   bool
	flagTab   string
)

func init() {
	rootCmd.Flags().IntVarP(&flagRand, "rand", "r", 0, "apply N random moves as a scramble")
	rootCmd.Flags().IntVarP(&flagGroup, "group", "g", 0, "restrict --rand moves to the phase-G allowed subset (0-3)")
	rootCmd.Flags().BoolVarP(&flagNew, "new", "n", false, "start from a solved cube")
	rootCmd.Flags().StringVarP(&flagTab, "tab", "t", "", "build and persist tables (comma-separated subset of 1,2,3,4)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scrambleCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if flagTab != "" {
		if len(args) > 0 || flagRand != 0 || flagNew {
			return fmt.Errorf("--tab cannot be combined with MOVES, --rand or --new")
		}
		return runTab(flagTab)
	}

	hasMoves := len(args) > 0
	hasRand := cmd.Flags().Changed("rand")
	if hasMoves && hasRand {
		return fmt.Errorf("MOVES and --rand are mutually exclusive")
	}
	if (hasMoves || hasRand) && flagNew {
		return fmt.Errorf("--new cannot be combined with MOVES or --rand")
	}
	if cmd.Flags().Changed("group") && !hasRand {
		return fmt.Errorf("--group requires --rand")
	}

	c := cube.New()
	var applied []cube.Move
	var err error

	switch {
	case hasMoves:
		applied, err = cube.ParseMoves(args[0])
		if err != nil {
			return fmt.Errorf("parsing moves: %w", err)
		}
	case hasRand:
		applied = randomMoves(flagRand, flagGroup)
	case flagNew:
		applied = nil
	default:
		applied = nil
	}

	if len(applied) > 0 {
		fmt.Printf("MOVES: %s\n\n", cube.FormatMoves(applied))
		c.ApplyAll(applied)
	}

	fmt.Println(c.Display())

	return runSolve(c)
}

func runSolve(c *cube.Cube) error {
	tables, err := loadTables()
	if err != nil {
		return err
	}

	solution, err := tables.Solve(c)
	if err != nil {
		return err
	}

	fmt.Printf("Solution: %s\n", cube.FormatMoves(solution))
	fmt.Printf("Moves: %d\n", len(solution))
	return nil
}

func defaultTabDir() string {
	if dir := os.Getenv("CUBE_TAB_DIR"); dir != "" {
		return dir
	}
	return "tabs"
}
