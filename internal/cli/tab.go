package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/flthistle/thistle-cube/internal/buildlog"
	"github.com/flthistle/thistle-cube/internal/pdb"
	"github.com/flthistle/thistle-cube/internal/solver"
)

// runTab builds and persists the comma-separated subset of phase
// tables named by ids (each in 1..4), one file per phase under
// defaultTabDir, named mt_table_<N>.
func runTab(ids string) error {
	phases, err := parseTabIDs(ids)
	if err != nil {
		return err
	}

	log, err := openBuildLog()
	if err != nil {
		return err
	}
	defer log.Close()

	specs := pdb.Specs()
	dir := defaultTabDir()
	ctx := context.Background()

	for _, phase := range phases {
		spec := specs[phase-1]
		fmt.Printf("Table %d extraction:\n", phase)

		start := time.Now()
		tb, err := pdb.BuildPhase(ctx, phase)
		if err != nil {
			return fmt.Errorf("building %s table: %w", spec.Name, err)
		}
		elapsed := time.Since(start)

		path := fmt.Sprintf("%s/mt_table_%d", dir, phase)
		if err := tb.Save(path, spec.KeyBits); err != nil {
			return err
		}
		fmt.Printf("Extracted to file %s (%d entries, %v)\n", path, tb.Len(), elapsed)

		if _, err := log.Record(spec.Name, spec.KeyBits, tb.Len(), elapsed, start); err != nil {
			return fmt.Errorf("recording build log: %w", err)
		}
	}
	return nil
}

func parseTabIDs(ids string) ([]int, error) {
	seen := make(map[int]bool)
	var out []int
	for _, tok := range strings.Split(ids, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n < 1 || n > 4 {
			return nil, fmt.Errorf("--tab: invalid table id %q (must be 1-4)", tok)
		}
		if seen[n] {
			return nil, fmt.Errorf("--tab: duplicate table id %d", n)
		}
		seen[n] = true
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--tab: at least one table id required")
	}
	return out, nil
}

func openBuildLog() (*buildlog.DB, error) {
	path, err := buildlog.DefaultPath()
	if err != nil {
		return nil, err
	}
	return buildlog.Open(path)
}

func loadTables() (*solver.Tables, error) {
	return solver.Load(defaultTabDir())
}
