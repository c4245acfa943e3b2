package queens

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AsmarHajizada/ai-projects/internal/csp"
	pkgqueens "github.com/AsmarHajizada/ai-projects/pkg/queens"
)

type options struct {
	strategy string
	maxSteps int
	seed     int64
	seedSet  bool
}

// solverOptions translates the flag values into solver options. The
// random source is only pinned when --seed was given explicitly, so
// that a zero seed is selectable and an absent flag keeps time-based
// seeding.
func (o *options) solverOptions() ([]csp.Option, error) {
	strategy, err := pkgqueens.ParseStrategy(o.strategy)
	if err != nil {
		return nil, err
	}
	solverOpts := []csp.Option{csp.WithStrategy(strategy)}
	if o.maxSteps > 0 {
		solverOpts = append(solverOpts, csp.WithMaxSteps(o.maxSteps))
	}
	if o.seedSet {
		solverOpts = append(solverOpts, csp.WithRand(rand.New(rand.NewSource(o.seed))))
	}
	return solverOpts, nil
}

func NewQueensCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "queens <path>",
		Short: "Solves an n-queens placement given in a board file",
		Long: `Solves an n-queens placement given in a board file. The file has one
line per row containing the 0-based column of that row's queen, or -1
if the row is unassigned. For instance a 4x4 board with one fixed
queen:

-1
3
-1
-1
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			return solve(args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.strategy, "strategy", string(pkgqueens.StrategyAuto),
		"solving strategy: auto, backtracking, min-conflicts or sat")
	cmd.Flags().IntVar(&opts.maxSteps, "max-steps", 0,
		"min-conflicts step budget (default 100 per row)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0,
		"random seed for min-conflicts (default time-based)")
	return cmd
}

func solve(path string, opts *options) error {
	boardFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening board file (%s): %w", path, err)
	}
	defer boardFile.Close()

	board, err := NewBoard(boardFile)
	if err != nil {
		return fmt.Errorf("error parsing board file (%s): %w", path, err)
	}

	n := board.Size()
	if n < 10 || n > 1000 {
		fmt.Printf("Warning: board size n=%d is outside the recommended range (10 <= n <= 1000)\n", n)
	}

	solverOpts, err := opts.solverOptions()
	if err != nil {
		return err
	}

	solver, err := csp.New(n, board.Assignment(), solverOpts...)
	if err != nil {
		return err
	}

	start := time.Now()
	solution, err := solver.Solve(context.Background())
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("no solution found: %s\n", err)
		return nil
	}

	fmt.Printf("Solved in %.2f seconds\n", elapsed.Seconds())
	fmt.Print(Render(solution, n))
	return nil
}
