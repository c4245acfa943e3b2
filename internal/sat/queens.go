// Package sat encodes N-Queens as CNF and hands it to the gini
// solver. It exists as a cross-check for the CSP engine: both must
// agree on satisfiability for any instance.
package sat

import (
	"context"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/AsmarHajizada/ai-projects/pkg/queens"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// pollInterval bounds how long a cancelled context can go unnoticed
// while gini runs in the background.
const pollInterval = 10 * time.Millisecond

// lit returns the positive literal for "a queen stands on (row, col)"
// on an n-sized board. Variable numbering starts at 1.
func lit(n, row, col int) z.Lit {
	return z.Var(uint32(row*n + col + 1)).Pos()
}

// Solve builds the CNF encoding, assumes the fixed queens, and asks
// gini for a model. One variable per cell; per row an exactly-one
// constraint; per row pair, conflict clauses for shared columns and
// diagonals. The solve runs in the background and is stopped when ctx
// is cancelled.
func Solve(ctx context.Context, n int, fixed queens.Assignment) (queens.Assignment, error) {
	g := gini.New()

	for row := 0; row < n; row++ {
		// every row holds a queen
		for col := 0; col < n; col++ {
			g.Add(lit(n, row, col))
		}
		g.Add(z.LitNull)

		// and at most one
		for colA := 0; colA < n; colA++ {
			for colB := colA + 1; colB < n; colB++ {
				g.Add(lit(n, row, colA).Not())
				g.Add(lit(n, row, colB).Not())
				g.Add(z.LitNull)
			}
		}
	}

	// cross-row conflicts: same column and the two diagonals
	for rowA := 0; rowA < n; rowA++ {
		for rowB := rowA + 1; rowB < n; rowB++ {
			diff := rowB - rowA
			for colA := 0; colA < n; colA++ {
				for _, colB := range []int{colA, colA - diff, colA + diff} {
					if colB < 0 || colB >= n {
						continue
					}
					g.Add(lit(n, rowA, colA).Not())
					g.Add(lit(n, rowB, colB).Not())
					g.Add(z.LitNull)
				}
			}
		}
	}

	for row, col := range fixed {
		g.Assume(lit(n, row, col))
	}

	background := g.GoSolve()
	outcome := 0
	for outcome == 0 {
		if ctx.Err() != nil {
			background.Stop()
			return nil, queens.ErrIncomplete
		}
		outcome = background.Try(pollInterval)
	}

	switch outcome {
	case satisfiable:
		solution := make(queens.Assignment, n)
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				if g.Value(lit(n, row, col)) {
					solution[row] = col
					break
				}
			}
		}
		return solution, nil
	case unsatisfiable:
		return nil, fmt.Errorf("%w: formula unsatisfiable for n=%d", queens.ErrInfeasible, n)
	}
	return nil, queens.ErrIncomplete
}
