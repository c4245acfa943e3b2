package csp

import (
	"context"
	"fmt"

	"github.com/AsmarHajizada/ai-projects/pkg/queens"
)

// minConflicts runs stochastic repair: seed every free row greedily,
// then repeatedly move a random conflicted row to a least-conflicted
// column until no conflicts remain or the step budget runs out. It is
// a heuristic with no completeness guarantee; ErrBudgetExhausted does
// not imply no solution exists.
func (s *Solver) minConflicts(ctx context.Context, maxSteps int) (queens.Assignment, error) {
	assignment := s.fixed.Clone()

	// Greedy seeding: each free row takes the least-conflicted
	// column of its domain. An emptied domain falls back to a
	// uniformly random column and relies on the repair loop to
	// recover.
	for row := 0; row < s.n; row++ {
		if _, ok := assignment[row]; ok {
			continue
		}
		if cols := s.domains.Values(row); len(cols) > 0 {
			assignment[row] = s.leastConflicted(row, cols, assignment)
		} else {
			assignment[row] = s.rnd.Intn(s.n)
		}
	}

	fullRange := make([]int, s.n)
	for col := range fullRange {
		fullRange[col] = col
	}

	for step := 0; step < maxSteps; step++ {
		if ctx.Err() != nil {
			return nil, queens.ErrIncomplete
		}

		var conflicted []int
		for row := 0; row < s.n; row++ {
			if _, ok := s.fixed[row]; ok {
				continue
			}
			if conflicts(row, assignment[row], assignment) > 0 {
				conflicted = append(conflicted, row)
			}
		}
		if len(conflicted) == 0 {
			return assignment, nil
		}

		// Repair moves range over the full column set, not the
		// pruned domain: a row may have to pass through columns
		// its domain excluded to escape a local minimum.
		row := conflicted[s.rnd.Intn(len(conflicted))]
		assignment[row] = s.leastConflicted(row, fullRange, assignment)
	}

	return nil, fmt.Errorf("%w: %d steps for n=%d", queens.ErrBudgetExhausted, maxSteps, s.n)
}

// leastConflicted returns the column among cols that minimizes row's
// conflict count against the rest of the assignment, chosen uniformly
// at random among ties.
func (s *Solver) leastConflicted(row int, cols []int, assignment queens.Assignment) int {
	bestCount := s.n + 1
	var best []int
	for _, col := range cols {
		switch count := conflicts(row, col, assignment); {
		case count < bestCount:
			bestCount = count
			best = append(best[:0], col)
		case count == bestCount:
			best = append(best, col)
		}
	}
	return best[s.rnd.Intn(len(best))]
}
