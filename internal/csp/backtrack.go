package csp

import (
	"context"
	"fmt"

	"github.com/AsmarHajizada/ai-projects/pkg/queens"
)

// backtrackSearch runs AC3 once and then forward-checking backtracking
// search from the fixed assignment. It is complete: a nil-error return
// is a valid solution and ErrInfeasible means the full consistent
// search tree was exhausted.
func (s *Solver) backtrackSearch(ctx context.Context) (queens.Assignment, error) {
	if err := s.propagate(); err != nil {
		return nil, err
	}
	assignment := s.fixed.Clone()
	result, err := s.search(ctx, assignment)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: search space exhausted for n=%d", queens.ErrInfeasible, s.n)
	}
	return result, nil
}

// search tries to extend assignment to a complete placement. A (nil,
// nil) return means this branch is exhausted; the caller's domains are
// restored to their pre-call shape in that case.
func (s *Solver) search(ctx context.Context, assignment queens.Assignment) (queens.Assignment, error) {
	if len(assignment) == s.n {
		return assignment, nil
	}
	if ctx.Err() != nil {
		return nil, queens.ErrIncomplete
	}

	row := s.nextRow(assignment)
	for _, col := range s.orderValues(row, assignment) {
		// Consistency backstop against committed rows; domains are
		// pruned but a fixed row's own value was never revised
		// against the assignment being built here.
		if conflicts(row, col, assignment) > 0 {
			continue
		}

		assignment[row] = col
		pruned, ok := s.forwardCheck(row, col, assignment)
		if ok {
			result, err := s.search(ctx, assignment)
			if err != nil {
				return nil, err
			}
			if result != nil {
				return result, nil
			}
		}
		for other, cols := range pruned {
			s.domains.Restore(other, cols)
		}
		delete(assignment, row)
	}
	return nil, nil
}

// forwardCheck removes the columns attacked by the new queen at (row,
// col) from every other unassigned row's domain, recording exactly
// what was removed so the caller can undo it. Returns false if any
// domain was emptied, in which case the branch is dead.
func (s *Solver) forwardCheck(row, col int, assignment queens.Assignment) (map[int][]int, bool) {
	pruned := make(map[int][]int)
	for other := 0; other < s.n; other++ {
		if other == row {
			continue
		}
		if _, ok := assignment[other]; ok {
			continue
		}
		for _, candidate := range s.domains.Values(other) {
			if queens.Attacks(row, col, other, candidate) {
				s.domains.Remove(other, candidate)
				pruned[other] = append(pruned[other], candidate)
			}
		}
		if s.domains.Empty(other) {
			return pruned, false
		}
	}
	return pruned, true
}

// conflicts counts the committed queens that attack a queen placed at
// (row, col). The row's own entry, if present, is not counted.
func conflicts(row, col int, assignment queens.Assignment) int {
	count := 0
	for r, c := range assignment {
		if r != row && queens.Attacks(row, col, r, c) {
			count++
		}
	}
	return count
}
