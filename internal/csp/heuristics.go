package csp

import (
	"sort"

	"github.com/AsmarHajizada/ai-projects/pkg/queens"
)

// nextRow selects the unassigned row with the fewest remaining domain
// values (MRV), breaking ties on the lowest row index so runs are
// reproducible. Returns -1 when every row is assigned.
func (s *Solver) nextRow(assignment queens.Assignment) int {
	best := -1
	bestSize := s.n + 1
	for row := 0; row < s.n; row++ {
		if _, ok := assignment[row]; ok {
			continue
		}
		if size := s.domains.Size(row); size < bestSize {
			best, bestSize = row, size
		}
	}
	return best
}

// orderValues returns row's domain ordered by the least-constraining
// value heuristic: ascending by the number of (row, column) pairs each
// value would eliminate from the domains of the other unassigned rows,
// ties on the lower column.
func (s *Solver) orderValues(row int, assignment queens.Assignment) []int {
	values := s.domains.Values(row)
	eliminations := make(map[int]int, len(values))

	for _, col := range values {
		count := 0
		for other := 0; other < s.n; other++ {
			if other == row {
				continue
			}
			if _, ok := assignment[other]; ok {
				continue
			}
			for candidate := range s.domains.cols[other] {
				if queens.Attacks(row, col, other, candidate) {
					count++
				}
			}
		}
		eliminations[col] = count
	}

	sort.SliceStable(values, func(a, b int) bool {
		return eliminations[values[a]] < eliminations[values[b]]
	})
	return values
}
