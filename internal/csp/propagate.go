package csp

import (
	"fmt"

	"github.com/AsmarHajizada/ai-projects/pkg/queens"
)

type arc struct {
	i, j int
}

// propagate runs AC3 over the domains: every ordered row pair is
// revised until the domains are pairwise arc-consistent. Returns
// ErrInfeasible as soon as a revision empties a domain. Arc
// consistency is a pre-filter only; a non-empty result does not
// guarantee a global solution exists.
func (s *Solver) propagate() error {
	queue := make([]arc, 0, s.n*(s.n-1))
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if i != j {
				queue = append(queue, arc{i, j})
			}
		}
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		if !s.revise(a.i, a.j) {
			continue
		}
		if s.domains.Empty(a.i) {
			return fmt.Errorf("%w: row %d has no remaining columns", queens.ErrInfeasible, a.i)
		}
		for k := 0; k < s.n; k++ {
			if k != a.i && k != a.j {
				queue = append(queue, arc{k, a.i})
			}
		}
	}
	return nil
}

// revise removes from row i's domain every column that conflicts with
// all of row j's remaining columns, and reports whether the domain
// changed.
func (s *Solver) revise(i, j int) bool {
	// Singleton shortcut: a committed row j rules out exactly three
	// columns in row i. Same pruning as the general case, without
	// the per-value scan.
	if s.domains.Size(j) == 1 {
		col := s.domains.single(j)
		diff := i - j
		if diff < 0 {
			diff = -diff
		}
		changed := s.domains.Remove(i, col)
		if s.domains.Remove(i, col+diff) {
			changed = true
		}
		if s.domains.Remove(i, col-diff) {
			changed = true
		}
		return changed
	}

	changed := false
	for _, v := range s.domains.Values(i) {
		supported := false
		for _, w := range s.domains.Values(j) {
			if !queens.Attacks(i, v, j, w) {
				supported = true
				break
			}
		}
		if !supported {
			s.domains.Remove(i, v)
			changed = true
		}
	}
	return changed
}
