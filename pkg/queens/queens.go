// Package queens holds the types shared between the N-Queens solver
// engine and its callers: the assignment representation, the solving
// strategies, and the error values a solve can end in.
package queens

import "errors"

// ErrInfeasible is returned when no placement satisfying the
// constraints exists: either constraint propagation emptied a row's
// domain, or the complete search exhausted its tree.
var ErrInfeasible = errors.New("no valid placement exists")

// ErrBudgetExhausted is returned when min-conflicts runs out of repair
// steps before reaching zero conflicts. Unlike ErrInfeasible it does
// not prove anything: retrying with a larger budget or with complete
// search may still succeed.
var ErrBudgetExhausted = errors.New("step budget exhausted before a conflict-free placement was found")

// ErrIncomplete is returned when the context is cancelled before a
// solution could be found.
var ErrIncomplete = errors.New("cancelled before a solution could be found")

// Assignment maps a row index to the column holding that row's queen.
// A partial assignment simply omits the free rows.
type Assignment map[int]int

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for row, col := range a {
		out[row] = col
	}
	return out
}

// Attacks reports whether queens at (r1, c1) and (r2, c2) attack each
// other: same column or same diagonal. Rows are distinct by
// construction, so they are not compared.
func Attacks(r1, c1, r2, c2 int) bool {
	if c1 == c2 {
		return true
	}
	dr := r1 - r2
	if dr < 0 {
		dr = -dr
	}
	dc := c1 - c2
	if dc < 0 {
		dc = -dc
	}
	return dr == dc
}

// IsSolution reports whether the assignment places exactly one queen
// in every row of an n-sized board with no two queens attacking each
// other.
func (a Assignment) IsSolution(n int) bool {
	if len(a) != n {
		return false
	}
	for r1, c1 := range a {
		if c1 < 0 || c1 >= n {
			return false
		}
		for r2, c2 := range a {
			if r1 != r2 && Attacks(r1, c1, r2, c2) {
				return false
			}
		}
	}
	return true
}

// Strategy selects the algorithm used by a solve.
type Strategy string

const (
	// StrategyAuto chooses complete search for small boards and
	// min-conflicts above the backtracking threshold.
	StrategyAuto Strategy = "auto"
	// StrategyBacktracking forces forward-checking backtracking
	// search with MRV/LCV ordering.
	StrategyBacktracking Strategy = "backtracking"
	// StrategyMinConflicts forces stochastic min-conflicts repair.
	StrategyMinConflicts Strategy = "min-conflicts"
	// StrategySAT forces the CNF encoding on the gini solver.
	StrategySAT Strategy = "sat"
)

// ParseStrategy maps a user-supplied name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAuto, StrategyBacktracking, StrategyMinConflicts, StrategySAT:
		return Strategy(s), nil
	}
	return "", errors.New("unknown strategy: " + s)
}
