// Package csp implements the N-Queens constraint solver: AC3
// propagation over per-row column domains, MRV/LCV ordered
// forward-checking backtracking search, and min-conflicts local search
// for large boards.
package csp

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/AsmarHajizada/ai-projects/internal/sat"
	"github.com/AsmarHajizada/ai-projects/pkg/queens"
)

// backtrackThreshold is the largest board the auto strategy solves
// with complete search. A policy constant, not a correctness boundary.
const backtrackThreshold = 100

// defaultStepFactor scales the default min-conflicts budget with the
// board size.
const defaultStepFactor = 100

// Solver owns one N-Queens instance: the board size, the fixed rows of
// the partial assignment, and the domain store rebuilt for every
// Solve call. Nothing persists across calls.
type Solver struct {
	n        int
	fixed    queens.Assignment
	domains  *Domains
	strategy queens.Strategy
	maxSteps int
	rnd      *rand.Rand
}

type Option func(s *Solver) error

// WithStrategy overrides the size-based strategy selection.
func WithStrategy(strategy queens.Strategy) Option {
	return func(s *Solver) error {
		s.strategy = strategy
		return nil
	}
}

// WithMaxSteps sets the min-conflicts step budget. The default is 100
// steps per row.
func WithMaxSteps(maxSteps int) Option {
	return func(s *Solver) error {
		if maxSteps <= 0 {
			return fmt.Errorf("max steps must be positive, got %d", maxSteps)
		}
		s.maxSteps = maxSteps
		return nil
	}
}

// WithRand injects the random source used for min-conflicts
// tie-breaking, so runs can be reproduced from a seed.
func WithRand(rnd *rand.Rand) Option {
	return func(s *Solver) error {
		s.rnd = rnd
		return nil
	}
}

// New builds a solver for an n-sized board. Partial assignment
// entries with a column outside [0, n) are dropped and their rows
// treated as free, matching the permissive input contract.
func New(n int, partial queens.Assignment, options ...Option) (*Solver, error) {
	if n < 1 {
		return nil, fmt.Errorf("board size must be positive, got %d", n)
	}
	fixed := make(queens.Assignment, len(partial))
	for row, col := range partial {
		if row >= 0 && row < n && col >= 0 && col < n {
			fixed[row] = col
		}
	}
	s := &Solver{
		n:        n,
		fixed:    fixed,
		strategy: queens.StrategyAuto,
		maxSteps: defaultStepFactor * n,
	}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s, nil
}

// Solve returns a complete conflict-free assignment or an error from
// the queens package taxonomy. The auto strategy uses complete search
// up to the backtracking threshold and min-conflicts above it.
func (s *Solver) Solve(ctx context.Context) (queens.Assignment, error) {
	strategy := s.strategy
	if strategy == queens.StrategyAuto {
		if s.n <= backtrackThreshold {
			strategy = queens.StrategyBacktracking
		} else {
			strategy = queens.StrategyMinConflicts
		}
	}

	// Fresh domains per call: a failed or cancelled solve must not
	// leak pruning into the next one.
	s.domains = NewDomains(s.n, s.fixed)

	switch strategy {
	case queens.StrategyBacktracking:
		return s.backtrackSearch(ctx)
	case queens.StrategyMinConflicts:
		return s.minConflicts(ctx, s.maxSteps)
	case queens.StrategySAT:
		return sat.Solve(ctx, s.n, s.fixed)
	}
	return nil, fmt.Errorf("unknown strategy %q", strategy)
}
