package csp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AsmarHajizada/ai-projects/pkg/queens"
)

func TestForwardCheckRecordsExactPruning(t *testing.T) {
	s := propagateFixture(t, 6, nil)
	require.NoError(t, s.propagate())
	before := s.domains.snapshot()

	assignment := queens.Assignment{0: 0}
	pruned, ok := s.forwardCheck(0, 0, assignment)
	require.True(t, ok)
	assert.NotEqual(t, before, s.domains.snapshot())

	for row, cols := range pruned {
		s.domains.Restore(row, cols)
	}
	assert.Equal(t, before, s.domains.snapshot(), "restoration did not reproduce the pre-branch domains")
}

func TestForwardCheckFailsOnEmptiedDomain(t *testing.T) {
	s := propagateFixture(t, 4, nil)
	// leave row 2 only columns attacked from (0, 1)
	s.domains.Remove(2, 0)
	s.domains.Remove(2, 2)

	pruned, ok := s.forwardCheck(0, 1, queens.Assignment{0: 1})
	assert.False(t, ok)

	// the partial pruning record still restores what was removed
	for row, cols := range pruned {
		s.domains.Restore(row, cols)
	}
	assert.Equal(t, []int{1, 3}, s.domains.Values(2))
}

func TestSearchRestoresDomainsOnExhaustion(t *testing.T) {
	// a corner queen makes 4-queens unsolvable; run the search without
	// propagation so it must discover that and back all the way out
	s := propagateFixture(t, 4, queens.Assignment{0: 0})
	before := s.domains.snapshot()

	result, err := s.search(context.Background(), s.fixed.Clone())
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, before, s.domains.snapshot(), "exhausted search left pruned domains behind")
}

func TestSearchHonorsConsistencyBackstop(t *testing.T) {
	// hand the search a domain that propagation would have pruned;
	// the committed-row check must refuse it anyway
	s := propagateFixture(t, 4, queens.Assignment{0: 1})
	s.domains.Restore(1, []int{1})

	result, err := s.search(context.Background(), s.fixed.Clone())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsSolution(4))
}

func TestBacktrackSearchFindsKnownSolutions(t *testing.T) {
	for _, n := range []int{4, 5, 6, 7, 8, 10, 12, 20} {
		s := newTestSolver(t, n, nil)
		s.domains = NewDomains(n, s.fixed)
		solution, err := s.backtrackSearch(context.Background())
		require.NoError(t, err, "n=%d", n)
		assert.True(t, solution.IsSolution(n), "n=%d produced %v", n, solution)
	}
}

func TestConflicts(t *testing.T) {
	assignment := queens.Assignment{0: 0, 1: 2}
	assert.Equal(t, 0, conflicts(3, 1, assignment))
	assert.Equal(t, 1, conflicts(2, 0, assignment)) // column clash with row 0
	assert.Equal(t, 2, conflicts(2, 2, assignment)) // diagonal with row 0, column with row 1
	// the row's own entry is never counted
	assert.Equal(t, 0, conflicts(1, 2, assignment))
}
