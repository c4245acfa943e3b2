package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AsmarHajizada/ai-projects/pkg/queens"
)

func TestNextRowPicksSmallestDomain(t *testing.T) {
	s := propagateFixture(t, 4, nil)
	s.domains.Remove(2, 0)
	s.domains.Remove(2, 3)

	assert.Equal(t, 2, s.nextRow(queens.Assignment{}))
}

func TestNextRowBreaksTiesOnLowestIndex(t *testing.T) {
	s := propagateFixture(t, 4, nil)
	s.domains.Remove(1, 0)
	s.domains.Remove(3, 0)

	assert.Equal(t, 1, s.nextRow(queens.Assignment{}))
}

func TestNextRowSkipsAssignedRows(t *testing.T) {
	s := propagateFixture(t, 4, nil)
	s.domains.Remove(0, 1)
	s.domains.Remove(0, 2)

	// row 0 has the smallest domain but is already committed
	assert.Equal(t, 1, s.nextRow(queens.Assignment{0: 0}))
}

func TestNextRowAllAssigned(t *testing.T) {
	s := propagateFixture(t, 2, nil)
	assert.Equal(t, -1, s.nextRow(queens.Assignment{0: 0, 1: 1}))
}

func TestOrderValuesPrefersLeastConstraining(t *testing.T) {
	s := propagateFixture(t, 4, nil)
	// narrow row 1 so the elimination counts differ per column:
	// col 2 and 3 eliminate 4 values each, col 1 five, col 0 six
	s.domains.Remove(1, 2)
	s.domains.Remove(1, 3)

	assert.Equal(t, []int{2, 3, 1, 0}, s.orderValues(0, queens.Assignment{}))
}

func TestOrderValuesTiesAscendByColumn(t *testing.T) {
	// on an untouched 4-board every column of row 0 eliminates the
	// same number of values, so the order falls back to column order
	s := propagateFixture(t, 4, nil)
	assert.Equal(t, []int{0, 1, 2, 3}, s.orderValues(0, queens.Assignment{}))
}

func TestOrderValuesIgnoresAssignedRows(t *testing.T) {
	// with row 3 committed only rows 1 and 2 count: columns 0 and 3
	// eliminate four values each, columns 1 and 2 five
	s := propagateFixture(t, 4, nil)
	assert.Equal(t, []int{0, 3, 1, 2}, s.orderValues(0, queens.Assignment{3: 0}))
}
