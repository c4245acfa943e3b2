package csp

import (
	"sort"

	"github.com/AsmarHajizada/ai-projects/pkg/queens"
)

// Domains tracks, per row, the set of columns still considered legal
// for that row's queen. Fixed rows start as singletons, free rows as
// the full column range; propagation and forward checking shrink the
// sets and backtracking restores them.
type Domains struct {
	n    int
	cols []map[int]struct{}
}

// NewDomains builds the domain sets for an n-sized board with the
// given fixed rows, then removes from every free row the columns
// attacked by a fixed queen.
func NewDomains(n int, fixed queens.Assignment) *Domains {
	d := &Domains{
		n:    n,
		cols: make([]map[int]struct{}, n),
	}
	for row := 0; row < n; row++ {
		if col, ok := fixed[row]; ok {
			d.cols[row] = map[int]struct{}{col: {}}
			continue
		}
		set := make(map[int]struct{}, n)
		for col := 0; col < n; col++ {
			set[col] = struct{}{}
		}
		d.cols[row] = set
	}
	for row, col := range fixed {
		for other := 0; other < n; other++ {
			if other == row {
				continue
			}
			if _, ok := fixed[other]; ok {
				continue
			}
			for candidate := range d.cols[other] {
				if queens.Attacks(row, col, other, candidate) {
					delete(d.cols[other], candidate)
				}
			}
		}
	}
	return d
}

// Has reports whether col is still in row's domain.
func (d *Domains) Has(row, col int) bool {
	_, ok := d.cols[row][col]
	return ok
}

// Remove deletes col from row's domain and reports whether it was
// present. Columns outside [0, n) are a no-op.
func (d *Domains) Remove(row, col int) bool {
	if col < 0 || col >= d.n {
		return false
	}
	if _, ok := d.cols[row][col]; !ok {
		return false
	}
	delete(d.cols[row], col)
	return true
}

// Restore re-adds the given columns to row's domain. Restoring a
// column that is already present is a no-op, so overlapping pruning
// records cannot lose values.
func (d *Domains) Restore(row int, cols []int) {
	for _, col := range cols {
		d.cols[row][col] = struct{}{}
	}
}

// Size returns the number of columns left in row's domain.
func (d *Domains) Size(row int) int {
	return len(d.cols[row])
}

// Empty reports whether row's domain has no columns left.
func (d *Domains) Empty(row int) bool {
	return len(d.cols[row]) == 0
}

// Values returns row's remaining columns in ascending order.
func (d *Domains) Values(row int) []int {
	out := make([]int, 0, len(d.cols[row]))
	for col := range d.cols[row] {
		out = append(out, col)
	}
	sort.Ints(out)
	return out
}

// single returns the lone column of a singleton domain. It must only
// be called when Size(row) == 1.
func (d *Domains) single(row int) int {
	for col := range d.cols[row] {
		return col
	}
	return -1
}

// snapshot captures every row's domain as sorted slices, for equality
// checks in tests.
func (d *Domains) snapshot() [][]int {
	out := make([][]int, d.n)
	for row := 0; row < d.n; row++ {
		out[row] = d.Values(row)
	}
	return out
}
