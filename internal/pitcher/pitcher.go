// Package pitcher solves the water-pitcher puzzle: given pitchers of
// fixed capacities and an infinite reservoir, reach a target amount in
// the reservoir in as few steps as possible. A step fills a pitcher,
// empties one into the reservoir, or pours one into another.
package pitcher

import (
	"container/heap"
	"strconv"
	"strings"
)

// NoSolution is returned by MinSteps when the target is unreachable.
const NoSolution = -1

type state struct {
	f         int // steps + heuristic
	steps     int
	collected int
	fills     []int
}

type stateHeap []*state

func (h stateHeap) Len() int { return len(h) }

func (h stateHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].steps < h[j].steps
}

func (h stateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *stateHeap) Push(x any) { *h = append(*h, x.(*state)) }

func (h *stateHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return s
}

func gcdAll(values []int) int {
	if len(values) == 0 {
		return 0
	}
	g := values[0]
	for _, v := range values[1:] {
		g = gcd(g, v)
		if g == 1 {
			break
		}
	}
	return g
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// heuristic estimates the steps left to collect remaining units, in
// increments of the smallest capacity.
func heuristic(remaining, minCap int) int {
	if minCap == 0 {
		return 0
	}
	if remaining < 0 {
		remaining = -remaining
	}
	return (remaining + minCap - 1) / minCap
}

func key(collected int, fills []int) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(collected))
	for _, f := range fills {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(f))
	}
	return b.String()
}

// MinSteps returns the minimum number of steps to collect exactly
// target units, or NoSolution if the target cannot be reached. The
// target is unreachable whenever it is not a multiple of the GCD of
// the capacities.
func MinSteps(capacities []int, target int) int {
	if target == 0 {
		return 0
	}
	if len(capacities) == 0 {
		return NoSolution
	}
	if target%gcdAll(capacities) != 0 {
		return NoSolution
	}

	minCap := capacities[0]
	for _, c := range capacities[1:] {
		if c < minCap {
			minCap = c
		}
	}

	n := len(capacities)
	start := &state{
		f:     heuristic(target, minCap),
		fills: make([]int, n),
	}
	open := &stateHeap{start}
	heap.Init(open)
	visited := map[string]int{key(0, start.fills): 0}

	push := func(steps, collected int, fills []int) (done bool) {
		if collected > target {
			return false
		}
		k := key(collected, fills)
		if seen, ok := visited[k]; ok && seen <= steps {
			return false
		}
		if collected == target {
			return true
		}
		visited[k] = steps
		heap.Push(open, &state{
			f:         steps + heuristic(target-collected, minCap),
			steps:     steps,
			collected: collected,
			fills:     fills,
		})
		return false
	}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*state)
		if cur.collected == target {
			return cur.steps
		}
		if seen, ok := visited[key(cur.collected, cur.fills)]; ok && seen < cur.steps {
			continue
		}

		for i := 0; i < n; i++ {
			// fill pitcher i to its capacity
			if cur.fills[i] < capacities[i] {
				next := append([]int(nil), cur.fills...)
				next[i] = capacities[i]
				if push(cur.steps+1, cur.collected, next) {
					return cur.steps + 1
				}
			}
			// empty pitcher i into the reservoir
			if cur.fills[i] > 0 {
				next := append([]int(nil), cur.fills...)
				next[i] = 0
				if push(cur.steps+1, cur.collected+cur.fills[i], next) {
					return cur.steps + 1
				}
			}
		}

		// pour pitcher i into pitcher j
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || cur.fills[i] == 0 {
					continue
				}
				transfer := capacities[j] - cur.fills[j]
				if transfer > cur.fills[i] {
					transfer = cur.fills[i]
				}
				if transfer <= 0 {
					continue
				}
				next := append([]int(nil), cur.fills...)
				next[i] -= transfer
				next[j] += transfer
				if push(cur.steps+1, cur.collected, next) {
					return cur.steps + 1
				}
			}
		}
	}

	return NoSolution
}
