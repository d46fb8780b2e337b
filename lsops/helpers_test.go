package lsops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/pathop"
)

// buildTwoPaths builds two disjoint next[]-array paths sharing the same
// variable pool: 0->1->...->(mid-1) (end) and mid->...->(n-1) (end).
func buildTwoPaths(t *testing.T, mid, n int) ([]assignment.Var, []bool, *assignment.Assignment) {
	t.Helper()
	next := make([]int64, n)
	for i := 0; i < mid-1; i++ {
		next[i] = int64(i + 1)
	}
	next[mid-1] = int64(mid - 1)
	for i := mid; i < n-1; i++ {
		next[i] = int64(i + 1)
	}
	next[n-1] = int64(n - 1)

	vars := make([]assignment.Var, n)
	a := assignment.NewAssignment()
	for i := range next {
		v, err := assignment.NewIntVar("n", 0, int64(n-1))
		require.NoError(t, err)
		vars[i] = v
		a.FastAdd(v).SetValue(next[i])
	}
	isEnd := make([]bool, n)
	isEnd[mid-1] = true
	isEnd[n-1] = true

	return vars, isEnd, a
}

// pathWalker is the minimal surface collectPath needs from a path
// operator's embedded Base.
type pathWalker interface {
	Next(i int) int
	IsPathEnd(i int) bool
}

var _ pathWalker = (*pathop.Base)(nil)

// collectPath walks next[] from start until a path end, returning the
// visited node sequence including start and the terminal node.
func collectPath(b pathWalker, start int) []int {
	visited := []int{start}
	node := start
	for !b.IsPathEnd(node) {
		node = b.Next(node)
		visited = append(visited, node)
	}
	return visited
}

// buildPathWithOneInactive builds a path 0->1->...->(pathLen-1) (end)
// plus one extra standalone inactive node at index pathLen.
func buildPathWithOneInactive(t *testing.T, pathLen int) ([]assignment.Var, []bool, *assignment.Assignment) {
	t.Helper()
	n := pathLen + 1
	next := make([]int64, n)
	for i := 0; i < pathLen-1; i++ {
		next[i] = int64(i + 1)
	}
	next[pathLen-1] = int64(pathLen - 1)
	next[pathLen] = int64(pathLen)

	vars := make([]assignment.Var, n)
	a := assignment.NewAssignment()
	for i := range next {
		v, err := assignment.NewIntVar("n", 0, int64(n-1))
		require.NoError(t, err)
		vars[i] = v
		a.FastAdd(v).SetValue(next[i])
	}
	isEnd := make([]bool, n)
	isEnd[pathLen-1] = true

	return vars, isEnd, a
}

// isPermutationOfRange reports whether nodes visits each of
// {0, ..., n-1} exactly once, in some order.
func isPermutationOfRange(nodes []int, n int) bool {
	if len(nodes) != n {
		return false
	}
	seen := make(map[int]int, n)
	for _, v := range nodes {
		seen[v]++
	}
	for i := 0; i < n; i++ {
		if seen[i] != 1 {
			return false
		}
	}
	return true
}
