package unionfind

import (
	"errors"
	"fmt"
)

// ErrInvalidSize indicates a universe of zero or negative size was requested.
var ErrInvalidSize = errors.New("unionfind: size must be > 0")

// UnionFind is a weighted quick-union forest with path halving.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}

// New constructs a UnionFind of n elements, each in its own component.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the size of the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint components.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the component containing p.
// Complexity: O(α(N)) amortized.
func (uf *UnionFind) Find(p int) int {
	for uf.parent[p] != p {
		// Path halving: point p at its grandparent, then step there.
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// Connected reports whether p and q belong to the same component.
func (uf *UnionFind) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// Union merges the components containing p and q.
// Returns false if they were already joined, true if a merge happened.
// Complexity: O(α(N)) amortized.
func (uf *UnionFind) Union(p, q int) bool {
	rootP, rootQ := uf.Find(p), uf.Find(q)
	if rootP == rootQ {
		return false
	}
	// Attach the smaller tree under the larger root.
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return true
}

// SizeOf returns the number of elements in p's component.
func (uf *UnionFind) SizeOf(p int) int {
	return uf.size[uf.Find(p)]
}
