package percolation

import (
	"errors"

	"github.com/katalvlaran/percolate/unionfind"
)

// ErrInvalidArgument covers every rejected input of this package:
// a grid size ≤ 0 or a row/col outside [1..n].
// Returned wrapped with context; match it with errors.Is.
var ErrInvalidArgument = errors.New("percolation: invalid argument")

// topSite is the id of the virtual top node in both union-find structures.
const topSite = 0

// neighborOffsets lists the 4-connected (row, col) deltas: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Site is a 1-indexed grid coordinate.
type Site struct {
	Row, Col int
}

// Percolation is an n×n grid of sites, each open or blocked.
// It is mutated only by Open; every other method is a query.
type Percolation struct {
	n         int
	open      []bool // row-major, index (row-1)*n + (col-1)
	openCount int

	// full answers IsFull: sites + virtual top (n²+1 elements).
	full *unionfind.UnionFind
	// perc answers Percolates: sites + virtual top + virtual bottom (n²+2 elements).
	perc *unionfind.UnionFind

	bottom int // id of the virtual bottom node in perc (n²+1)
}
