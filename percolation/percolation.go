package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// New creates an n×n grid with every site blocked.
// Returns ErrInvalidArgument if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Percolation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("grid size %d must be > 0: %w", n, ErrInvalidArgument)
	}
	sites := n * n
	full, err := unionfind.New(sites + 1)
	if err != nil {
		return nil, err
	}
	perc, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}

	return &Percolation{
		n:      n,
		open:   make([]bool, sites),
		full:   full,
		perc:   perc,
		bottom: sites + 1,
	}, nil
}

// Size returns n, the side length of the grid.
func (p *Percolation) Size() int {
	return p.n
}

// InBounds reports whether (row, col) lies on the grid (1-indexed).
// Complexity: O(1).
func (p *Percolation) InBounds(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}

// Open opens site (row, col) if it is not open already and joins it to its
// open neighbours. Opening an open site changes nothing.
// Returns ErrInvalidArgument if (row, col) is off the grid.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return err
	}
	idx := p.index(row, col)
	if p.open[idx] {
		return nil
	}
	p.open[idx] = true
	p.openCount++

	id := p.siteID(row, col)
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !p.InBounds(nr, nc) || !p.open[p.index(nr, nc)] {
			continue
		}
		nid := p.siteID(nr, nc)
		p.full.Union(id, nid)
		p.perc.Union(id, nid)
	}

	if row == 1 {
		p.full.Union(topSite, id)
		p.perc.Union(topSite, id)
	}
	// Bottom row joins the virtual bottom in perc only; see package doc.
	if row == p.n {
		p.perc.Union(p.bottom, id)
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrInvalidArgument if (row, col) is off the grid.
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.open[p.index(row, col)], nil
}

// IsFull reports whether site (row, col) is open and connected to the top
// row through open sites. Blocked sites are never full.
// Returns ErrInvalidArgument if (row, col) is off the grid.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}
	if !p.open[p.index(row, col)] {
		return false, nil
	}

	return p.full.Connected(topSite, p.siteID(row, col)), nil
}

// NumberOfOpenSites returns how many sites have been opened.
// Complexity: O(1).
func (p *Percolation) NumberOfOpenSites() int {
	return p.openCount
}

// Percolates reports whether an open path joins the top row to the bottom row.
// Complexity: O(α(n²)) amortized.
func (p *Percolation) Percolates() bool {
	return p.perc.Connected(topSite, p.bottom)
}

// validate rejects coordinates outside [1..n].
func (p *Percolation) validate(row, col int) error {
	if row < 1 || row > p.n {
		return fmt.Errorf("row %d not in [1..%d]: %w", row, p.n, ErrInvalidArgument)
	}
	if col < 1 || col > p.n {
		return fmt.Errorf("col %d not in [1..%d]: %w", col, p.n, ErrInvalidArgument)
	}

	return nil
}

// index maps (row, col) to the row-major offset into p.open.
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + (col - 1)
}

// siteID maps (row, col) to its union-find id in [1..n²]; 0 is the virtual top.
func (p *Percolation) siteID(row, col int) int {
	return p.index(row, col) + 1
}

// coordinate converts a row-major offset back to (row, col).
func (p *Percolation) coordinate(idx int) (row, col int) {
	return idx/p.n + 1, idx%p.n + 1
}
