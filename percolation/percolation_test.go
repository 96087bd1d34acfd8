package percolation_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/percolate/percolation"
)

// PercolationSuite exercises the grid model under the documented scenarios.
type PercolationSuite struct {
	suite.Suite
}

// newGrid builds an n×n grid and opens the given sites.
func (s *PercolationSuite) newGrid(n int, open ...percolation.Site) *percolation.Percolation {
	p, err := percolation.New(n)
	require.NoError(s.T(), err)
	for _, site := range open {
		require.NoError(s.T(), p.Open(site.Row, site.Col))
	}

	return p
}

// mustFull returns IsFull and fails the test on error.
func (s *PercolationSuite) mustFull(p *percolation.Percolation, row, col int) bool {
	full, err := p.IsFull(row, col)
	require.NoError(s.T(), err)

	return full
}

// mustOpen returns IsOpen and fails the test on error.
func (s *PercolationSuite) mustOpen(p *percolation.Percolation, row, col int) bool {
	open, err := p.IsOpen(row, col)
	require.NoError(s.T(), err)

	return open
}

// TestNew_InvalidSize verifies ErrInvalidArgument for n ≤ 0.
func (s *PercolationSuite) TestNew_InvalidSize() {
	for _, n := range []int{0, -1, -7} {
		p, err := percolation.New(n)
		require.ErrorIs(s.T(), err, percolation.ErrInvalidArgument, "n=%d", n)
		require.Nil(s.T(), p)
	}
}

// TestNew_Empty checks a fresh grid for several sizes.
func (s *PercolationSuite) TestNew_Empty() {
	for _, n := range []int{1, 2, 5, 20} {
		p := s.newGrid(n)
		require.Equal(s.T(), n, p.Size())
		require.Zero(s.T(), p.NumberOfOpenSites(), "n=%d", n)
		require.False(s.T(), p.Percolates(), "n=%d", n)
		require.Empty(s.T(), p.OpenClusters())
		for r := 1; r <= n; r++ {
			for c := 1; c <= n; c++ {
				require.False(s.T(), s.mustOpen(p, r, c))
				require.False(s.T(), s.mustFull(p, r, c))
			}
		}
	}
}

// TestOutOfRange verifies every public coordinate check on a 3×3 grid.
func (s *PercolationSuite) TestOutOfRange() {
	p := s.newGrid(3)
	bad := [][2]int{{0, 1}, {4, 1}, {1, 0}, {1, 4}, {-1, -1}}
	for _, rc := range bad {
		_, err := p.IsOpen(rc[0], rc[1])
		require.ErrorIs(s.T(), err, percolation.ErrInvalidArgument, "IsOpen(%d,%d)", rc[0], rc[1])
		_, err = p.IsFull(rc[0], rc[1])
		require.ErrorIs(s.T(), err, percolation.ErrInvalidArgument, "IsFull(%d,%d)", rc[0], rc[1])
		err = p.Open(rc[0], rc[1])
		require.ErrorIs(s.T(), err, percolation.ErrInvalidArgument, "Open(%d,%d)", rc[0], rc[1])
	}
	// Rejected calls leave no trace.
	require.Zero(s.T(), p.NumberOfOpenSites())
}

// TestSingleSite covers n=1, where the only site is both top and bottom row.
func (s *PercolationSuite) TestSingleSite() {
	p := s.newGrid(1)
	require.False(s.T(), p.Percolates())
	require.NoError(s.T(), p.Open(1, 1))
	require.True(s.T(), p.Percolates())
	require.True(s.T(), s.mustFull(p, 1, 1))
	require.Equal(s.T(), 1, p.NumberOfOpenSites())
}

// TestTwoByTwo covers the vertical path and the diagonal non-path.
func (s *PercolationSuite) TestTwoByTwo() {
	vertical := s.newGrid(2, percolation.Site{Row: 1, Col: 1}, percolation.Site{Row: 2, Col: 1})
	require.True(s.T(), vertical.Percolates())

	diagonal := s.newGrid(2, percolation.Site{Row: 1, Col: 1}, percolation.Site{Row: 2, Col: 2})
	require.False(s.T(), diagonal.Percolates())
	require.True(s.T(), s.mustFull(diagonal, 1, 1))
	require.False(s.T(), s.mustFull(diagonal, 2, 2))
}

// TestOpen_Idempotent verifies that a second Open of the same site changes nothing.
func (s *PercolationSuite) TestOpen_Idempotent() {
	p := s.newGrid(3, percolation.Site{Row: 2, Col: 2})
	before := p.OpenClusters()
	require.NoError(s.T(), p.Open(2, 2))
	require.Equal(s.T(), 1, p.NumberOfOpenSites())
	require.Equal(s.T(), before, p.OpenClusters())
	require.False(s.T(), s.mustFull(p, 2, 2))
	require.False(s.T(), p.Percolates())
}

// TestNoBackwash_BottomRowOnly opens the whole bottom row of a 3×3 grid:
// the sites share the virtual bottom but must not be full.
func (s *PercolationSuite) TestNoBackwash_BottomRowOnly() {
	p := s.newGrid(3,
		percolation.Site{Row: 3, Col: 1},
		percolation.Site{Row: 3, Col: 2},
		percolation.Site{Row: 3, Col: 3},
	)
	require.False(s.T(), p.Percolates())
	for c := 1; c <= 3; c++ {
		require.False(s.T(), s.mustFull(p, 3, c), "(3,%d) must not be full", c)
	}
}

// TestNoBackwash_AfterPercolation opens a full column, then an isolated
// bottom-row site. The system percolates, but the isolated site and its
// upward neighbour are not connected to the top and must stay not full.
func (s *PercolationSuite) TestNoBackwash_AfterPercolation() {
	p := s.newGrid(3,
		percolation.Site{Row: 1, Col: 1},
		percolation.Site{Row: 2, Col: 1},
		percolation.Site{Row: 3, Col: 1},
		percolation.Site{Row: 3, Col: 3},
		percolation.Site{Row: 2, Col: 3},
	)
	require.True(s.T(), p.Percolates())
	require.True(s.T(), s.mustFull(p, 3, 1))
	require.False(s.T(), s.mustFull(p, 3, 3), "backwash through the virtual bottom")
	require.False(s.T(), s.mustFull(p, 2, 3), "backwash through the virtual bottom")

	// Closing the gap makes them full legitimately.
	require.NoError(s.T(), p.Open(1, 3))
	require.True(s.T(), s.mustFull(p, 3, 3))
}

// TestPercolationPath opens a winding path on a 5×5 grid and checks that
// percolation happens exactly with the last site.
func (s *PercolationSuite) TestPercolationPath() {
	path := []percolation.Site{
		{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 2, Col: 4},
		{Row: 3, Col: 4}, {Row: 4, Col: 4}, {Row: 4, Col: 3}, {Row: 5, Col: 3},
	}
	p := s.newGrid(5)
	for i, site := range path {
		require.False(s.T(), p.Percolates(), "percolated early at step %d", i)
		require.NoError(s.T(), p.Open(site.Row, site.Col))
		require.True(s.T(), s.mustFull(p, site.Row, site.Col), "step %d site %v", i, site)
	}
	require.True(s.T(), p.Percolates())
	require.Equal(s.T(), len(path), p.NumberOfOpenSites())
}

// TestRandomAgainstClusters opens random sites and compares IsFull and
// Percolates with a BFS oracle built from OpenClusters after every step.
// It also checks monotonicity of the open count and full ⇒ open.
func (s *PercolationSuite) TestRandomAgainstClusters() {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 3, 6, 9} {
		p := s.newGrid(n)
		prev := 0
		for step := 0; step < 2*n*n; step++ {
			row, col := r.Intn(n)+1, r.Intn(n)+1
			require.NoError(s.T(), p.Open(row, col))
			require.GreaterOrEqual(s.T(), p.NumberOfOpenSites(), prev)
			prev = p.NumberOfOpenSites()

			wantFull := make(map[percolation.Site]bool)
			wantPerc := false
			openSites := 0
			for _, cl := range p.OpenClusters() {
				openSites += len(cl)
				if !percolation.TouchesTop(cl) {
					continue
				}
				for _, site := range cl {
					wantFull[site] = true
					if site.Row == n {
						wantPerc = true
					}
				}
			}
			require.Equal(s.T(), openSites, p.NumberOfOpenSites())
			require.Equal(s.T(), wantPerc, p.Percolates(), "n=%d step=%d", n, step)

			for rr := 1; rr <= n; rr++ {
				for cc := 1; cc <= n; cc++ {
					site := percolation.Site{Row: rr, Col: cc}
					full := s.mustFull(p, rr, cc)
					require.Equal(s.T(), wantFull[site], full, "n=%d step=%d site=%v", n, step, site)
					if full {
						require.True(s.T(), s.mustOpen(p, rr, cc))
					}
				}
			}
		}
	}
}

// TestInBounds checks the 1-indexed bounds predicate.
func (s *PercolationSuite) TestInBounds() {
	p := s.newGrid(4)
	for _, rc := range [][2]int{{1, 1}, {4, 4}, {2, 3}} {
		require.True(s.T(), p.InBounds(rc[0], rc[1]), fmt.Sprint(rc))
	}
	for _, rc := range [][2]int{{0, 1}, {5, 1}, {1, 0}, {1, 5}} {
		require.False(s.T(), p.InBounds(rc[0], rc[1]), fmt.Sprint(rc))
	}
}

// TestPercolationSuite runs all PercolationSuite tests.
func TestPercolationSuite(t *testing.T) {
	suite.Run(t, new(PercolationSuite))
}
