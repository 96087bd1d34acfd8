// Package percolate models site percolation on an n×n grid and estimates
// the percolation threshold by Monte Carlo simulation.
//
// What is percolation?
//
//	Every site of an n×n grid is either open or blocked. A site is full when
//	an open path of 4-connected sites joins it to the top row; the system
//	percolates when some bottom-row site is full. Opening sites uniformly at
//	random, the fraction of open sites at which the system first percolates
//	concentrates around p* ≈ 0.5927 as n grows.
//
// Under the hood, everything is organized under these subpackages:
//
//	unionfind/     weighted quick-union with path halving over [0, N)
//	percolation/   the grid model (Open, IsOpen, IsFull, Percolates)
//	stats/         sequential Monte Carlo trials, mean, stddev, 95% interval
//	cmd/percolate/ CLI: "open" replays sites, "stats" runs trials
//
// Quick ASCII example (■ open, □ blocked), n = 3:
//
//	□ ■ □
//	□ ■ ■
//	■ □ ■
//
// (1,2)-(2,2)-(2,3)-(3,3) joins the top row to the bottom row: the system
// percolates. (3,1) is open and on the bottom row, but it is not full.
//
//	go get github.com/katalvlaran/percolate
package percolate
