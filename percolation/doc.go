// Package percolation models site percolation on an n×n grid.
//
// What:
//
//   - Percolation tracks which sites of an n×n grid are open (all start
//     blocked) and answers, after every Open, whether a site is full
//     (connected to the top row through open sites) and whether the system
//     percolates (some open path joins the top row to the bottom row).
//   - Coordinates are 1-indexed: 1 ≤ row, col ≤ n.
//   - OpenClusters reports the current open components for inspection.
//
// How:
//
//   - Two independent union-find structures (package unionfind):
//     fullness sets over n²+1 elements (sites + virtual top) answer IsFull;
//     percolation sets over n²+2 elements (sites + virtual top + virtual
//     bottom) answer Percolates.
//   - Bottom-row sites are attached to the virtual bottom only in the
//     percolation sets. Sharing one structure would let a bottom-row
//     component reach the top through the virtual bottom once the system
//     percolates, and IsFull would then report sites that have no path to
//     the top ("backwash").
//   - Neighbours are visited with an explicit InBounds predicate; grid
//     edges are ordinary control flow.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open/IsFull:       O(α(n²)) amortized.
//   - IsOpen, NumberOfOpenSites: O(1).
//   - Percolates:        O(α(n²)) amortized.
//   - OpenClusters:      O(n²).
//
// Errors:
//
//   - ErrInvalidArgument: non-positive grid size or a coordinate outside
//     [1..n]. Opening an already-open site is a no-op, not an error.
//
// Concurrency: a Percolation is owned by one goroutine; it is not safe for
// concurrent use.
package percolation
