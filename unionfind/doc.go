// Package unionfind provides a fixed-size disjoint-set (union-find) structure
// over the integer universe [0, N).
//
// What:
//
//   - UnionFind partitions N elements into disjoint components.
//   - Union merges two components; Connected reports whether two elements
//     share a component.
//   - Partitions only ever coarsen: there is no split operation.
//
// How:
//
//   - Weighted quick-union: the smaller tree is attached under the root of
//     the larger one (union by size).
//   - Path halving on Find: every visited node is re-pointed to its
//     grandparent, flattening trees as a side effect of queries.
//
// Complexity:
//
//   - New:                O(N) time, O(N) memory.
//   - Find/Union/Connected: O(α(N)) amortized (inverse Ackermann).
//   - Count/Len:          O(1).
//
// Errors:
//
//   - ErrInvalidSize: New was called with N ≤ 0.
//
// Element indices outside [0, N) are programmer errors and panic with an
// index-out-of-range runtime error, the same way slice indexing does.
//
// Concurrency: a UnionFind is not safe for concurrent use; Find mutates the
// forest even though it is a query.
package unionfind
