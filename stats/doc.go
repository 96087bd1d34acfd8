// Package stats estimates the site-percolation threshold of an n×n grid by
// Monte Carlo simulation.
//
// What & Why
//
//   - Each trial starts from a fresh, fully blocked percolation.Percolation
//     and opens uniformly random sites until the grid percolates. The
//     fraction of open sites at that moment is one sample of the threshold.
//   - Over T trials the package reports the sample mean, the sample
//     standard deviation (T−1 denominator) and the 95% confidence interval
//     mean ∓ 1.96·stddev/√T.
//
// Sampling
//
//   - SamplerRejection (default): draw row and col independently and
//     uniformly in [1..n]; if the site is already open, draw again. Only
//     successful opens are counted.
//   - SamplerPermutation: shuffle the n² site indices once per trial and
//     open them in that order. The order in which sites get opened has the
//     same distribution as under rejection sampling, so the recorded
//     fractions are identically distributed; it avoids the long retry
//     tails on nearly-full grids.
//
// Determinism
//
//   - All randomness comes from one *rand.Rand. WithSeed(s) makes runs
//     reproducible; seed 0 selects a fixed default seed. WithRand injects
//     a caller-owned source.
//
// Single trial
//
//   - With T == 1 the sample variance is undefined: StdDev returns NaN and
//     the confidence bounds are NaN as well. This is a value, not an error.
//
// Errors
//
//   - ErrInvalidArgument: n ≤ 0 or trials ≤ 0.
//
// Trials run sequentially on the calling goroutine. Each trial owns its
// grid, so nothing is shared between trials other than the RNG.
package stats
