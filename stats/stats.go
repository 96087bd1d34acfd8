package stats

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/percolate/percolation"
)

// New runs trials independent experiments on an n×n grid and aggregates
// the open-site fraction observed at percolation time.
//
// Error Conditions:
//   - ErrInvalidArgument: n ≤ 0, trials ≤ 0, or an unknown Sampler.
//
// Steps:
//  1. Validate n, trials and options.
//  2. For each trial: fresh grid, open sites with the selected sampler until
//     Percolates, record opened/n².
//  3. Compute the sample mean and sample standard deviation.
//
// Complexity: O(trials · n² · α(n²)) expected for both samplers.
func New(n, trials int, opts ...Option) (*Stats, error) {
	if n <= 0 {
		return nil, fmt.Errorf("grid size %d must be > 0: %w", n, ErrInvalidArgument)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("number of trials %d must be > 0: %w", trials, ErrInvalidArgument)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var trial func(*rand.Rand, int) (int, error)
	switch o.Sampler {
	case SamplerRejection:
		trial = rejectionTrial
	case SamplerPermutation:
		trial = permutationTrial
	default:
		return nil, fmt.Errorf("unknown sampler %d: %w", int(o.Sampler), ErrInvalidArgument)
	}
	r := o.Rand
	if r == nil {
		r = rngFromSeed(o.Seed)
	}

	sites := float64(n * n)
	fractions := make([]float64, trials)
	for i := range fractions {
		opened, err := trial(r, n)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		fractions[i] = float64(opened) / sites
		if o.Logger != nil {
			o.Logger.Debug("trial finished",
				"trial", i,
				"size", n,
				"open_sites", opened,
				"fraction", fractions[i])
		}
	}

	return &Stats{
		n:         n,
		sampler:   o.Sampler,
		fractions: fractions,
		mean:      mean(fractions),
		stddev:    sampleStdDev(fractions),
	}, nil
}

// rejectionTrial draws row and col uniformly in [1..n] until an unopened
// site comes up, opens it, and repeats until the grid percolates.
// Returns the number of sites opened.
func rejectionTrial(r *rand.Rand, n int) (int, error) {
	p, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	opened := 0
	for !p.Percolates() {
		row := uniformInclusive(r, 1, n)
		col := uniformInclusive(r, 1, n)
		isOpen, err := p.IsOpen(row, col)
		if err != nil {
			return 0, err
		}
		if isOpen {
			continue
		}
		if err = p.Open(row, col); err != nil {
			return 0, err
		}
		opened++
	}

	return opened, nil
}

// permutationTrial opens the sites of a fresh grid in a uniformly shuffled
// order until the grid percolates. Returns the number of sites opened.
func permutationTrial(r *rand.Rand, n int) (int, error) {
	p, err := percolation.New(n)
	if err != nil {
		return 0, err
	}
	opened := 0
	for _, idx := range permRange(n*n, r) {
		if err = p.Open(idx/n+1, idx%n+1); err != nil {
			return 0, err
		}
		opened++
		if p.Percolates() {
			break
		}
	}

	return opened, nil
}

// Mean returns the sample mean of the percolation threshold.
func (s *Stats) Mean() float64 {
	return s.mean
}

// StdDev returns the sample standard deviation of the percolation threshold.
// With a single trial the sample variance is undefined and StdDev is NaN.
func (s *Stats) StdDev() float64 {
	return s.stddev
}

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
// NaN when StdDev is NaN.
func (s *Stats) ConfidenceLo() float64 {
	return s.mean - s.halfWidth()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
// NaN when StdDev is NaN.
func (s *Stats) ConfidenceHi() float64 {
	return s.mean + s.halfWidth()
}

// Fractions returns a copy of the per-trial open-site fractions, in trial order.
func (s *Stats) Fractions() []float64 {
	out := make([]float64, len(s.fractions))
	copy(out, s.fractions)

	return out
}

// Trials returns the number of trials run.
func (s *Stats) Trials() int {
	return len(s.fractions)
}

// Size returns the grid side length n.
func (s *Stats) Size() int {
	return s.n
}

// Summary returns a serializable snapshot of the run.
func (s *Stats) Summary() Summary {
	return Summary{
		Size:         s.n,
		Trials:       s.Trials(),
		Sampler:      s.sampler.String(),
		Mean:         s.Mean(),
		StdDev:       s.StdDev(),
		ConfidenceLo: s.ConfidenceLo(),
		ConfidenceHi: s.ConfidenceHi(),
	}
}

// halfWidth is 1.96·stddev/√T.
func (s *Stats) halfWidth() float64 {
	return confidenceZ * s.stddev / math.Sqrt(float64(len(s.fractions)))
}

// mean returns the arithmetic mean of xs. xs must be non-empty.
func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// sampleStdDev returns the sample standard deviation of xs with the
// (len−1) denominator. NaN when len(xs) < 2.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	m := mean(xs)
	sumSq := 0.0
	for _, x := range xs {
		d := x - m
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(xs)-1))
}
