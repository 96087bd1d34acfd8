package stats

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/percolate/percolation"
)

// ErrInvalidArgument is percolation.ErrInvalidArgument, so a single
// errors.Is check covers both the driver and the grid.
var ErrInvalidArgument = percolation.ErrInvalidArgument

// confidenceZ is the two-sided 95% quantile of the standard normal.
const confidenceZ = 1.96

// Sampler selects how a trial picks the next site to open.
type Sampler int

const (
	// SamplerRejection draws (row, col) uniformly and retries on open sites.
	SamplerRejection Sampler = iota
	// SamplerPermutation opens sites in a uniformly shuffled order.
	SamplerPermutation
)

// String returns the lower-case sampler name used by configuration.
func (s Sampler) String() string {
	switch s {
	case SamplerRejection:
		return "rejection"
	case SamplerPermutation:
		return "permutation"
	default:
		return fmt.Sprintf("sampler(%d)", int(s))
	}
}

// ParseSampler maps "rejection" or "permutation" to a Sampler.
func ParseSampler(name string) (Sampler, error) {
	switch name {
	case "rejection", "":
		return SamplerRejection, nil
	case "permutation":
		return SamplerPermutation, nil
	default:
		return 0, fmt.Errorf("unknown sampler %q: %w", name, ErrInvalidArgument)
	}
}

// Options configures a simulation run.
//
// Fields:
//
//	Seed    int64        : RNG seed; 0 selects defaultRNGSeed. Ignored when Rand is set.
//	Rand    *rand.Rand   : caller-owned source; takes precedence over Seed.
//	Sampler Sampler      : site selection strategy (default SamplerRejection).
//	Logger  *slog.Logger : receives one debug record per trial; nil is silent.
type Options struct {
	Seed    int64
	Rand    *rand.Rand
	Sampler Sampler
	Logger  *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithSeed sets a deterministic seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand uses r as the random source. r must not be shared with other goroutines.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSampler selects the site selection strategy.
func WithSampler(s Sampler) Option {
	return func(o *Options) {
		o.Sampler = s
	}
}

// WithLogger attaches a logger for per-trial debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with Seed=0 (default seed), SamplerRejection
// and no logger.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Sampler: SamplerRejection,
	}
}

// Summary is a snapshot of a finished run. StdDev and the confidence bounds
// may be NaN (single trial); yaml encodes that as .nan, encoding/json refuses it.
type Summary struct {
	Size         int     `yaml:"size"`
	Trials       int     `yaml:"trials"`
	Sampler      string  `yaml:"sampler"`
	Mean         float64 `yaml:"mean"`
	StdDev       float64 `yaml:"stddev"`
	ConfidenceLo float64 `yaml:"confidence_lo"`
	ConfidenceHi float64 `yaml:"confidence_hi"`
}

// Stats holds the per-trial fractions and their aggregates.
// It is immutable after New returns.
type Stats struct {
	n         int
	sampler   Sampler
	fractions []float64
	mean      float64
	stddev    float64
}
