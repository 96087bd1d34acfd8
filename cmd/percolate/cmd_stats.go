package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/stats"
)

// statsReport is the json/yaml shape of a stats run. Undefined statistics
// (a single trial) are encoded as null.
type statsReport struct {
	Size         int      `json:"size" yaml:"size"`
	Trials       int      `json:"trials" yaml:"trials"`
	Seed         int64    `json:"seed" yaml:"seed"`
	Sampler      string   `json:"sampler" yaml:"sampler"`
	Mean         *float64 `json:"mean" yaml:"mean"`
	StdDev       *float64 `json:"stddev" yaml:"stddev"`
	ConfidenceLo *float64 `json:"confidence_lo" yaml:"confidence_lo"`
	ConfidenceHi *float64 `json:"confidence_hi" yaml:"confidence_hi"`
}

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats N TRIALS",
		Short: "Estimate the percolation threshold of an N-by-N grid",
		Long: `Run TRIALS independent experiments on an N-by-N grid. Each experiment
opens uniformly random sites until the grid percolates and records the
fraction of open sites. Prints the sample mean, sample standard deviation
and the 95% confidence interval.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid grid size %q: %w", args[0], err)
			}
			trials, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid number of trials %q: %w", args[1], err)
			}
			sampler, err := stats.ParseSampler(a.cfg.Stats.Sampler)
			if err != nil {
				return err
			}
			seed := a.cfg.Stats.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			a.logger.Info("running trials", "size", n, "trials", trials, "sampler", sampler, "seed", seed)
			start := time.Now()
			s, err := stats.New(n, trials,
				stats.WithSeed(seed),
				stats.WithSampler(sampler),
				stats.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			a.logger.Info("trials finished", "elapsed", time.Since(start))

			sum := s.Summary()
			report := statsReport{
				Size:         sum.Size,
				Trials:       sum.Trials,
				Seed:         seed,
				Sampler:      sum.Sampler,
				Mean:         finite(sum.Mean),
				StdDev:       finite(sum.StdDev),
				ConfidenceLo: finite(sum.ConfidenceLo),
				ConfidenceHi: finite(sum.ConfidenceHi),
			}
			return writeReport(cmd.OutOrStdout(), a.cfg.Output.Format, report, func(w io.Writer) error {
				_, err := fmt.Fprintf(w,
					"mean                    = %v\nstddev                  = %v\n95%% confidence interval = [%v, %v]\n",
					sum.Mean, sum.StdDev, sum.ConfidenceLo, sum.ConfidenceHi)
				return err
			})
		},
	}

	cmd.Flags().Int64("seed", 0, "RNG seed (0 seeds from the clock)")
	cmd.Flags().String("sampler", "rejection", "site sampler: rejection, permutation")
	_ = a.v.BindPFlag("stats.seed", cmd.Flags().Lookup("seed"))
	_ = a.v.BindPFlag("stats.sampler", cmd.Flags().Lookup("sampler"))

	return cmd
}
