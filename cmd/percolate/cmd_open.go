package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/internal/logging"
	"github.com/katalvlaran/percolate/percolation"
)

// openReport is the json/yaml shape of an open run.
type openReport struct {
	Size       int  `json:"size" yaml:"size"`
	OpenSites  int  `json:"open_sites" yaml:"open_sites"`
	Percolates bool `json:"percolates" yaml:"percolates"`
	Clusters   int  `json:"clusters" yaml:"clusters"`
}

func newOpenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a list of sites and report whether the grid percolates",
		Long: `Read a grid size N followed by whitespace-separated row/col pairs
(1-indexed) from stdin or --input, open each site on an N-by-N grid,
and report the number of open sites and whether the system percolates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if path, _ := cmd.Flags().GetString("input"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			p, err := replaySites(cmd.Context(), a, in)
			if err != nil {
				return err
			}

			report := openReport{
				Size:       p.Size(),
				OpenSites:  p.NumberOfOpenSites(),
				Percolates: p.Percolates(),
				Clusters:   len(p.OpenClusters()),
			}
			return writeReport(cmd.OutOrStdout(), a.cfg.Output.Format, report, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%d open sites\nSystem percolation: %v\n%d open clusters\n",
					report.OpenSites, report.Percolates, report.Clusters)
				return err
			})
		},
	}

	cmd.Flags().StringP("input", "i", "", "read sites from file instead of stdin")

	return cmd
}

// replaySites reads "N row col row col ..." from r and opens each site.
func replaySites(ctx context.Context, a *app, r io.Reader) (*percolation.Percolation, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, bool, error) {
		if !sc.Scan() {
			return 0, false, sc.Err()
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false, fmt.Errorf("invalid %s %q: %w", what, sc.Text(), err)
		}
		return v, true, nil
	}

	n, ok, err := next("grid size")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("missing grid size")
	}
	p, err := percolation.New(n)
	if err != nil {
		return nil, err
	}

	for {
		row, ok, err := next("row")
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		col, ok, err := next("col")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("row %d has no matching col", row)
		}
		if err = p.Open(row, col); err != nil {
			return nil, err
		}
		a.logger.Log(ctx, logging.LevelTrace, "opened site", "row", row, "col", col, "percolates", p.Percolates())
	}

	return p, nil
}
