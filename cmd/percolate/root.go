package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/percolate/internal/config"
	"github.com/katalvlaran/percolate/internal/logging"
)

// app carries the per-invocation configuration shared by subcommands.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "percolate",
		Short: "Site percolation on an n-by-n grid",
		Long: `percolate models site percolation with union-find.

"open" replays a list of sites and reports whether the grid percolates.
"stats" runs Monte Carlo trials and estimates the percolation threshold
with a 95% confidence interval.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/percolate/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: error, warn, info, debug, trace")
	rootCmd.PersistentFlags().String("format", "text", "output format: text, json, yaml")
	_ = a.v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.AddCommand(
		newOpenCmd(a),
		newStatsCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads configuration and builds the stderr logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(a.v, cfgFile); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	a.logger = logging.NewLogger(cfg.Log.Level, cmd.ErrOrStderr())
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("config loaded", "file", used)
	}

	return nil
}
