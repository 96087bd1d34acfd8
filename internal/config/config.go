// Package config loads percolate CLI settings from defaults, an optional
// yaml file, PERCOLATE_* environment variables and bound flags, via viper.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix, e.g. PERCOLATE_LOG_LEVEL.
const EnvPrefix = "PERCOLATE"

// Config represents the complete percolate configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Stats  StatsConfig  `mapstructure:"stats" yaml:"stats"`
}

// LogConfig controls stderr logging
type LogConfig struct {
	// Level is one of "error", "warn", "info", "debug", "trace"
	Level string `mapstructure:"level" yaml:"level"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	// Format is one of "text", "json", "yaml"
	Format string `mapstructure:"format" yaml:"format"`
}

// StatsConfig controls the Monte Carlo driver
type StatsConfig struct {
	// Seed fixes the RNG; 0 means seed from the clock
	Seed int64 `mapstructure:"seed" yaml:"seed"`
	// Sampler is "rejection" or "permutation"
	Sampler string `mapstructure:"sampler" yaml:"sampler"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Format: "text"},
		Stats: StatsConfig{
			Seed:    0,
			Sampler: "rejection",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("stats.seed", defaults.Stats.Seed)
	v.SetDefault("stats.sampler", defaults.Stats.Sampler)
}

// Init prepares v: defaults, config file lookup and environment binding.
// cfgFile overrides the search path when non-empty. A missing config file
// is not an error; a malformed one is.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	// e.g., PERCOLATE_STATS_SEED for stats.seed
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "percolate")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".percolate"
	}
	return filepath.Join(home, ".config", "percolate")
}
