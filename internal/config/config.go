// Package config defines the data structures related to run configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/sustfish/bycatch-tradeoffs/pkg/constants"
)

// Configuration holds all configuration for bycatch-tradeoffs.
type Configuration struct {
	Inputs     InputsConfig
	Simulation SimulationConfig
	Summary    SummaryConfig
	Output     OutputConfig
	Logging    LoggingConfig `yaml:"logging,omitempty"`
}

// InputsConfig locates the two input tables.
type InputsConfig struct {
	SpeciesFile string
	StocksFile  string
}

// SimulationConfig fixes the dimensions of the Monte Carlo run.
type SimulationConfig struct {
	Draws        int     // n1, outer draws per species
	Resamples    int     // n2, resamples per draw
	Alpha        float64 // elasticity exponent
	Uncertainty  bool    // draw species parameters from distributions
	Seed         int64   // master random seed
	Workers      int     // parallel species tasks, 0 means available CPUs
	ResampleSize int     // records per resample, 0 means pool size
}

// SummaryConfig controls the summary statistics.
type SummaryConfig struct {
	Quantiles []float64
}

// OutputConfig holds output format configuration options.
type OutputConfig struct {
	Directory string `yaml:"directory,omitempty"`
	Format    string `yaml:"format,omitempty"` // pretty, csv, xlsx
}

// LoggingConfig holds logging configuration options.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, applying defaults for unset simulation parameters.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Simulation.Draws == 0 {
		conf.Simulation.Draws = constants.DefaultDraws
	}
	if conf.Simulation.Resamples == 0 {
		conf.Simulation.Resamples = constants.DefaultResamples
	}
	if conf.Simulation.Alpha == 0 {
		conf.Simulation.Alpha = constants.DefaultAlpha
	}
	if conf.Simulation.Seed == 0 {
		conf.Simulation.Seed = constants.DefaultSeed
	}
	if len(conf.Summary.Quantiles) == 0 {
		conf.Summary.Quantiles = constants.DefaultQuantiles
	}
	if conf.Output.Directory == "" {
		conf.Output.Directory = "."
	}
}

// Validate rejects configurations that cannot produce a meaningful run.
func (conf *Configuration) Validate() error {
	if conf.Inputs.SpeciesFile == "" {
		return fmt.Errorf("inputs.speciesFile is required")
	}
	if conf.Inputs.StocksFile == "" {
		return fmt.Errorf("inputs.stocksFile is required")
	}
	for _, path := range []string{conf.Inputs.SpeciesFile, conf.Inputs.StocksFile} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("input file %s: %w", path, err)
		}
	}
	if conf.Simulation.Draws < 1 {
		return fmt.Errorf("simulation.draws must be at least 1, got %d", conf.Simulation.Draws)
	}
	if conf.Simulation.Resamples < 1 {
		return fmt.Errorf("simulation.resamples must be at least 1, got %d", conf.Simulation.Resamples)
	}
	if conf.Simulation.Alpha <= 0 {
		return fmt.Errorf("simulation.alpha must be positive, got %v", conf.Simulation.Alpha)
	}
	for _, q := range conf.Summary.Quantiles {
		if q <= 0 || q >= 1 {
			return fmt.Errorf("summary.quantiles entries must be in (0, 1), got %v", q)
		}
	}
	return nil
}

// ValidateConfiguration performs non-fatal checks and returns any warnings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string
	if conf.Simulation.Draws < 100 {
		warnings = append(warnings, fmt.Sprintf("simulation.draws = %d is low; summary quantiles will be noisy", conf.Simulation.Draws))
	}
	if conf.Simulation.Workers < 0 {
		warnings = append(warnings, fmt.Sprintf("simulation.workers = %d is negative and will fall back to the CPU count", conf.Simulation.Workers))
	}
	if conf.Simulation.ResampleSize < 0 {
		warnings = append(warnings, fmt.Sprintf("simulation.resampleSize = %d is negative and will fall back to the pool size", conf.Simulation.ResampleSize))
	}
	return warnings
}
