package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sustfish/bycatch-tradeoffs/internal/config"
	"github.com/sustfish/bycatch-tradeoffs/internal/simulation"
	"github.com/sustfish/bycatch-tradeoffs/pkg/constants"
	"github.com/sustfish/bycatch-tradeoffs/pkg/datasets"
	"github.com/sustfish/bycatch-tradeoffs/pkg/output"
	"github.com/sustfish/bycatch-tradeoffs/pkg/summary"
	"github.com/sustfish/bycatch-tradeoffs/pkg/validation"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, xlsx")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatCSV
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}
	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Load the input tables; both pools are read-only for the whole run.
	species, err := datasets.LoadSpecies(conf.Inputs.SpeciesFile)
	if err != nil {
		logger.Fatal("failed to load bycatch species table",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	stocks, err := datasets.LoadStocks(conf.Inputs.StocksFile)
	if err != nil {
		logger.Fatal("failed to load target stock table",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	if len(species) == 0 || len(stocks) == 0 {
		logger.Fatal("no meaningful output is possible from empty inputs",
			zap.String("op", "main"),
			zap.Int("species", len(species)),
			zap.Int("stocks", len(stocks)),
		)
	}

	params := simulation.Params{
		Draws:        conf.Simulation.Draws,
		Resamples:    conf.Simulation.Resamples,
		Alpha:        conf.Simulation.Alpha,
		Uncertainty:  conf.Simulation.Uncertainty,
		ResampleSize: conf.Simulation.ResampleSize,
	}
	engine, err := simulation.NewEngine(stocks, params, logger)
	if err != nil {
		logger.Fatal("failed to build simulation engine",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	progress := func(done, total int) {
		logger.Info("simulation progress",
			zap.String("op", "main"),
			zap.Int("done", done),
			zap.Int("total", total),
		)
	}
	driver := simulation.NewDriver(engine, conf.Simulation.Seed, conf.Simulation.Workers, progress, logger)

	result, err := driver.Run(species)
	if err != nil {
		logger.Fatal("simulation run failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	table := summary.Summarize(result.Rows, conf.Summary.Quantiles)
	regions := summary.RegionTotals(stocks)

	if err := writeOutputs(conf, outputFormat, result, table, regions); err != nil {
		logger.Fatal("failed to write outputs",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	output.PrettyReport(result.Report)
	if len(result.Report.Failures) > 0 {
		logger.Warn("run completed with failed species",
			zap.String("op", "main"),
			zap.Strings("species", result.Report.FailedSpecies()),
		)
	}
}

// writeOutputs persists the run's tables in the selected format. The pretty
// format prints the summary to stdout and still persists the CSV tables so a
// run always leaves its results behind.
func writeOutputs(conf *config.Configuration, format string, result *simulation.RunResult, table summary.Table, regions []summary.RegionRow) error {
	dir := conf.Output.Directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	uncertainty := conf.Simulation.Uncertainty
	alpha := conf.Simulation.Alpha

	if format == constants.OutputFormatXLSX {
		return output.WriteWorkbook(filepath.Join(dir, output.WorkbookFileName(uncertainty, alpha)),
			result.Rows, table, regions, result.Report)
	}

	if err := output.WriteResultsCSV(filepath.Join(dir, output.ResultsFileName(uncertainty, alpha)), result.Rows); err != nil {
		return err
	}
	if err := output.WriteSummaryCSV(filepath.Join(dir, output.SummaryFileName(uncertainty, alpha)), table); err != nil {
		return err
	}
	if err := output.WriteRegionsCSV(filepath.Join(dir, output.RegionsFileName(uncertainty, alpha)), regions); err != nil {
		return err
	}

	if format == constants.OutputFormatPretty {
		output.PrettySummary(table)
	}
	return nil
}
