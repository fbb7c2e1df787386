// Package constants provides shared constants for the bycatch-tradeoffs application.
package constants

// Simulation defaults
const (
	// DefaultDraws is the default number of outer Monte Carlo draws (n1)
	DefaultDraws = 1000

	// DefaultResamples is the default number of bootstrap resamples per draw (n2)
	DefaultResamples = 100

	// DefaultAlpha is the default elasticity exponent
	DefaultAlpha = 1.0

	// DefaultSeed is the default master random number generator seed
	DefaultSeed int64 = 1234
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatXLSX is the Excel workbook output format
	OutputFormatXLSX = "xlsx"
)

// Uncertainty mode labels used in output filenames
const (
	// ModePoint labels runs driven by species point estimates
	ModePoint = "point"

	// ModeMonteCarlo labels runs that draw species parameters from distributions
	ModeMonteCarlo = "montecarlo"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Data constants
const (
	// MissingToken is the token written for undefined values in output tables
	MissingToken = "NA"

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DefaultStockWeight is the weight assumed for stock records without an
	// explicit weight column
	DefaultStockWeight = 1.0
)

// DefaultQuantiles are the summary quantiles reported when the configuration
// does not request specific ones.
var DefaultQuantiles = []float64{0.1, 0.5, 0.9}
