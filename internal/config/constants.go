package config

import (
	"time"

	"salescli/pkg/contracts"
)

// Application constants
const (
	AppName    = "sales-analysis"
	AppVersion = contracts.Version

	// EnvPrefix namespaces environment variables: SALES_LOGGING_LEVEL, ...
	EnvPrefix      = "SALES"
	ConfigFileName = "sales-analysis.yaml"

	// Analysis defaults
	DefaultStore         = 1
	DefaultWindow        = 4
	DefaultLeadTimeWeeks = 2.0
	DefaultServiceFactor = 1.65
	DefaultTopN          = 10

	// Output locations (relative to the working directory)
	DefaultOutputDir      = "outputs"
	StoreSummaryFile      = "store_summary.csv"
	HolidayImpactFile     = "holiday_impact.csv"
	SafetyStockFilePrefix = "store_"
	SafetyStockFileSuffix = "_safety_stock.csv"

	// TelemetryShutdownTimeout bounds span/metric flushing at exit
	TelemetryShutdownTimeout = 5 * time.Second
)

// DefaultDateLayouts are tried in order; the first one that parses every
// date of the file is used for the whole column. Dashed dates are read
// day-first, slashed dates month-first.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"01/02/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// DefaultHolidayTruthy are the lowercased cell values read as a holiday week
var DefaultHolidayTruthy = []string{"1", "true", "yes"}
