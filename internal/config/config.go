package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "salescli/internal/errors"
	"salescli/internal/validation"
)

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Input     InputConfig     `yaml:"input" envconfig:"INPUT"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Analysis  AnalysisConfig  `yaml:"analysis" envconfig:"ANALYSIS"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// InputConfig controls how the sales file is read
type InputConfig struct {
	// Delimiter overrides delimiter sniffing; "" sniffs, "tab" means '\t'.
	Delimiter   string   `yaml:"delimiter" envconfig:"DELIMITER" validate:"delimiter"`
	DateLayouts []string `yaml:"date_layouts" envconfig:"DATE_LAYOUTS" validate:"min=1,dive,datelayout"`
	// Sheet selects the worksheet of an .xlsx input; "" means the first one.
	Sheet string `yaml:"sheet" envconfig:"SHEET"`
}

// OutputConfig controls where and how reports are written
type OutputConfig struct {
	Dir       string `yaml:"dir" envconfig:"DIR" validate:"required"`
	BOMPrefix bool   `yaml:"bom_prefix" envconfig:"BOM_PREFIX"`
	TopN      int    `yaml:"top_n" envconfig:"TOP_N" validate:"gte=0"`
}

// AnalysisConfig holds the defaults of the analysis parameters
type AnalysisConfig struct {
	Store         int      `yaml:"store" envconfig:"STORE"`
	Window        int      `yaml:"window" envconfig:"WINDOW" validate:"gte=1"`
	LeadTimeWeeks float64  `yaml:"lead_time_weeks" envconfig:"LEAD_TIME_WEEKS" validate:"gte=0"`
	ServiceFactor float64  `yaml:"service_factor" envconfig:"SERVICE_FACTOR" validate:"gt=0"`
	HolidayTruthy []string `yaml:"holiday_truthy" envconfig:"HOLIDAY_TRUTHY" validate:"min=1"`
}

// TelemetryConfig contains tracing and metrics export configuration
type TelemetryConfig struct {
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout file"`
	TraceFile     string `yaml:"trace_file" envconfig:"TRACE_FILE" validate:"required_if=TraceExporter file"`
	// MetricsFile receives a Prometheus textfile at the end of the run; "" disables it.
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Load builds the configuration from defaults, an optional YAML file and
// SALES_* environment variables, in increasing order of precedence.
// An explicit path that does not exist is an error; otherwise the well-known
// locations are searched.
func Load(path string) (*Config, error) {
	cfg := Default()

	configFile := path
	if configFile == "" {
		configFile = getConfigFilePath()
	} else if _, err := os.Stat(configFile); err != nil {
		return nil, apperrors.NewConfigError("config file not accessible", err).
			WithContext("path", configFile)
	}

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err).
				WithContext("path", configFile)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg; keys absent from the file keep their value
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	if err := validation.New().Validate(c); err != nil {
		return apperrors.NewConfigError("config validation failed", err)
	}

	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	return nil
}

// getConfigFilePath returns the first config file found in the common locations
func getConfigFilePath() string {
	locations := []string{
		ConfigFileName,
		"configs/" + ConfigFileName,
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/sales-analysis.log",
		},
		Input: InputConfig{
			DateLayouts: append([]string(nil), DefaultDateLayouts...),
		},
		Output: OutputConfig{
			Dir:  DefaultOutputDir,
			TopN: DefaultTopN,
		},
		Analysis: AnalysisConfig{
			Store:         DefaultStore,
			Window:        DefaultWindow,
			LeadTimeWeeks: DefaultLeadTimeWeeks,
			ServiceFactor: DefaultServiceFactor,
			HolidayTruthy: append([]string(nil), DefaultHolidayTruthy...),
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
		},
	}
}

// String summarizes the configuration for debug logging
func (c *Config) String() string {
	return fmt.Sprintf("log=%s/%s/%s out=%s window=%d lead=%.2f factor=%.2f trace=%s",
		c.Logging.Level, c.Logging.Format, c.Logging.Output,
		c.Output.Dir, c.Analysis.Window, c.Analysis.LeadTimeWeeks, c.Analysis.ServiceFactor,
		c.Telemetry.TraceExporter)
}
