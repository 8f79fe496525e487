// Package config provides configuration management for the sales-analysis tool.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//  1. Environment variables (highest priority)
//  2. A YAML configuration file
//  3. Default values (lowest priority)
//
// Command-line flags are applied on top by the caller.
//
// # Environment Variables
//
// All environment variables follow the pattern SALES_* for namespacing:
//
//	SALES_LOGGING_LEVEL=debug
//	SALES_LOGGING_OUTPUT=both
//	SALES_INPUT_DELIMITER=;
//	SALES_OUTPUT_DIR=reports
//	SALES_TELEMETRY_METRICS_FILE=outputs/sales.prom
//
// # Configuration File
//
// The file is read from --config, or from sales-analysis.yaml or
// configs/sales-analysis.yaml when present:
//
//	logging:
//	  level: info
//	  output: console
//	input:
//	  date_layouts: ["02-01-2006", "2006-01-02"]
//	analysis:
//	  service_factor: 1.65
//
// # Path Management
//
// Paths resolves the output directory against the working directory and
// names every report file:
//
//	paths, _ := config.GetPaths(cfg.Output.Dir)
//	paths.SummaryCSV()        // outputs/store_summary.csv
//	paths.SafetyStockCSV("1") // outputs/store_1_safety_stock.csv
package config
