// Package exporter writes analysis results to CSV reports and the console.
//
// CSVWriter is the low-level writer: it creates parent directories,
// overwrites or appends, and can prefix a UTF-8 BOM for Excel.
//
// ReportWriter writes each result to its fixed file in the output directory:
//
//	store_summary.csv
//	holiday_impact.csv
//	store_<id>_safety_stock.csv
//
// Numbers are written with the shortest exact representation and undefined
// values as empty cells, so ReadStoreSummaries, ReadHolidayComparisons and
// ReadInventoryEstimate read back exactly what was written.
//
// ConsolePrinter mirrors the same results for the terminal:
//
//	printer := exporter.NewConsolePrinter(os.Stdout)
//	printer.PrintForecast(result) // Store 1 4-week MA forecast: 1554806.47
package exporter
