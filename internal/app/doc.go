// Package app wires one run of the sales analysis tool.
//
// Options are parsed from the command line, completed from configuration
// and validated. The Application then loads the sales file once and runs the
// requested analyses in a fixed order:
//
//	1. summary         per-store totals, writes store_summary.csv
//	2. holiday impact  holiday versus regular weeks, writes holiday_impact.csv
//	3. forecast        moving-average forecast for one store, console only
//	4. safety stock    safety stock and reorder point, writes store_<id>_safety_stock.csv
//
// A load failure aborts the run. An unknown store prints a notice and the
// remaining analyses still run; any other analysis error is reported in the
// RunResult.
package app
