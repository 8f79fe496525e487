// Package dataprocessing turns a sales export into a domain.SalesTable.
//
// # Loading
//
// Loader reads delimited text (the delimiter is sniffed from the header line
// unless configured) or an Excel workbook:
//
//	loader := dataprocessing.NewLoader(logger, cfg.Input)
//	table, err := loader.Load(ctx, "Walmart_Sales.csv")
//
// The Store, Date and Weekly_Sales columns are required. One date layout is
// chosen for the whole Date column: the first configured layout that parses
// every cell. Excel serial dates are converted before that check.
//
// # Errors
//
//   - FILE: the path is missing or unreadable
//   - PARSING: a required column is absent, a date does not parse, or a
//     Weekly_Sales cell is not numeric
//
// # Column Sniffing
//
// ColumnSniffer finds optional columns by an ordered list of matchers.
// FindHolidayColumn uses DefaultHolidayMatchers: "IsHoliday", then
// "Holiday_Flag", then any column whose name contains "holiday".
package dataprocessing
