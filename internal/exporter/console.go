package exporter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"salescli/pkg/contracts/domain"
)

// ConsolePrinter mirrors analysis results in human-readable form
type ConsolePrinter struct {
	w io.Writer
}

// NewConsolePrinter creates a printer writing to w, normally os.Stdout
func NewConsolePrinter(w io.Writer) *ConsolePrinter {
	return &ConsolePrinter{w: w}
}

// PrintStoreSummary prints the first topN summaries as an aligned table.
// topN <= 0 prints all of them.
func (p *ConsolePrinter) PrintStoreSummary(summaries []domain.StoreSummary, topN int) {
	if topN > 0 && len(summaries) > topN {
		summaries = summaries[:topN]
	}

	tw := p.table()
	fmt.Fprintln(tw, strings.Join(StoreSummaryHeaders, "\t"))
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%s\t%d\n",
			s.Store, s.TotalSales, s.AvgWeekly, s.StdWeekly, s.Weeks)
	}
	tw.Flush()
}

// PrintHolidayImpact prints the holiday comparison table
func (p *ConsolePrinter) PrintHolidayImpact(rows []domain.HolidayComparison) {
	column := "holiday"
	if len(rows) > 0 {
		column = rows[0].Column
	}

	tw := p.table()
	fmt.Fprintln(tw, column+"\t"+strings.Join(HolidayStatHeaders, "\t"))
	for _, r := range rows {
		fmt.Fprintf(tw, "%t\t%.2f\t%d\t%s\n", r.Flag, r.Mean, r.Count, r.Std)
	}
	tw.Flush()
}

// PrintHolidayColumnMissing lists the available columns when no holiday
// column could be found.
func (p *ConsolePrinter) PrintHolidayColumnMissing(columns []string) {
	fmt.Fprintf(p.w, "No holiday-like column found. Available: [%s]\n", strings.Join(columns, ", "))
}

// PrintForecast prints the one-line forecast
func (p *ConsolePrinter) PrintForecast(f domain.ForecastResult) {
	fmt.Fprintf(p.w, "Store %s %d-week MA forecast: %.2f\n", f.Store, f.Window, f.Value)
}

// PrintInventoryEstimate prints the estimate as key: value lines
func (p *ConsolePrinter) PrintInventoryEstimate(e domain.InventoryEstimate) {
	tw := p.table()
	fmt.Fprintf(tw, "store:\t%s\n", e.Store)
	fmt.Fprintf(tw, "mean_weekly_demand:\t%.2f\n", e.MeanWeeklyDemand)
	fmt.Fprintf(tw, "std_weekly_demand:\t%s\n", e.StdWeeklyDemand)
	fmt.Fprintf(tw, "safety_stock:\t%s\n", e.SafetyStock)
	fmt.Fprintf(tw, "reorder_point:\t%s\n", e.ReorderPoint)
	tw.Flush()
}

// PrintMessage prints a notice such as "No data for store 5"
func (p *ConsolePrinter) PrintMessage(msg string) {
	fmt.Fprintln(p.w, msg)
}

func (p *ConsolePrinter) table() *tabwriter.Writer {
	return tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
}
