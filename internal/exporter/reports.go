package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"salescli/internal/config"
	"salescli/internal/errors"
	"salescli/internal/infrastructure"
	"salescli/pkg/contracts/domain"
)

// Report headers. The holiday report's first column is named after the
// holiday column of the input.
var (
	StoreSummaryHeaders = []string{"Store", "total_sales", "avg_weekly", "std_weekly", "weeks"}
	HolidayStatHeaders  = []string{"mean", "count", "std"}
	SafetyStockHeaders  = []string{"store", "mean_weekly_demand", "std_weekly_demand", "safety_stock", "reorder_point", "lead_time_weeks", "service_factor"}
)

// ReportWriter writes analysis results to their fixed files in the output directory
type ReportWriter struct {
	csv       *CSVWriter
	paths     *config.Paths
	bomPrefix bool
	logger    *slog.Logger
}

// NewReportWriter creates a report writer for paths.OutputDir
func NewReportWriter(paths *config.Paths, bomPrefix bool, logger *slog.Logger) *ReportWriter {
	logger = infrastructure.WithComponent(logger, "exporter")
	return &ReportWriter{
		csv:       NewCSVWriter(paths, logger),
		paths:     paths,
		bomPrefix: bomPrefix,
		logger:    logger,
	}
}

// WriteStoreSummary writes store_summary.csv and returns its path
func (w *ReportWriter) WriteStoreSummary(ctx context.Context, summaries []domain.StoreSummary) (string, error) {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, []string{
			s.Store,
			formatFloat(s.TotalSales),
			formatFloat(s.AvgWeekly),
			formatNullFloat(s.StdWeekly),
			formatInt(s.Weeks),
		})
	}
	return w.write(ctx, w.paths.SummaryCSV(), StoreSummaryHeaders, records)
}

// WriteHolidayImpact writes holiday_impact.csv and returns its path
func (w *ReportWriter) WriteHolidayImpact(ctx context.Context, rows []domain.HolidayComparison) (string, error) {
	column := "holiday"
	if len(rows) > 0 {
		column = rows[0].Column
	}
	headers := append([]string{column}, HolidayStatHeaders...)

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			formatBool(r.Flag),
			formatFloat(r.Mean),
			formatInt(r.Count),
			formatNullFloat(r.Std),
		})
	}
	return w.write(ctx, w.paths.HolidayCSV(), headers, records)
}

// WriteInventoryEstimate writes store_<id>_safety_stock.csv and returns its path
func (w *ReportWriter) WriteInventoryEstimate(ctx context.Context, e domain.InventoryEstimate) (string, error) {
	records := [][]string{{
		e.Store,
		formatFloat(e.MeanWeeklyDemand),
		formatNullFloat(e.StdWeeklyDemand),
		formatNullFloat(e.SafetyStock),
		formatNullFloat(e.ReorderPoint),
		formatFloat(e.LeadTimeWeeks),
		formatFloat(e.ServiceFactor),
	}}
	return w.write(ctx, w.paths.SafetyStockCSV(e.Store), SafetyStockHeaders, records)
}

func (w *ReportWriter) write(ctx context.Context, path string, headers []string, records [][]string) (string, error) {
	err := w.csv.WriteCSV(path, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: w.bomPrefix,
	})
	if err != nil {
		return path, err
	}

	w.logger.InfoContext(ctx, "Report written",
		slog.String("path", path),
		slog.Int("rows", len(records)))
	return path, nil
}

// ReadStoreSummaries reads a store summary report
func ReadStoreSummaries(path string) ([]domain.StoreSummary, error) {
	records, err := readReport(path, StoreSummaryHeaders)
	if err != nil {
		return nil, err
	}

	out := make([]domain.StoreSummary, 0, len(records))
	for i, r := range records {
		var (
			s    = domain.StoreSummary{Store: r[0]}
			errs [4]error
		)
		s.TotalSales, errs[0] = parseFloat(r[1])
		s.AvgWeekly, errs[1] = parseFloat(r[2])
		s.StdWeekly, errs[2] = parseNullFloat(r[3])
		s.Weeks, errs[3] = parseInt(r[4])
		if err := firstError(errs[:]); err != nil {
			return nil, rowError(path, i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// ReadHolidayComparisons reads a holiday impact report
func ReadHolidayComparisons(path string) ([]domain.HolidayComparison, error) {
	header, records, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}
	if len(header) != len(HolidayStatHeaders)+1 {
		return nil, headerError(path, header)
	}

	out := make([]domain.HolidayComparison, 0, len(records))
	for i, r := range records {
		if len(r) != len(header) {
			return nil, rowError(path, i, fmt.Errorf("expected %d fields, got %d", len(header), len(r)))
		}
		var (
			c    = domain.HolidayComparison{Column: header[0]}
			errs [4]error
		)
		c.Flag, errs[0] = parseBool(r[0])
		c.Mean, errs[1] = parseFloat(r[1])
		c.Count, errs[2] = parseInt(r[2])
		c.Std, errs[3] = parseNullFloat(r[3])
		if err := firstError(errs[:]); err != nil {
			return nil, rowError(path, i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// ReadInventoryEstimate reads a single-store safety-stock report
func ReadInventoryEstimate(path string) (domain.InventoryEstimate, error) {
	records, err := readReport(path, SafetyStockHeaders)
	if err != nil {
		return domain.InventoryEstimate{}, err
	}
	if len(records) != 1 {
		return domain.InventoryEstimate{}, errors.NewParsingError(
			fmt.Sprintf("expected one estimate, found %d", len(records)), nil).WithContext("path", path)
	}

	r := records[0]
	var (
		e    = domain.InventoryEstimate{Store: r[0]}
		errs [6]error
	)
	e.MeanWeeklyDemand, errs[0] = parseFloat(r[1])
	e.StdWeeklyDemand, errs[1] = parseNullFloat(r[2])
	e.SafetyStock, errs[2] = parseNullFloat(r[3])
	e.ReorderPoint, errs[3] = parseNullFloat(r[4])
	e.LeadTimeWeeks, errs[4] = parseFloat(r[5])
	e.ServiceFactor, errs[5] = parseFloat(r[6])
	if err := firstError(errs[:]); err != nil {
		return domain.InventoryEstimate{}, rowError(path, 0, err)
	}
	return e, nil
}

// readReport reads a CSV report and checks its header and row widths
func readReport(path string, want []string) ([][]string, error) {
	header, records, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}
	if len(header) != len(want) {
		return nil, headerError(path, header)
	}
	for i, h := range want {
		if header[i] != h {
			return nil, headerError(path, header)
		}
	}
	for i, r := range records {
		if len(r) != len(want) {
			return nil, rowError(path, i, fmt.Errorf("expected %d fields, got %d", len(want), len(r)))
		}
	}
	return records, nil
}

func headerError(path string, header []string) error {
	return errors.NewParsingError("unexpected report header", nil).
		WithContext("path", path).WithContext("header", header)
}

func rowError(path string, row int, cause error) error {
	return errors.NewParsingError(fmt.Sprintf("invalid report row %d", row+1), cause).
		WithContext("path", path)
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
