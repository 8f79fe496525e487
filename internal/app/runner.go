package app

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"salescli/internal/analytics"
	"salescli/internal/dataprocessing"
	"salescli/internal/errors"
	"salescli/internal/infrastructure"
	"salescli/pkg/contracts/domain"
)

// Analysis names, in execution order
const (
	AnalysisSummary       = "summary"
	AnalysisHolidayImpact = "holiday_impact"
	AnalysisForecast      = "forecast"
	AnalysisSafetyStock   = "safety_stock"
)

// Analysis outcomes
const (
	StatusOK       = "ok"
	StatusSkipped  = "skipped"
	StatusNotFound = "not_found"
	StatusFailed   = "failed"
)

// AnalysisResult is the outcome of one requested analysis
type AnalysisResult struct {
	Name   string
	Status string
	// Output is the report written, if any
	Output string
	Err    error
}

// RunResult summarizes a completed run
type RunResult struct {
	Rows     int
	Analyses []AnalysisResult
}

// Failed reports whether any analysis failed. Skipped analyses and unknown
// stores are not failures.
func (r RunResult) Failed() bool {
	for _, a := range r.Analyses {
		if a.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Run loads the input once, creates the output directory and runs the
// requested analyses in order: summary, holiday impact, forecast, safety stock. It returns an error only
// when nothing can be analysed (the input cannot be loaded or the output
// directory cannot be created); per-analysis problems are in the result.
func (a *Application) Run(ctx context.Context) (RunResult, error) {
	ctx, span := a.Telemetry.StartSpan(ctx, "sales.run",
		attribute.String("file", a.Options.File))
	defer span.End()

	var result RunResult

	table, err := a.load(ctx)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return result, err
	}
	result.Rows = table.Len()

	if err := a.Paths.EnsureDirectories(); err != nil {
		storageErr := errors.NewStorageError("failed to create output directory", err).
			WithContext("path", a.Paths.OutputDir)
		infrastructure.RecordError(ctx, storageErr)
		return result, storageErr
	}

	steps := []struct {
		name    string
		enabled bool
		run     func(context.Context, *domain.SalesTable) (string, error)
	}{
		{AnalysisSummary, a.Options.Summary, a.runSummary},
		{AnalysisHolidayImpact, a.Options.HolidayImpact, a.runHolidayImpact},
		{AnalysisForecast, a.Options.Forecast, a.runForecast},
		{AnalysisSafetyStock, a.Options.SafetyStock, a.runSafetyStock},
	}

	for _, step := range steps {
		if !step.enabled {
			continue
		}
		result.Analyses = append(result.Analyses, a.runAnalysis(ctx, step.name, table, step.run))
	}

	a.Logger.InfoContext(ctx, "Run completed",
		slog.Int("rows", result.Rows),
		slog.Int("analyses", len(result.Analyses)),
		slog.Bool("failed", result.Failed()))

	return result, nil
}

func (a *Application) load(ctx context.Context) (*domain.SalesTable, error) {
	ctx, span := a.Telemetry.StartSpan(ctx, "sales.load")
	defer span.End()

	if err := a.Files.ValidateSalesFile(a.Options.File); err != nil {
		return nil, err
	}

	table, err := a.Loader.Load(ctx, a.Options.File)
	if err != nil {
		infrastructure.RecordError(ctx, err)
		return nil, err
	}

	a.Telemetry.RecordRowsLoaded(ctx, table.Len())
	span.SetAttributes(attribute.Int("rows", table.Len()))
	return table, nil
}

// runAnalysis runs one analysis inside its own span and classifies the error
func (a *Application) runAnalysis(ctx context.Context, name string, table *domain.SalesTable,
	run func(context.Context, *domain.SalesTable) (string, error)) AnalysisResult {
	ctx, span := a.Telemetry.StartSpan(ctx, "sales."+name)
	defer span.End()

	start := time.Now()
	output, err := run(ctx, table)
	res := AnalysisResult{Name: name, Status: StatusOK, Output: output, Err: err}

	var appErr *errors.AppError
	switch {
	case err == nil:
	case errors.IsStoreNotFound(err) && stderrors.As(err, &appErr):
		res.Status = StatusNotFound
		a.Console.PrintMessage(appErr.Message)
		a.Logger.WarnContext(ctx, "Analysis skipped",
			slog.String("analysis", name),
			slog.String("reason", appErr.Message))
	case errors.IsType(err, errors.ErrTypeNotFound):
		res.Status = StatusSkipped
		a.Logger.WarnContext(ctx, "Analysis skipped",
			slog.String("analysis", name),
			slog.String("reason", err.Error()))
	default:
		res.Status = StatusFailed
		infrastructure.RecordError(ctx, err)
		a.Logger.ErrorContext(ctx, "Analysis failed",
			slog.String("analysis", name),
			slog.String("error", err.Error()))
	}

	span.SetAttributes(attribute.String("status", res.Status))
	a.Telemetry.RecordAnalysis(ctx, name, res.Status, time.Since(start))
	return res
}

func (a *Application) runSummary(ctx context.Context, table *domain.SalesTable) (string, error) {
	summaries := analytics.SummaryByStore(table)
	a.Console.PrintStoreSummary(summaries, a.Options.Top)
	return a.Reports.WriteStoreSummary(ctx, summaries)
}

func (a *Application) runHolidayImpact(ctx context.Context, table *domain.SalesTable) (string, error) {
	column, ok := dataprocessing.FindHolidayColumn(table)
	if !ok {
		a.Console.PrintHolidayColumnMissing(table.Columns)
		return "", errors.NewColumnNotFoundError("holiday", table.Columns)
	}

	rows, err := analytics.HolidayImpact(table, column, a.Config.Analysis.HolidayTruthy)
	if err != nil {
		return "", err
	}
	a.Console.PrintHolidayImpact(rows)
	return a.Reports.WriteHolidayImpact(ctx, rows)
}

func (a *Application) runForecast(ctx context.Context, table *domain.SalesTable) (string, error) {
	forecast, err := analytics.MovingAverageForecast(table, a.Options.StoreID(), a.Options.Weeks)
	if err != nil {
		return "", err
	}
	a.Console.PrintForecast(forecast)
	if !forecast.FullWindow {
		a.Logger.InfoContext(ctx, "Fewer weekly buckets than the window, using the mean of all weeks",
			slog.String("store", forecast.Store),
			slog.Int("buckets", forecast.Buckets),
			slog.Int("window", forecast.Window))
	}
	return "", nil
}

func (a *Application) runSafetyStock(ctx context.Context, table *domain.SalesTable) (string, error) {
	estimate, err := analytics.SafetyStock(table, a.Options.StoreID(), a.Options.Lead, a.Options.ServiceFactor)
	if err != nil {
		return "", err
	}
	a.Console.PrintInventoryEstimate(estimate)
	if !estimate.StdWeeklyDemand.Valid {
		a.Logger.WarnContext(ctx, "Fewer than two distinct dates, safety stock is undefined",
			slog.String("store", estimate.Store))
	}
	return a.Reports.WriteInventoryEstimate(ctx, estimate)
}
