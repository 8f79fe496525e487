package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"salescli/internal/config"
	"salescli/internal/dataprocessing"
	"salescli/internal/exporter"
	"salescli/internal/infrastructure"
	"salescli/internal/validation"
)

// Application wires the components of one analysis run
type Application struct {
	Config    *config.Config
	Options   Options
	Paths     *config.Paths
	Logger    *slog.Logger
	Telemetry *infrastructure.Telemetry
	Files     *validation.FileValidator
	Loader    *dataprocessing.Loader
	Reports   *exporter.ReportWriter
	Console   *exporter.ConsolePrinter
}

// NewApplication creates the application. Results are printed to stdout;
// spans of the "stdout" trace exporter go to stderr with the logs.
func NewApplication(cfg *config.Config, opts Options, logger *slog.Logger, stdout io.Writer) (*Application, error) {
	if logger == nil {
		logger = infrastructure.GetLogger()
	}

	paths, err := config.GetPaths(opts.OutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	telemetry, err := infrastructure.InitializeTelemetry(cfg.Telemetry, logger, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	return &Application{
		Config:    cfg,
		Options:   opts,
		Paths:     paths,
		Logger:    logger,
		Telemetry: telemetry,
		Files:     validation.NewFileValidator(logger),
		Loader:    dataprocessing.NewLoader(logger, cfg.Input),
		Reports:   exporter.NewReportWriter(paths, cfg.Output.BOMPrefix, logger),
		Console:   exporter.NewConsolePrinter(stdout),
	}, nil
}

// Stop flushes telemetry. It is safe to call once Run has returned.
func (a *Application) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.TelemetryShutdownTimeout)
	defer cancel()

	if err := a.Telemetry.Shutdown(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "Telemetry shutdown failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
