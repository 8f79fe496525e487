// Command sales-analysis runs descriptive statistics, a holiday comparison,
// a moving-average forecast and a safety-stock estimate over one weekly
// retail sales file.
//
// Usage:
//
//	sales-analysis --file Walmart_Sales.csv --summary --holiday-impact
//	sales-analysis --file Walmart_Sales.csv --forecast --safety-stock --store 20 --weeks 8 --lead 1.5
//
// Reports are written under --out (default "outputs"); results are also
// printed on stdout. Logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"salescli/internal/app"
	"salescli/internal/config"
	"salescli/internal/infrastructure"
	"salescli/pkg/contracts"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := app.ParseArgs(config.AppName, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}
	if opts.ShowVersion {
		fmt.Fprintln(stdout, contracts.GetFullVersionString())
		return exitOK
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return exitError
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return exitError
	}
	defer infrastructure.CloseLogFile()

	opts.ApplyConfig(cfg)
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid options: %v\n", err)
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = infrastructure.EnsureTraceID(ctx)

	logger.InfoContext(ctx, "Starting sales analysis",
		slog.String("version", config.AppVersion),
		slog.String("file", opts.File),
		slog.Bool("summary", opts.Summary),
		slog.Bool("holiday_impact", opts.HolidayImpact),
		slog.Bool("forecast", opts.Forecast),
		slog.Bool("safety_stock", opts.SafetyStock),
		slog.Int("store", opts.Store))

	application, err := app.NewApplication(cfg, opts, logger, stdout)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to initialize application", slog.String("error", err.Error()))
		return exitError
	}

	result, runErr := application.Run(ctx)
	stopErr := application.Stop(context.WithoutCancel(ctx))

	if runErr != nil {
		logger.ErrorContext(ctx, "Run aborted", slog.String("error", runErr.Error()))
		fmt.Fprintf(stderr, "error: %v\n", runErr)
		return exitError
	}
	if result.Failed() || stopErr != nil {
		return exitError
	}
	return exitOK
}
