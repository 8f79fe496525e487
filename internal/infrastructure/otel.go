package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"salescli/internal/config"
)

const (
	// InstrumentationName names the tracer and meter of this tool
	InstrumentationName = "salescli"
)

// Telemetry holds the tracing and metrics providers of one run
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	Metrics        *RunMetrics

	registry    *prometheus.Registry
	metricsFile string
	traceFile   *os.File
	logger      *slog.Logger
}

// RunMetrics are the batch-job metrics of one invocation
type RunMetrics struct {
	RowsLoaded       metric.Int64Counter
	AnalysesTotal    metric.Int64Counter
	AnalysisDuration metric.Float64Histogram
}

// InitializeTelemetry sets up tracing and metrics. Spans go to traceOut
// (for the "stdout" exporter) or to cfg.TraceFile; metrics are collected in
// a private Prometheus registry and written as a textfile on Shutdown when
// cfg.MetricsFile is set.
func InitializeTelemetry(cfg config.TelemetryConfig, logger *slog.Logger, traceOut io.Writer) (*Telemetry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(config.AppName),
		semconv.ServiceVersion(config.AppVersion),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	t := &Telemetry{
		metricsFile: cfg.MetricsFile,
		logger:      logger,
	}

	if err := t.initializeTracing(cfg, res, traceOut); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if err := t.initializeMetrics(res); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	logger.Debug("Telemetry initialized",
		slog.String("trace_exporter", cfg.TraceExporter),
		slog.String("metrics_file", cfg.MetricsFile))

	return t, nil
}

// initializeTracing sets up the span exporter selected by configuration
func (t *Telemetry) initializeTracing(cfg config.TelemetryConfig, res *resource.Resource, traceOut io.Writer) error {
	var w io.Writer

	switch cfg.TraceExporter {
	case "", "none":
		t.Tracer = noop.NewTracerProvider().Tracer(InstrumentationName)
		return nil
	case "stdout":
		w = traceOut
		if w == nil {
			w = os.Stderr
		}
	case "file":
		if err := os.MkdirAll(filepath.Dir(cfg.TraceFile), 0755); err != nil {
			return fmt.Errorf("failed to create trace directory: %w", err)
		}
		f, err := os.Create(cfg.TraceFile)
		if err != nil {
			return fmt.Errorf("failed to create trace file: %w", err)
		}
		t.traceFile = f
		w = f
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	t.TracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	t.Tracer = t.TracerProvider.Tracer(InstrumentationName, trace.WithInstrumentationVersion(config.AppVersion))
	return nil
}

// initializeMetrics wires the OpenTelemetry meter to a private Prometheus registry
func (t *Telemetry) initializeMetrics(res *resource.Resource) error {
	t.registry = prometheus.NewRegistry()

	exporter, err := otelprom.New(otelprom.WithRegisterer(t.registry))
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	t.MeterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	t.Meter = t.MeterProvider.Meter(InstrumentationName, metric.WithInstrumentationVersion(config.AppVersion))

	t.Metrics, err = CreateRunMetrics(t.Meter)
	return err
}

// CreateRunMetrics creates the application-specific instruments
func CreateRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	rowsLoaded, err := meter.Int64Counter(
		"sales_rows_loaded",
		metric.WithDescription("Number of sales records loaded from the input file"),
	)
	if err != nil {
		return nil, err
	}

	analysesTotal, err := meter.Int64Counter(
		"sales_analyses",
		metric.WithDescription("Number of analyses run, by analysis and outcome"),
	)
	if err != nil {
		return nil, err
	}

	analysisDuration, err := meter.Float64Histogram(
		"sales_analysis_duration",
		metric.WithDescription("Analysis duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &RunMetrics{
		RowsLoaded:       rowsLoaded,
		AnalysesTotal:    analysesTotal,
		AnalysisDuration: analysisDuration,
	}, nil
}

// Registry exposes the Prometheus registry backing the meter
func (t *Telemetry) Registry() *prometheus.Registry {
	return t.registry
}

// RecordRowsLoaded counts the records of the loaded table
func (t *Telemetry) RecordRowsLoaded(ctx context.Context, n int) {
	if t == nil || t.Metrics == nil {
		return
	}
	t.Metrics.RowsLoaded.Add(ctx, int64(n))
}

// RecordAnalysis counts one analysis run and its duration
func (t *Telemetry) RecordAnalysis(ctx context.Context, analysis, status string, duration time.Duration) {
	if t == nil || t.Metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("analysis", analysis),
		attribute.String("status", status),
	)
	t.Metrics.AnalysesTotal.Add(ctx, 1, attrs)
	t.Metrics.AnalysisDuration.Record(ctx, duration.Seconds(), attrs)
}

// StartSpan starts a span on the run tracer
func (t *Telemetry) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := trace.Tracer(noop.NewTracerProvider().Tracer(InstrumentationName))
	if t != nil && t.Tracer != nil {
		tracer = t.Tracer
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// Shutdown flushes spans, writes the metrics textfile and releases files
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	if t.TracerProvider != nil {
		if err := t.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}

	if t.metricsFile != "" && t.registry != nil {
		if err := WriteMetricsFile(t.registry, t.metricsFile); err != nil {
			errs = append(errs, err)
		} else {
			t.logger.InfoContext(ctx, "Metrics written", slog.String("path", t.metricsFile))
		}
	}

	if t.MeterProvider != nil {
		if err := t.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}

	if t.traceFile != nil {
		if err := t.traceFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close trace file: %w", err))
		}
		t.traceFile = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("telemetry shutdown errors: %v", errs)
	}
	return nil
}

// WriteMetricsFile writes the registry in the Prometheus text format, for
// pickup by a node_exporter textfile collector.
func WriteMetricsFile(g prometheus.Gatherer, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics file: %w", err)
	}
	return nil
}

// RecordError records an error on the current span
func RecordError(ctx context.Context, err error) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// TraceIDFromContext extracts the span trace ID for logging correlation
func TraceIDFromContext(ctx context.Context) string {
	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		return spanCtx.TraceID().String()
	}
	return ""
}
