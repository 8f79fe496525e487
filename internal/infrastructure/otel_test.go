package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"salescli/internal/config"
	"salescli/internal/shared/testutil"
)

func TestInitializeTelemetry_None(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)

	tel, err := InitializeTelemetry(config.TelemetryConfig{TraceExporter: "none"}, logger, nil)
	require.NoError(t, err)
	require.NotNil(t, tel)

	assert.Nil(t, tel.TracerProvider)
	assert.NotNil(t, tel.Tracer)
	assert.NotNil(t, tel.MeterProvider)
	assert.NotNil(t, tel.Metrics)

	ctx, span := tel.StartSpan(context.Background(), "noop")
	span.End()
	assert.Empty(t, TraceIDFromContext(ctx))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, tel.Shutdown(ctx))
}

func TestInitializeTelemetry_StdoutSpans(t *testing.T) {
	var out bytes.Buffer
	tel, err := InitializeTelemetry(config.TelemetryConfig{TraceExporter: "stdout"}, nil, &out)
	require.NoError(t, err)

	ctx, span := tel.StartSpan(context.Background(), "load", attribute.String("file", "sales.csv"))
	assert.NotEmpty(t, TraceIDFromContext(ctx))
	RecordError(ctx, errors.New("boom"))
	span.End()

	require.NoError(t, tel.Shutdown(context.Background()))
	assert.Contains(t, out.String(), "\"load\"")
	assert.Contains(t, out.String(), "boom")
}

func TestInitializeTelemetry_TraceFile(t *testing.T) {
	traceFile := filepath.Join(t.TempDir(), "traces", "run.json")
	tel, err := InitializeTelemetry(config.TelemetryConfig{
		TraceExporter: "file",
		TraceFile:     traceFile,
	}, nil, nil)
	require.NoError(t, err)

	_, span := tel.StartSpan(context.Background(), "summary")
	span.End()
	require.NoError(t, tel.Shutdown(context.Background()))

	content, err := os.ReadFile(traceFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "\"summary\"")
}

func TestInitializeTelemetry_UnknownExporter(t *testing.T) {
	_, err := InitializeTelemetry(config.TelemetryConfig{TraceExporter: "jaeger"}, nil, nil)
	assert.Error(t, err)
}

func TestTelemetry_MetricsFile(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "metrics", "sales.prom")
	logger, logs := testutil.NewTestLogger(t)

	tel, err := InitializeTelemetry(config.TelemetryConfig{
		TraceExporter: "none",
		MetricsFile:   metricsFile,
	}, logger, nil)
	require.NoError(t, err)

	ctx := context.Background()
	tel.RecordRowsLoaded(ctx, 6)
	tel.RecordAnalysis(ctx, "summary", "ok", 150*time.Millisecond)
	tel.RecordAnalysis(ctx, "forecast", "not_found", time.Millisecond)

	families, err := tel.Registry().Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "sales_rows_loaded_total")

	require.NoError(t, tel.Shutdown(ctx))

	content, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "sales_rows_loaded_total")
	assert.Contains(t, text, "sales_analyses_total")
	assert.Contains(t, text, `analysis="summary"`)
	assert.Contains(t, text, `status="not_found"`)
	assert.True(t, strings.Contains(text, "sales_analysis_duration_seconds"))
	assert.True(t, logs.ContainsMessage("Metrics written"))
}

func TestTelemetry_NilSafe(t *testing.T) {
	var tel *Telemetry

	tel.RecordRowsLoaded(context.Background(), 1)
	tel.RecordAnalysis(context.Background(), "summary", "ok", time.Second)
	_, span := tel.StartSpan(context.Background(), "x")
	span.End()
}
