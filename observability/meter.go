package observability

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/extkit/errors"
	"github.com/kbukum/extkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (development, staging, production).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Get("telemetry").Debug("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricElements        = "extkit.pipeline.elements"
	MetricErrors          = "extkit.pipeline.errors"
	MetricLengthMismatch  = "extkit.zip.length_mismatches"
	MetricCommandDuration = "extkit.command.duration"
)

// PipelineMetrics holds the instruments recorded by Observe and Command.
type PipelineMetrics struct {
	elements        metric.Int64Counter
	errors          metric.Int64Counter
	mismatches      metric.Int64Counter
	commandDuration metric.Float64Histogram
}

// NewPipelineMetrics creates metric instruments on the given meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	elements, err := meter.Int64Counter(MetricElements,
		metric.WithDescription("Elements produced by an observed pipeline stage"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricElements, err)
	}

	errorTotal, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Sessions of an observed stage that ended with an error"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrors, err)
	}

	mismatches, err := meter.Int64Counter(MetricLengthMismatch,
		metric.WithDescription("Even zips that failed because input lengths differed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricLengthMismatch, err)
	}

	commandDuration, err := meter.Float64Histogram(MetricCommandDuration,
		metric.WithDescription("Duration of CLI commands in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricCommandDuration, err)
	}

	return &PipelineMetrics{
		elements:        elements,
		errors:          errorTotal,
		mismatches:      mismatches,
		commandDuration: commandDuration,
	}, nil
}

// RecordElement counts one element produced by stage.
func (m *PipelineMetrics) RecordElement(ctx context.Context, stage string) {
	m.elements.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrStage, stage)))
}

// RecordError counts a failed session of stage, tagged with the error
// code. A length mismatch also increments the mismatch counter.
func (m *PipelineMetrics) RecordError(ctx context.Context, stage string, err error) {
	code := "UNKNOWN"
	if appErr, ok := errors.AsAppError(err); ok {
		code = string(appErr.Code)
	} else if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		code = "CANCELED"
	}
	m.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrStage, stage),
		attribute.String(AttrErrorCode, code),
	))
	if stderrors.Is(err, errors.ErrLengthMismatch) {
		m.mismatches.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrStage, stage)))
	}
}

// RecordCommand records a finished CLI command.
func (m *PipelineMetrics) RecordCommand(ctx context.Context, command, status string, duration time.Duration) {
	m.commandDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrCommand, command),
		attribute.String(AttrStatus, status),
	))
}
