package observability

import (
	"context"
	stderrors "errors"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config configures both exporters.
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	Endpoint       string
	Insecure       bool
	SampleRate     float64
	Interval       time.Duration
}

// Telemetry owns the providers created by Init.
type Telemetry struct {
	Metrics *PipelineMetrics
	tp      *sdktrace.TracerProvider
	mp      *sdkmetric.MeterProvider
}

// Init sets up tracing and metrics export. When cfg.Enabled is false the
// returned Telemetry records into a no-op meter and exports nothing.
func Init(ctx context.Context, cfg Config) (*Telemetry, error) {
	if !cfg.Enabled {
		metrics, err := NewPipelineMetrics(noop.NewMeterProvider().Meter(defaultTracerName))
		if err != nil {
			return nil, err
		}
		return &Telemetry{Metrics: metrics}, nil
	}

	tp, err := InitTracer(ctx, &TracerConfig{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Endpoint,
		Insecure:       cfg.Insecure,
		SampleRate:     cfg.SampleRate,
	})
	if err != nil {
		return nil, err
	}

	mp, err := InitMeter(ctx, &MeterConfig{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Endpoint,
		Insecure:       cfg.Insecure,
		Interval:       cfg.Interval,
	})
	if err != nil {
		return nil, stderrors.Join(err, tp.Shutdown(ctx))
	}

	metrics, err := NewPipelineMetrics(mp.Meter(defaultTracerName))
	if err != nil {
		return nil, stderrors.Join(err, tp.Shutdown(ctx), mp.Shutdown(ctx))
	}
	return &Telemetry{Metrics: metrics, tp: tp, mp: mp}, nil
}

// Shutdown flushes and stops the providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.tp != nil {
		errs = append(errs, t.tp.Shutdown(ctx))
	}
	if t.mp != nil {
		errs = append(errs, t.mp.Shutdown(ctx))
	}
	return stderrors.Join(errs...)
}
