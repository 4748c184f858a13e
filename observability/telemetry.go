// Package observability provides OpenTelemetry integration for the
// execution pipeline.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry records spans and metrics around command executions.
type Telemetry interface {
	// StartSpan starts a trace span. The returned function ends it.
	StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, func())

	// RecordExecution records one completed execution.
	RecordExecution(succeeded bool, seconds float64, labels map[string]string)
}

// SpanOption configures span creation.
type SpanOption func(*spanConfig)

type spanConfig struct {
	attributes []attribute.KeyValue
}

// WithAttribute adds an attribute to the span.
func WithAttribute(key string, value any) SpanOption {
	return func(c *spanConfig) {
		switch v := value.(type) {
		case string:
			c.attributes = append(c.attributes, attribute.String(key, v))
		case int:
			c.attributes = append(c.attributes, attribute.Int(key, v))
		case bool:
			c.attributes = append(c.attributes, attribute.Bool(key, v))
		}
	}
}

// Config configures telemetry.
type Config struct {
	// ServiceName is the tracer/meter name.
	ServiceName string

	// MetricsPrefix is the prefix for all metric names.
	MetricsPrefix string

	// EnableTracing enables span creation.
	EnableTracing bool

	// EnableMetrics enables metric recording.
	EnableMetrics bool
}

// DefaultConfig returns the default telemetry configuration.
func DefaultConfig() Config {
	return Config{
		ServiceName:   "kicker",
		MetricsPrefix: "kicker_",
		EnableTracing: true,
		EnableMetrics: true,
	}
}

// telemetry implements Telemetry over the global OTEL providers.
type telemetry struct {
	config Config
	tracer trace.Tracer

	executionsTotal   metric.Int64Counter
	failuresTotal     metric.Int64Counter
	executionDuration metric.Float64Histogram
}

// New creates a Telemetry instance.
func New(config Config) (Telemetry, error) {
	t := &telemetry{
		config: config,
		tracer: otel.Tracer(config.ServiceName),
	}

	meter := otel.Meter(config.ServiceName)

	var err error
	t.executionsTotal, err = meter.Int64Counter(
		config.MetricsPrefix+"executions_total",
		metric.WithDescription("Total number of command executions"),
	)
	if err != nil {
		return nil, err
	}

	t.failuresTotal, err = meter.Int64Counter(
		config.MetricsPrefix+"failures_total",
		metric.WithDescription("Total number of failed command executions"),
	)
	if err != nil {
		return nil, err
	}

	t.executionDuration, err = meter.Float64Histogram(
		config.MetricsPrefix+"execution_duration_seconds",
		metric.WithDescription("Duration of command executions"),
	)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// StartSpan implements Telemetry.StartSpan.
func (t *telemetry) StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, func()) {
	if !t.config.EnableTracing {
		return ctx, func() {}
	}

	cfg := &spanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(cfg.attributes...))
	return ctx, func() { span.End() }
}

// RecordExecution implements Telemetry.RecordExecution.
func (t *telemetry) RecordExecution(succeeded bool, seconds float64, labels map[string]string) {
	if !t.config.EnableMetrics {
		return
	}

	attrs := metric.WithAttributes(labelsToAttributes(labels)...)
	t.executionsTotal.Add(context.Background(), 1, attrs)
	if !succeeded {
		t.failuresTotal.Add(context.Background(), 1, attrs)
	}
	t.executionDuration.Record(context.Background(), seconds, attrs)
}

// labelsToAttributes converts labels to OTEL attributes.
func labelsToAttributes(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for k, v := range labels {
		attrs = append(attrs, attribute.String(k, v))
	}
	return attrs
}

// NoopTelemetry returns a no-op telemetry implementation.
func NoopTelemetry() Telemetry {
	return &noopTelemetry{}
}

type noopTelemetry struct{}

func (t *noopTelemetry) StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, func()) {
	return ctx, func() {}
}

func (t *noopTelemetry) RecordExecution(succeeded bool, seconds float64, labels map[string]string) {
}
