// Package telemetry wires OpenTelemetry tracing and metrics for the
// orchestrator. Metrics are exposed through the Prometheus registry scraped
// at /metrics; traces go to an OTLP collector when one is configured.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	metricSDK "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	traceSDK "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

// Config holds telemetry configuration for the service.
type Config struct {
	ServiceName    string
	ServiceVersion string
	OTLPEndpoint   string // empty disables the OTLP exporters
}

// Telemetry carries the tracer and meter for one service instance.
type Telemetry struct {
	tracer trace.Tracer
	meter  metric.Meter
	config Config

	mu         sync.Mutex
	counters   map[string]metric.Int64Counter
	histograms map[string]metric.Float64Histogram
}

// Init initializes OpenTelemetry providers and returns a telemetry instance
// plus a shutdown function.
func Init(ctx context.Context, config Config) (*Telemetry, func(), error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	traceShutdown, err := setupTracing(ctx, res, config.OTLPEndpoint)
	if err != nil {
		return nil, nil, err
	}

	metricShutdown, err := setupMetrics(ctx, res, config.OTLPEndpoint)
	if err != nil {
		traceShutdown()
		return nil, nil, err
	}

	otel.SetTextMapPropagator(propagation.TraceContext{})

	tel := &Telemetry{
		config:     config,
		tracer:     otel.Tracer(config.ServiceName),
		meter:      otel.Meter(config.ServiceName),
		counters:   make(map[string]metric.Int64Counter),
		histograms: make(map[string]metric.Float64Histogram),
	}

	shutdown := func() {
		traceShutdown()
		metricShutdown()
	}

	return tel, shutdown, nil
}

func setupTracing(ctx context.Context, res *resource.Resource, otlpEndpoint string) (func(), error) {
	opts := []traceSDK.TracerProviderOption{traceSDK.WithResource(res)}

	if otlpEndpoint != "" {
		exporter, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(otlpEndpoint),
			otlptracehttp.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}
		opts = append(opts, traceSDK.WithBatcher(exporter))
	}

	provider := traceSDK.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(ctx)
	}, nil
}

func setupMetrics(ctx context.Context, res *resource.Resource, otlpEndpoint string) (func(), error) {
	promExporter, err := prometheus.New()
	if err != nil {
		return nil, err
	}

	opts := []metricSDK.Option{
		metricSDK.WithResource(res),
		metricSDK.WithReader(promExporter),
	}

	if otlpEndpoint != "" {
		otlpExporter, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(otlpEndpoint),
			otlpmetrichttp.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}
		opts = append(opts, metricSDK.WithReader(
			metricSDK.NewPeriodicReader(otlpExporter, metricSDK.WithInterval(30*time.Second)),
		))
	}

	provider := metricSDK.NewMeterProvider(opts...)
	otel.SetMeterProvider(provider)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(ctx)
	}, nil
}

// StartSpan starts a span on this service's tracer.
func (t *Telemetry) StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// RecordCounter adds to a named counter, creating it on first use.
func (t *Telemetry) RecordCounter(ctx context.Context, name, description string, value int64, attrs ...attribute.KeyValue) {
	t.mu.Lock()
	counter, ok := t.counters[name]
	if !ok {
		var err error
		counter, err = t.meter.Int64Counter(name, metric.WithDescription(description))
		if err != nil {
			t.mu.Unlock()
			return
		}
		t.counters[name] = counter
	}
	t.mu.Unlock()

	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

// RecordHistogram records a value on a named histogram, creating it on first use.
func (t *Telemetry) RecordHistogram(ctx context.Context, name, description string, value float64, attrs ...attribute.KeyValue) {
	t.mu.Lock()
	histogram, ok := t.histograms[name]
	if !ok {
		var err error
		histogram, err = t.meter.Float64Histogram(name, metric.WithDescription(description))
		if err != nil {
			t.mu.Unlock()
			return
		}
		t.histograms[name] = histogram
	}
	t.mu.Unlock()

	histogram.Record(ctx, value, metric.WithAttributes(attrs...))
}
