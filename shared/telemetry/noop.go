package telemetry

import (
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Noop returns a telemetry instance that records nothing. Used in tests and
// when the process runs with telemetry disabled.
func Noop(serviceName string) *Telemetry {
	return &Telemetry{
		config:     Config{ServiceName: serviceName},
		tracer:     tracenoop.NewTracerProvider().Tracer(serviceName),
		meter:      metricnoop.NewMeterProvider().Meter(serviceName),
		counters:   make(map[string]metric.Int64Counter),
		histograms: make(map[string]metric.Float64Histogram),
	}
}
