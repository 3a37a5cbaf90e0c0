// Package observability wires OpenTelemetry metric instruments around the
// service layer. Instruments come from the global meter provider, so they
// are no-ops unless the host process installs an SDK.
package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "socialapp"

type Metrics struct {
	OpCount    metric.Int64Counter
	OpDuration metric.Float64Histogram
	OpErrors   metric.Int64Counter
}

func NewMetrics() *Metrics {
	meter := otel.Meter(meterName)

	opCount, _ := meter.Int64Counter(
		"socialapp.operations",
		metric.WithDescription("Number of service operations"),
		metric.WithUnit("{operation}"),
	)
	opDuration, _ := meter.Float64Histogram(
		"socialapp.operation.duration",
		metric.WithDescription("Service operation duration"),
		metric.WithUnit("ms"),
	)
	opErrors, _ := meter.Int64Counter(
		"socialapp.operation.errors",
		metric.WithDescription("Number of failed service operations"),
		metric.WithUnit("{error}"),
	)

	return &Metrics{
		OpCount:    opCount,
		OpDuration: opDuration,
		OpErrors:   opErrors,
	}
}

// Record registers one completed operation. Failed operations also bump the
// error counter.
func (m *Metrics) Record(ctx context.Context, op string, start time.Time, err error) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("operation", op))

	m.OpCount.Add(ctx, 1, attrs)
	m.OpDuration.Record(ctx, float64(time.Since(start).Microseconds())/1000.0, attrs)
	if err != nil {
		m.OpErrors.Add(ctx, 1, attrs)
	}
}
