package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// otelMetrics exports lookup counts through an OpenTelemetry meter.
type otelMetrics struct {
	lookups metric.Int64Counter
}

var _ Metrics = (*otelMetrics)(nil)

// NewOTelMetrics creates a Metrics implementation recording on meter. One
// counter is published, template.cache.lookups, partitioned by a cache.hit
// attribute. The cache key itself is not attached to keep cardinality down.
func NewOTelMetrics(meter metric.Meter) (Metrics, error) {
	lookups, err := meter.Int64Counter(
		"template.cache.lookups",
		metric.WithDescription("Template cache lookups partitioned by hit/miss"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}
	return &otelMetrics{lookups: lookups}, nil
}

// RecordLookup increments the lookup counter with the hit outcome.
func (m *otelMetrics) RecordLookup(ctx context.Context, _ string, hit bool) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("cache.hit", hit),
	))
}
