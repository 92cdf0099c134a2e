package memo

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric instrument names recorded by Shared.
const (
	MetricHits       = "memo.hits"
	MetricMisses     = "memo.misses"
	MetricLoads      = "memo.loads"
	MetricLoadErrors = "memo.load_errors"
)

// recorder holds the OpenTelemetry counters for one Shared table.
type recorder struct {
	hits       metric.Int64Counter
	misses     metric.Int64Counter
	loads      metric.Int64Counter
	loadErrors metric.Int64Counter
	attrs      metric.MeasurementOption
}

// newRecorder creates the four counters on mp's meter.
func newRecorder(mp metric.MeterProvider, table string) (*recorder, error) {
	meter := mp.Meter(defaultMeterName)

	hits, err := meter.Int64Counter(
		MetricHits,
		metric.WithDescription("Lookups answered from the memo table"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}
	misses, err := meter.Int64Counter(
		MetricMisses,
		metric.WithDescription("Lookups that found no stored result"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}
	loads, err := meter.Int64Counter(
		MetricLoads,
		metric.WithDescription("Invocations of the load function"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}
	loadErrors, err := meter.Int64Counter(
		MetricLoadErrors,
		metric.WithDescription("Load function invocations that failed"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	return &recorder{
		hits:       hits,
		misses:     misses,
		loads:      loads,
		loadErrors: loadErrors,
		attrs:      metric.WithAttributes(attribute.String("memo.table", table)),
	}, nil
}

func (r *recorder) hit(ctx context.Context)       { r.hits.Add(ctx, 1, r.attrs) }
func (r *recorder) miss(ctx context.Context)      { r.misses.Add(ctx, 1, r.attrs) }
func (r *recorder) load(ctx context.Context)      { r.loads.Add(ctx, 1, r.attrs) }
func (r *recorder) loadError(ctx context.Context) { r.loadErrors.Add(ctx, 1, r.attrs) }
