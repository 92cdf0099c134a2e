package main

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// newMeterProvider returns a provider that prints to w on shutdown, plus the
// shutdown func. Disabled metrics yield a noop provider.
func newMeterProvider(enabled bool, w io.Writer) (metric.MeterProvider, func(context.Context) error, error) {
	if !enabled {
		return noop.NewMeterProvider(), func(context.Context) error { return nil }, nil
	}
	exp, err := stdoutmetric.New(stdoutmetric.WithWriter(w), stdoutmetric.WithPrettyPrint())
	if err != nil {
		return nil, nil, fmt.Errorf("stdout metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)))
	return mp, mp.Shutdown, nil
}
