package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/robokoder/processor/logger"
)

// InitMeter installs a global OTLP/HTTP meter provider. The caller must
// shut it down on exit.
func InitMeter(ctx context.Context, cfg MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName, cfg.ServiceVersion, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the dispatch instruments. A nil *Metrics records nothing.
type Metrics struct {
	dispatchTotal    metric.Int64Counter
	dispatchDuration metric.Float64Histogram
	unmatchedTotal   metric.Int64Counter
	errorTotal       metric.Int64Counter
}

// NewMetrics creates the dispatch instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	dispatchTotal, err := meter.Int64Counter("processor.dispatch.total",
		metric.WithDescription("Requests handled by a processor"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating processor.dispatch.total counter: %w", err)
	}

	dispatchDuration, err := meter.Float64Histogram("processor.dispatch.duration",
		metric.WithDescription("Time spent in a processor"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating processor.dispatch.duration histogram: %w", err)
	}

	unmatchedTotal, err := meter.Int64Counter("processor.unmatched.total",
		metric.WithDescription("Requests answered not implemented"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating processor.unmatched.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("processor.error.total",
		metric.WithDescription("Processor calls that returned an error"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating processor.error.total counter: %w", err)
	}

	return &Metrics{
		dispatchTotal:    dispatchTotal,
		dispatchDuration: dispatchDuration,
		unmatchedTotal:   unmatchedTotal,
		errorTotal:       errorTotal,
	}, nil
}

// RecordDispatch records one processor call and its resulting status.
func (m *Metrics) RecordDispatch(ctx context.Context, processor, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dispatchTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("processor", processor),
		attribute.String("status", status),
	))
	m.dispatchDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("processor", processor),
	))
}

// RecordUnmatched counts a request no processor supported.
func (m *Metrics) RecordUnmatched(ctx context.Context, processor string) {
	if m == nil {
		return
	}
	m.unmatchedTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("processor", processor)))
}

// RecordError counts a processor call that returned an error.
func (m *Metrics) RecordError(ctx context.Context, processor string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("processor", processor)))
}
