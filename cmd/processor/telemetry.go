package main

import (
	"context"
	stderrors "errors"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/robokoder/processor/config"
	"github.com/robokoder/processor/observability"
)

// telemetry runs the OTLP providers the config enables. metrics stays nil
// when metrics are off.
type telemetry struct {
	cfg     *config.Config
	tp      *sdktrace.TracerProvider
	mp      *sdkmetric.MeterProvider
	metrics *observability.Metrics
}

func (t *telemetry) Name() string { return "telemetry" }

func (t *telemetry) Start(ctx context.Context) error {
	if t.cfg.Tracing.Enabled {
		tp, err := observability.InitTracer(ctx, t.cfg.Tracing)
		if err != nil {
			return err
		}
		t.tp = tp
	}
	if t.cfg.Metrics.Enabled {
		mp, err := observability.InitMeter(ctx, t.cfg.Metrics)
		if err != nil {
			return err
		}
		t.mp = mp
		if t.metrics, err = observability.NewMetrics(observability.Meter(serviceName)); err != nil {
			return err
		}
	}
	return nil
}

// Stop flushes and shuts down whichever providers were started.
func (t *telemetry) Stop(ctx context.Context) error {
	var errs []error
	if t.tp != nil {
		errs = append(errs, t.tp.Shutdown(ctx))
	}
	if t.mp != nil {
		errs = append(errs, t.mp.Shutdown(ctx))
	}
	return stderrors.Join(errs...)
}
