package processor

import (
	"context"
	"time"

	"github.com/robokoder/processor/observability"
)

// WithMetrics records dispatch count, duration, errors and not-implemented
// answers under the given processor label.
func WithMetrics(metrics *observability.Metrics, label string) Middleware {
	return func(inner Processor) Processor {
		return &metricsProcessor{inner: inner, metrics: metrics, label: label}
	}
}

type metricsProcessor struct {
	inner   Processor
	metrics *observability.Metrics
	label   string
}

func (m *metricsProcessor) Supports(ctx context.Context, req *Request) bool {
	return m.inner.Supports(ctx, req)
}

func (m *metricsProcessor) Process(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	resp, err := m.inner.Process(ctx, req)
	duration := time.Since(start)

	switch {
	case err != nil:
		m.metrics.RecordError(ctx, m.label)
		m.metrics.RecordDispatch(ctx, m.label, "error", duration)
	case resp == nil:
		m.metrics.RecordDispatch(ctx, m.label, "empty", duration)
	default:
		if resp.Status() == StatusNotImplemented {
			m.metrics.RecordUnmatched(ctx, m.label)
		}
		m.metrics.RecordDispatch(ctx, m.label, resp.Status().String(), duration)
	}
	return resp, err
}
