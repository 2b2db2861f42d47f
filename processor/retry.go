package processor

import (
	"context"

	"github.com/robokoder/processor/resilience"
)

// WithRetry retries a failed Process call of the wrapped processor. A
// response is never retried, whatever its status; only returned errors are.
func WithRetry(cfg resilience.RetryConfig) Middleware {
	return func(inner Processor) Processor {
		return &retryProcessor{inner: inner, cfg: cfg}
	}
}

type retryProcessor struct {
	inner Processor
	cfg   resilience.RetryConfig
}

func (r *retryProcessor) Supports(ctx context.Context, req *Request) bool {
	return r.inner.Supports(ctx, req)
}

func (r *retryProcessor) Process(ctx context.Context, req *Request) (*Response, error) {
	return resilience.Retry(ctx, r.cfg, func() (*Response, error) {
		return r.inner.Process(ctx, req)
	})
}
