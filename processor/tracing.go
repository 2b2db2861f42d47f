package processor

import (
	"context"

	"github.com/robokoder/processor/observability"
)

// WithTracing wraps every Process call in a span named "process <label>".
func WithTracing(label string) Middleware {
	return func(inner Processor) Processor {
		return &tracingProcessor{inner: inner, spanName: "process " + label}
	}
}

type tracingProcessor struct {
	inner    Processor
	spanName string
}

func (t *tracingProcessor) Supports(ctx context.Context, req *Request) bool {
	return t.inner.Supports(ctx, req)
}

func (t *tracingProcessor) Process(ctx context.Context, req *Request) (*Response, error) {
	ctx, span := observability.StartSpan(ctx, t.spanName)
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrRequestName, req.Name())
	observability.SetSpanAttribute(ctx, observability.AttrRequestID, req.ID().String())

	resp, err := t.inner.Process(ctx, req)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return resp, err
	}
	if resp != nil {
		observability.SetSpanAttribute(ctx, observability.AttrStatus, resp.Status().String())
		if name := resp.Name(); name != "" {
			observability.SetSpanAttribute(ctx, observability.AttrProcessor, name)
		}
	}
	return resp, err
}
