package processor

import (
	"context"
	"time"

	"github.com/robokoder/processor/logger"
)

// WithLogging logs every Process call: failures at error level, everything
// else at debug.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Processor) Processor {
		return &loggingProcessor{inner: inner, log: log}
	}
}

type loggingProcessor struct {
	inner Processor
	log   *logger.Logger
}

func (l *loggingProcessor) Supports(ctx context.Context, req *Request) bool {
	return l.inner.Supports(ctx, req)
}

func (l *loggingProcessor) Process(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Process(ctx, req)

	fields := map[string]any{
		logger.FieldRequestName: req.Name(),
		logger.FieldRequestID:   req.ID().String(),
		logger.FieldDuration:    time.Since(start).Milliseconds(),
	}
	log := l.log.WithContext(ctx)

	if err != nil {
		fields[logger.FieldError] = err.Error()
		log.Error("process failed", fields)
		return resp, err
	}
	if resp != nil {
		fields[logger.FieldStatus] = resp.Status().String()
		if name := resp.Name(); name != "" {
			fields[logger.FieldProcessor] = name
		}
	}
	log.Debug("process ok", fields)
	return resp, err
}
