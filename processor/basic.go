package processor

import "context"

// Basic supports requests with one exact name and answers them with a fixed
// output.
type Basic struct {
	match  string
	output any
	status StatusCode
}

// BasicOption customizes a Basic processor.
type BasicOption func(*Basic)

// WithStatus overrides the StatusOK answer.
func WithStatus(status StatusCode) BasicOption {
	return func(b *Basic) { b.status = status }
}

// NewBasic creates a processor for requests named match.
func NewBasic(match string, output any, opts ...BasicOption) *Basic {
	b := &Basic{match: match, output: output, status: StatusOK}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Supports implements Processor.
func (b *Basic) Supports(_ context.Context, req *Request) bool {
	return req.Name() == b.match
}

// Process implements Processor.
func (b *Basic) Process(_ context.Context, req *Request) (*Response, error) {
	return NewResponse(req, b.output, b.status), nil
}
