package processor

import (
	"context"
	"strings"
)

// Processor handles the requests it supports.
type Processor interface {
	// Supports reports whether the processor can handle req.
	Supports(ctx context.Context, req *Request) bool
	// Process handles req. Callers should only invoke it after Supports
	// returned true.
	Process(ctx context.Context, req *Request) (*Response, error)
}

// Predicate decides whether a request applies.
type Predicate func(ctx context.Context, req *Request) bool

// Func adapts a pair of functions to the Processor interface.
// A nil SupportsFn supports nothing; a nil ProcessFn answers not implemented.
type Func struct {
	SupportsFn Predicate
	ProcessFn  func(ctx context.Context, req *Request) (*Response, error)
}

// Supports implements Processor.
func (f Func) Supports(ctx context.Context, req *Request) bool {
	if f.SupportsFn == nil {
		return false
	}
	return f.SupportsFn(ctx, req)
}

// Process implements Processor.
func (f Func) Process(ctx context.Context, req *Request) (*Response, error) {
	if f.ProcessFn == nil {
		return NewResponse(req, nil, StatusNotImplemented), nil
	}
	return f.ProcessFn(ctx, req)
}

// MatchName matches requests whose name is one of names.
func MatchName(names ...string) Predicate {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(_ context.Context, req *Request) bool {
		_, ok := set[req.Name()]
		return ok
	}
}

// MatchPrefix matches requests whose name starts with prefix.
func MatchPrefix(prefix string) Predicate {
	return func(_ context.Context, req *Request) bool {
		return strings.HasPrefix(req.Name(), prefix)
	}
}
