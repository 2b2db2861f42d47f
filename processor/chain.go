package processor

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/robokoder/processor/logger"
)

// Chain dispatches each request to the first supporting entry in ascending
// priority order. Entries with equal priority keep their insertion order.
//
// Registration and dispatch may run concurrently. Add replaces the entry
// slice rather than sorting it in place, so dispatch iterates a stable
// snapshot and processors run without the chain's lock held.
type Chain struct {
	mu      sync.RWMutex
	entries []Entry
	log     *logger.Logger
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithChainLogger logs unmatched requests at debug level.
func WithChainLogger(log *logger.Logger) ChainOption {
	return func(c *Chain) { c.log = log }
}

// NewChain creates an empty chain.
func NewChain(opts ...ChainOption) *Chain {
	c := &Chain{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add registers p with an empty name and DefaultPriority unless overridden
// by opts, then re-sorts. It returns the receiver for chaining.
func (c *Chain) Add(p Processor, opts ...EntryOption) *Chain {
	e := Entry{processor: p, priority: DefaultPriority}
	for _, opt := range opts {
		opt(&e)
	}
	return c.AddEntry(e)
}

// AddEntry registers a prebuilt entry and re-sorts.
func (c *Chain) AddEntry(e Entry) *Chain {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := append(slices.Clone(c.entries), e)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].priority < next[j].priority
	})
	c.entries = next
	return c
}

// Entries returns the entries in dispatch order.
func (c *Chain) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.entries)
}

// Len returns the number of registered entries.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Supports reports whether any entry supports req.
func (c *Chain) Supports(ctx context.Context, req *Request) bool {
	_, ok := c.match(ctx, req)
	return ok
}

// Process delegates req to the first supporting entry and sets the
// response's name extra to that entry's name. Errors from the processor are
// returned as-is. An unmatched request yields a StatusNotImplemented
// response with nil output and a nil error.
func (c *Chain) Process(ctx context.Context, req *Request) (*Response, error) {
	e, ok := c.match(ctx, req)
	if !ok {
		if c.log != nil {
			c.log.WithContext(ctx).Debug("no processor supports request", logger.Fields(
				logger.FieldRequestName, req.Name(),
				logger.FieldRequestID, req.ID().String(),
			))
		}
		return NewResponse(req, nil, StatusNotImplemented), nil
	}

	resp, err := e.processor.Process(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.SetExtra(ExtraName, e.name), nil
}

func (c *Chain) match(ctx context.Context, req *Request) (Entry, bool) {
	c.mu.RLock()
	entries := c.entries
	c.mu.RUnlock()

	for _, e := range entries {
		if e.processor.Supports(ctx, req) {
			return e, true
		}
	}
	return Entry{}, false
}
