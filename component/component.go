package component

import "context"

// Component is a lifecycle-managed part of the process.
type Component interface {
	// Name identifies the component in logs and must be unique per registry.
	Name() string
	Start(ctx context.Context) error
	// Stop releases resources. It is only called after a successful Start.
	Stop(ctx context.Context) error
}

// Func adapts a pair of functions to Component. Nil functions are no-ops.
type Func struct {
	ID      string
	StartFn func(ctx context.Context) error
	StopFn  func(ctx context.Context) error
}

// Name implements Component.
func (f Func) Name() string { return f.ID }

// Start implements Component.
func (f Func) Start(ctx context.Context) error {
	if f.StartFn == nil {
		return nil
	}
	return f.StartFn(ctx)
}

// Stop implements Component.
func (f Func) Stop(ctx context.Context) error {
	if f.StopFn == nil {
		return nil
	}
	return f.StopFn(ctx)
}
