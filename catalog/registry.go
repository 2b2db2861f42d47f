package catalog

import (
	"sort"
	"sync"

	"github.com/robokoder/processor/errors"
	"github.com/robokoder/processor/processor"
)

// Factory creates a processor from the options of one chain entry.
type Factory func(opts map[string]any) (processor.Processor, error)

// Registry manages processor factories by kind.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry creates a Registry with the built-in kinds registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}

// RegisterFactory registers f under kind, replacing any previous factory.
func (r *Registry) RegisterFactory(kind string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = f
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[kind]
	return ok
}

// Create builds a processor of the given kind. Unknown kinds yield an
// UNKNOWN_KIND AppError.
func (r *Registry) Create(kind string, opts map[string]any) (processor.Processor, error) {
	r.mu.RLock()
	f, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.UnknownKind(kind)
	}
	return f(opts)
}

// List returns the registered kinds, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
