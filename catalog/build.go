package catalog

import (
	"fmt"

	"github.com/robokoder/processor/config"
	"github.com/robokoder/processor/errors"
	"github.com/robokoder/processor/logger"
	"github.com/robokoder/processor/processor"
)

// EntryMiddleware returns the middlewares for one entry, outermost first.
type EntryMiddleware func(entry config.EntryConfig) []processor.Middleware

type builder struct {
	middlewares []EntryMiddleware
	chainOpts   []processor.ChainOption
	log         *logger.Logger
}

// BuildOption configures Build.
type BuildOption func(*builder)

// WithMiddleware wraps every built processor with mws.
func WithMiddleware(mws ...processor.Middleware) BuildOption {
	return func(b *builder) {
		b.middlewares = append(b.middlewares, func(config.EntryConfig) []processor.Middleware { return mws })
	}
}

// WithEntryMiddleware wraps each processor with middlewares chosen per
// entry, for example a tracing middleware labelled with the entry name.
func WithEntryMiddleware(fn EntryMiddleware) BuildOption {
	return func(b *builder) { b.middlewares = append(b.middlewares, fn) }
}

// WithBuildLogger logs each added entry at debug level and passes the
// logger to the chain.
func WithBuildLogger(log *logger.Logger) BuildOption {
	return func(b *builder) {
		b.log = log
		b.chainOpts = append(b.chainOpts, processor.WithChainLogger(log))
	}
}

// Build creates a chain from entries. Disabled entries are skipped. An
// entry's Retry config becomes the innermost middleware. The first failing
// entry aborts the build.
func Build(reg *Registry, entries []config.EntryConfig, opts ...BuildOption) (*processor.Chain, error) {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}

	chain := processor.NewChain(b.chainOpts...)
	for i, entry := range entries {
		if entry.Disabled {
			continue
		}
		p, err := reg.Create(entry.Kind, entry.Options)
		if err != nil {
			return nil, entryError(i, entry, err)
		}

		var mws []processor.Middleware
		for _, fn := range b.middlewares {
			mws = append(mws, fn(entry)...)
		}
		if entry.Retry != nil {
			mws = append(mws, processor.WithRetry(*entry.Retry))
		}
		if len(mws) > 0 {
			p = processor.Wrap(p, mws...)
		}

		priority := entry.PriorityOr(processor.DefaultPriority)
		chain.Add(p, processor.WithName(entry.Name), processor.WithPriority(priority))
		if b.log != nil {
			b.log.Debug("entry added", logger.Fields(
				logger.FieldProcessor, entry.Name,
				logger.FieldPriority, priority,
				"kind", entry.Kind,
			))
		}
	}
	return chain, nil
}

// BuildConfig builds the chain declared by cfg.
func BuildConfig(reg *Registry, cfg *config.Config, opts ...BuildOption) (*processor.Chain, error) {
	return Build(reg, cfg.Processors, opts...)
}

func entryError(index int, entry config.EntryConfig, err error) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.WithDetail("entry", entry.Name).WithDetail("index", index)
	}
	return errors.InvalidConfig(fmt.Sprintf("building entry %q failed", entry.Name)).
		WithCause(err).
		WithDetail("entry", entry.Name).
		WithDetail("index", index)
}
