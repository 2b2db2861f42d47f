package watch

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/zoobzio/capitan"

	"github.com/robokoder/processor/catalog"
	"github.com/robokoder/processor/config"
	"github.com/robokoder/processor/errors"
	"github.com/robokoder/processor/logger"
	"github.com/robokoder/processor/processor"
)

// BuildFunc turns one configuration payload into a chain.
type BuildFunc func(data []byte) (*processor.Chain, error)

// ConfigBuilder parses payloads of the given format as a config.Config and
// builds its chain from reg.
func ConfigBuilder(serviceName, format string, reg *catalog.Registry, opts ...catalog.BuildOption) BuildFunc {
	return func(data []byte) (*processor.Chain, error) {
		cfg, err := config.Parse(serviceName, format, data)
		if err != nil {
			return nil, err
		}
		return catalog.BuildConfig(reg, cfg, opts...)
	}
}

// FormatOf guesses the config format from a file extension, defaulting to
// yaml.
func FormatOf(path string) string {
	switch ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."); ext {
	case "json", "toml":
		return ext
	default:
		return "yaml"
	}
}

// Reloader is a Processor that delegates to the most recently built chain.
// Before the first successful build it answers every request as not
// implemented.
type Reloader struct {
	source Source
	build  BuildFunc
	log    *logger.Logger

	current atomic.Pointer[processor.Chain]
	version atomic.Int64

	mu      sync.Mutex
	started bool
	lastErr error
	cancel  context.CancelFunc
	done    chan struct{}
}

// ReloaderOption configures a Reloader.
type ReloaderOption func(*Reloader)

// WithReloaderLogger sets the logger used for reload outcomes.
func WithReloaderLogger(log *logger.Logger) ReloaderOption {
	return func(r *Reloader) { r.log = log }
}

// WithInitialChain serves chain until the source delivers a valid payload.
func WithInitialChain(chain *processor.Chain) ReloaderOption {
	return func(r *Reloader) { r.current.Store(chain) }
}

// NewReloader creates a Reloader reading from source.
func NewReloader(source Source, build BuildFunc, opts ...ReloaderOption) *Reloader {
	r := &Reloader{
		source: source,
		build:  build,
		log:    logger.NewNop(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithComponent("reloader")
	return r
}

// Start processes the first payload synchronously and keeps watching in the
// background until ctx is done or Stop is called. If the first payload
// fails, Start stops watching and returns its error; no Stop is needed.
// Start may be called once.
func (r *Reloader) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return fmt.Errorf("reloader already started")
	}
	r.started = true
	ctx, r.cancel = context.WithCancel(ctx)
	r.mu.Unlock()

	changes, err := r.source.Watch(ctx)
	if err != nil {
		r.cancel()
		close(r.done)
		return fmt.Errorf("failed to start source: %w", err)
	}
	capitan.Emit(ctx, ReloaderStarted)

	var initialErr error
	select {
	case <-ctx.Done():
		r.cancel()
		close(r.done)
		return ctx.Err()
	case data, ok := <-changes:
		if !ok {
			r.cancel()
			close(r.done)
			return fmt.Errorf("source closed before emitting initial value")
		}
		initialErr = r.Apply(ctx, data)
	}

	if initialErr != nil {
		r.cancel()
		close(r.done)
		return initialErr
	}

	go r.watch(ctx, changes)
	return nil
}

func (r *Reloader) watch(ctx context.Context, changes <-chan []byte) {
	defer close(r.done)
	for {
		select {
		case <-ctx.Done():
			capitan.Emit(context.Background(), ReloaderStopped)
			return
		case data, ok := <-changes:
			if !ok {
				capitan.Emit(context.Background(), ReloaderStopped)
				return
			}
			_ = r.Apply(ctx, data) //nolint:errcheck // reported via LastError and signals
		}
	}
}

// Apply builds a chain from data and swaps it in. On failure the current
// chain is left in place and the error is returned and recorded.
func (r *Reloader) Apply(ctx context.Context, data []byte) error {
	capitan.Emit(ctx, ReloadReceived)

	chain, err := r.buildChain(data)
	if err != nil {
		r.setErr(err)
		capitan.Emit(ctx, ReloadFailed, KeyError.Field(err.Error()))
		r.log.Warn("reload rejected, keeping previous chain", logger.ErrorFields("reload", err))
		return err
	}

	r.current.Store(chain)
	version := int(r.version.Add(1))
	r.setErr(nil)
	capitan.Emit(ctx, ReloadApplied,
		KeyEntries.Field(chain.Len()),
		KeyVersion.Field(version),
	)
	r.log.Info("chain reloaded", logger.Fields("entries", chain.Len(), "version", version))
	return nil
}

// buildChain rejects blank payloads, which a file being rewritten can
// briefly produce.
func (r *Reloader) buildChain(data []byte) (*processor.Chain, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.InvalidConfig("empty configuration")
	}
	return r.build(data)
}

func (r *Reloader) setErr(err error) {
	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
}

// LastError returns the error of the latest payload, or nil if it applied.
func (r *Reloader) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Name implements component.Component.
func (r *Reloader) Name() string { return "reloader" }

// Stop ends the background watch and waits for it to exit or ctx to end.
func (r *Reloader) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Current returns the active chain, or nil before the first build.
func (r *Reloader) Current() *processor.Chain { return r.current.Load() }

// Version counts successful reloads.
func (r *Reloader) Version() int { return int(r.version.Load()) }

// Done is closed once the background watch has stopped.
func (r *Reloader) Done() <-chan struct{} { return r.done }

// Supports implements processor.Processor.
func (r *Reloader) Supports(ctx context.Context, req *processor.Request) bool {
	chain := r.current.Load()
	return chain != nil && chain.Supports(ctx, req)
}

// Process implements processor.Processor. A request runs to completion on
// the chain that was active when it arrived.
func (r *Reloader) Process(ctx context.Context, req *processor.Request) (*processor.Response, error) {
	chain := r.current.Load()
	if chain == nil {
		return processor.NewResponse(req, nil, processor.StatusNotImplemented), nil
	}
	return chain.Process(ctx, req)
}
