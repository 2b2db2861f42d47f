// Command processor dispatches named requests through a configured chain
// and prints one JSON response per request.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/robokoder/processor/catalog"
	"github.com/robokoder/processor/component"
	"github.com/robokoder/processor/config"
	"github.com/robokoder/processor/errors"
	"github.com/robokoder/processor/logger"
	"github.com/robokoder/processor/observability"
	"github.com/robokoder/processor/processor"
	"github.com/robokoder/processor/version"
	"github.com/robokoder/processor/watch"
)

const serviceName = "processor"

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitRejected = 2
)

type options struct {
	configPath  string
	envPath     string
	input       string
	watch       bool
	showVersion bool
	names       []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	fs.StringVarP(&opts.envPath, "env", "e", "", "Path to .env file")
	fs.StringVarP(&opts.input, "input", "i", "", "Input payload for every request (JSON or plain text)")
	fs.BoolVarP(&opts.watch, "watch", "w", false, "Reload the chain when the config file changes")
	fs.BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "processor - priority-ordered request dispatcher\n\n")
		fmt.Fprintf(stderr, "Usage: processor [options] [request names...]\n\n")
		fmt.Fprintf(stderr, "Request names are read from stdin, one per line, when none are given.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.names = fs.Args()
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if stderrors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitFailure
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "processor %s\n", version.Get())
		return exitOK
	}

	cfg, err := config.Load(serviceName, loaderOptions(opts)...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return exitFailure
	}

	log := logger.NewWithWriter(stderr, cfg.Logging, cfg.Name)
	logger.SetGlobal(log)

	components := component.NewRegistry(log.WithComponent("lifecycle"))
	defer func() {
		if err := components.StopAll(context.Background()); err != nil {
			log.Warn("shutdown incomplete", logger.ErrorFields("stop_components", err))
		}
	}()

	tel := &telemetry{cfg: cfg}
	if err := components.Register(tel); err != nil {
		return exitFailure
	}
	if err := components.StartAll(ctx); err != nil {
		log.Error("telemetry init failed", logger.ErrorFields("start_components", err))
		return exitFailure
	}

	dispatcher, err := newDispatcher(cfg, opts, log, tel.metrics)
	if err != nil {
		log.Error("chain build failed", logger.ErrorFields("build_chain", err))
		return exitFailure
	}
	if c, ok := dispatcher.(component.Component); ok {
		if err := components.Register(c); err != nil {
			return exitFailure
		}
		if err := components.StartAll(ctx); err != nil {
			log.Error("chain build failed", logger.ErrorFields("start_components", err))
			return exitFailure
		}
	}

	return dispatchAll(ctx, instrument(dispatcher, tel.metrics), opts.names, stdin, parseInput(opts.input), stdout)
}

func loaderOptions(opts options) []config.LoaderOption {
	var lo []config.LoaderOption
	if opts.configPath != "" {
		lo = append(lo, config.WithConfigFile(opts.configPath))
	}
	if opts.envPath != "" {
		lo = append(lo, config.WithEnvFile(opts.envPath))
	}
	return lo
}

// newDispatcher builds the chain once, or returns an unstarted Reloader
// when watching.
func newDispatcher(cfg *config.Config, opts options, log *logger.Logger, metrics *observability.Metrics) (processor.Processor, error) {
	reg := catalog.NewDefaultRegistry()
	buildOpts := []catalog.BuildOption{
		catalog.WithBuildLogger(log.WithComponent("catalog")),
		catalog.WithEntryMiddleware(func(entry config.EntryConfig) []processor.Middleware {
			mws := []processor.Middleware{processor.WithLogging(log.WithComponent("dispatch"))}
			if cfg.Tracing.Enabled {
				mws = append(mws, processor.WithTracing(entry.Name))
			}
			if metrics != nil {
				mws = append(mws, processor.WithMetrics(metrics, entry.Name))
			}
			return mws
		}),
	}

	if !opts.watch {
		return catalog.BuildConfig(reg, cfg, buildOpts...)
	}

	path := config.Resolve(serviceName, config.LoaderConfig{ConfigFile: opts.configPath}).ConfigFile
	if path == "" {
		return nil, errors.InvalidConfig("watch needs a config file")
	}
	if !(config.OSFileSystem{}).Exists(path) {
		return nil, errors.InvalidConfig("watch needs an existing config file").WithDetail("path", path)
	}
	return watch.NewReloader(
		watch.NewFileSource(path),
		watch.ConfigBuilder(cfg.Name, watch.FormatOf(path), reg, buildOpts...),
		watch.WithReloaderLogger(log),
	), nil
}

// instrument records chain-level outcomes, including requests no entry
// supports, which per-entry metrics never see.
func instrument(p processor.Processor, metrics *observability.Metrics) processor.Processor {
	if metrics == nil {
		return p
	}
	return processor.WithMetrics(metrics, "chain")(p)
}

// result is the JSON line printed per request.
type result struct {
	RequestID  string            `json:"request_id"`
	Name       string            `json:"name"`
	Status     int               `json:"status"`
	StatusText string            `json:"status_text"`
	Output     any               `json:"output"`
	Extras     map[string]any    `json:"extras,omitempty"`
	Error      *errors.ErrorBody `json:"error,omitempty"`
}

// dispatchAll sends each name through p. With no names it reads them from
// stdin until EOF or cancellation.
func dispatchAll(ctx context.Context, p processor.Processor, names []string, stdin io.Reader, input any, stdout io.Writer) int {
	enc := json.NewEncoder(stdout)
	code := exitOK

	handle := func(name string) {
		r, ok := dispatch(ctx, p, processor.NewRequest(name, input))
		if !ok {
			code = exitRejected
		}
		_ = enc.Encode(r) //nolint:errcheck // stdout write failures are unrecoverable here
	}

	if len(names) > 0 {
		for _, name := range names {
			handle(name)
		}
		return code
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			handle(name)
		}
	}
	return code
}

func dispatch(ctx context.Context, p processor.Processor, req *processor.Request) (result, bool) {
	r := result{RequestID: req.ID().String(), Name: req.Name()}

	resp, err := p.Process(ctx, req)
	if err != nil {
		appErr, ok := errors.AsAppError(err)
		if !ok {
			appErr = errors.Internal(err)
		}
		body := appErr.ToBody()
		r.Status = appErr.Status
		r.StatusText = processor.StatusCode(appErr.Status).String()
		r.Error = &body
		return r, false
	}
	if resp == nil {
		r.Status = int(processor.StatusInternalError)
		r.StatusText = processor.StatusInternalError.String()
		return r, false
	}

	r.Status = int(resp.Status())
	r.StatusText = resp.Status().String()
	r.Output = resp.Output()
	r.Extras = resp.Extras()
	if err := resp.Err(); err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			body := appErr.ToBody()
			r.Error = &body
		}
		return r, false
	}
	return r, true
}

// parseInput decodes JSON input and falls back to the raw string.
func parseInput(raw string) any {
	if raw == "" {
		return nil
	}
	var v any
	if json.Valid([]byte(raw)) && json.Unmarshal([]byte(raw), &v) == nil {
		return v
	}
	return raw
}
