package arena

import (
	"time"

	"go.uber.org/zap"
)

// Default timing configuration. Agents are expected to answer near-
// instantly, so their bound is two orders of magnitude below the
// human-facing one.
const (
	defaultMoveTimeout  = 100 * time.Millisecond
	defaultInputTimeout = 60 * time.Second
	defaultGracePeriod  = 5 * time.Second
	defaultRetries      = 3
)

// playerOptions holds resolved construction-time configuration shared by
// both player variants.
type playerOptions struct {
	input        InputFunc
	inputTimeout time.Duration
	moveTimeout  time.Duration
	gracePeriod  time.Duration
	debug        bool
	remote       bool
	logger       *zap.Logger
	interpreters map[string][]string
}

// PlayerOption configures a Human or Bot at construction time.
type PlayerOption func(*playerOptions)

// WithInput wires a remote input hook into a Human. Without one, the
// Human reads from the console's local terminal.
func WithInput(fn InputFunc) PlayerOption {
	return func(o *playerOptions) { o.input = fn }
}

// WithInputTimeout bounds each interactive turn. Values <= 0 are ignored.
func WithInputTimeout(d time.Duration) PlayerOption {
	return func(o *playerOptions) {
		if d > 0 {
			o.inputTimeout = d
		}
	}
}

// WithMoveTimeout bounds each agent turn's read. Values <= 0 are ignored.
func WithMoveTimeout(d time.Duration) PlayerOption {
	return func(o *playerOptions) {
		if d > 0 {
			o.moveTimeout = d
		}
	}
}

// WithGracePeriod sets how long Stop waits after the terminate signal
// before killing the process outright. Values <= 0 are ignored.
func WithGracePeriod(d time.Duration) PlayerOption {
	return func(o *playerOptions) {
		if d > 0 {
			o.gracePeriod = d
		}
	}
}

// WithDebug controls whether agent debug lines and crash detail are
// echoed to the console.
func WithDebug(on bool) PlayerOption {
	return func(o *playerOptions) { o.debug = on }
}

// WithRemoteOwner marks the seat as owned by a remote platform account,
// which changes how its name is rendered.
func WithRemoteOwner() PlayerOption {
	return func(o *playerOptions) { o.remote = true }
}

// WithLogger attaches a protocol trace logger. Defaults to a no-op.
func WithLogger(l *zap.Logger) PlayerOption {
	return func(o *playerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithInterpreter extends or overrides the launch-command table for one
// program extension (e.g. ".rb" → ["ruby"]).
func WithInterpreter(ext string, argv ...string) PlayerOption {
	return func(o *playerOptions) {
		if o.interpreters == nil {
			o.interpreters = make(map[string][]string)
		}
		o.interpreters[ext] = argv
	}
}

func resolvePlayerOptions(opts ...PlayerOption) playerOptions {
	o := playerOptions{
		inputTimeout: defaultInputTimeout,
		moveTimeout:  defaultMoveTimeout,
		gracePeriod:  defaultGracePeriod,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// runOptions holds resolved configuration for Run.
type runOptions struct {
	console *Console
	retries int
}

// RunOption configures a single Run invocation.
type RunOption func(*runOptions)

// WithConsole sets the console the scheduler announces through.
// Defaults to a plain stdout/stdin console.
func WithConsole(c *Console) RunOption {
	return func(o *runOptions) {
		if c != nil {
			o.console = c
		}
	}
}

// WithRetries caps how many times an interactive seat may retry after a
// non-terminal rejection before it is eliminated. Values <= 0 are ignored.
func WithRetries(n int) RunOption {
	return func(o *runOptions) {
		if n > 0 {
			o.retries = n
		}
	}
}

func resolveRunOptions(opts ...RunOption) runOptions {
	o := runOptions{retries: defaultRetries}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.console == nil {
		o.console = NewConsole(nil, nil, nil)
	}
	return o
}
