package profile

import "slices"

// Stopper ends a running profile and flushes its output.
type Stopper interface{ Stop() }

// Config describes one profiling session.
type Config struct {
	Mode  string
	Dir   string
	Quiet bool
}

// Option sets a field of [Config].
type Option func(Config) Config

// WithMode selects the profile kind, one of [Modes].
func WithMode(mode string) Option {
	return func(c Config) Config {
		c.Mode = mode

		return c
	}
}

// WithDir sets the output directory.
func WithDir(dir string) Option {
	return func(c Config) Config {
		c.Dir = dir

		return c
	}
}

// WithQuiet suppresses the profiler's own log lines.
func WithQuiet(quiet bool) Option {
	return func(c Config) Config {
		c.Quiet = quiet

		return c
	}
}

// New returns a Config with opts applied in order. Nil options are skipped.
func New(opts ...Option) Config {
	var c Config

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// Enabled reports whether Start would begin a real profile.
func (c Config) Enabled() bool {
	return c.Mode != "" && slices.Contains(Modes(), c.Mode)
}

// Start begins profiling and returns the handle that stops it. When c is
// not [Config.Enabled] the handle does nothing. Stop is always safe to call.
func (c Config) Start() Stopper {
	if !c.Enabled() {
		return ignore{}
	}

	return start(c)
}

type ignore struct{}

func (ignore) Stop() {}
