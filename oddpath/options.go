package oddpath

// Options configures a Solve call. The zero value runs silently.
type Options struct {
	trace func(string)
}

// Option customizes a Solve call; see Trace.
type Option func(*Options)

// DefaultOptions returns the zero-value Options with every Option applied
// on top, matching the functional-options pattern used throughout this
// module (see search.DefaultOptions).
func DefaultOptions(opts ...Option) Options {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Trace installs a callback invoked once per control-loop step (vertex
// grown or blossom formed), for diagnosing a solve without reaching for
// a logging dependency this module doesn't otherwise need.
func Trace(fn func(string)) Option {
	return func(o *Options) { o.trace = fn }
}

func (o Options) emit(msg string) {
	if o.trace != nil {
		o.trace(msg)
	}
}
