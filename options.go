package vector

import "go.uber.org/zap"

var nopLogger = zap.NewNop()

// Option configures a Vector at construction time.
type Option func(*options)

type options struct {
	logger    *zap.Logger
	collector *Collector
}

// WithLogger sets the logger used to report reallocations and allocation
// failures. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCollector makes the vector report its storage activity to c.
// A single Collector may be shared by any number of vectors.
func WithCollector(c *Collector) Option {
	return func(o *options) {
		o.collector = c
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) log() *zap.Logger {
	if o.logger == nil {
		return nopLogger
	}
	return o.logger
}
