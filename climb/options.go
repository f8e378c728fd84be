package climb

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Option configures BestStart and Solve.
type Option func(*options)

type options struct {
	workers int
	logger  log.FieldLogger
	err     error
}

func defaultOptions() options {
	return options{
		workers: 1,
		logger:  log.StandardLogger(),
	}
}

// WithWorkers sets how many candidate searches may run at once.
// n == 1 runs them sequentially; n < 1 is rejected with ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: %d", ErrBadWorkers, n)
			return
		}
		o.workers = n
	}
}

// WithLogger routes progress logging to l.
func WithLogger(l log.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
