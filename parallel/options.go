package parallel

import (
	"github.com/go-logr/logr"

	"github.com/exascience/pfold"
)

type options struct {
	hint    int
	hintSet bool
	logger  logr.Logger
}

// An Option configures a parallel fold.
type Option func(*options)

// Workers sets the worker count hint. The number of workers is
// pfold.NumWorkers(length, hint), so a hint of 0 selects
// pfold.DefaultWorkers. Without this option, the hint is
// pfold.HardwareConcurrency().
func Workers(hint int) Option {
	return func(o *options) {
		o.hint = hint
		o.hintSet = true
	}
}

// WithLogger sets the logger that reports partitioning decisions at V(1) and
// failing workers at error level.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logr.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if !o.hintSet {
		o.hint = pfold.HardwareConcurrency()
	}
	return o
}

func (o *options) partition(length int) []pfold.Range {
	ranges := pfold.Partition(length, o.hint)
	if log := o.logger.V(1); log.Enabled() {
		blockSize := 0
		if len(ranges) > 0 {
			blockSize = length / len(ranges)
		}
		log.Info("partitioned sequence",
			"length", length,
			"hint", o.hint,
			"workers", len(ranges),
			"blockSize", blockSize)
	}
	return ranges
}
