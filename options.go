package shrinkcat

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrInvalidBufferSize is returned when a non-positive buffer size is given
// to WithBufferSize.
var ErrInvalidBufferSize = errors.New("bufferSize must be greater than 0")

// Option is a function that configures an Executor.
type Option func(*execConfig) error

// StepObserver is called after each Operation in a Commit, whether or not
// dryRun is set, so callers can track progress or drive their own logging
// in addition to the Executor's.
type StepObserver func(op Operation)

// execConfig holds the configuration for an Executor.
type execConfig struct {
	bufferSize int
	logger     *logrus.Logger
	observer   StepObserver
}

func (c *execConfig) validate() error {
	if c.bufferSize <= 0 {
		return ErrInvalidBufferSize
	}
	return nil
}

// WithBufferSize sets the internal buffer size used when streaming bytes
// out of the file to the sink during emit steps. Copy steps do not use it;
// they always use DefaultBufferSize.
func WithBufferSize(size int) Option {
	return func(c *execConfig) error {
		if size <= 0 {
			return ErrInvalidBufferSize
		}
		c.bufferSize = size
		return nil
	}
}

// WithLogger overrides the Executor's logger. The default logs at
// logrus.InfoLevel to os.Stderr.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *execConfig) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithStepObserver registers a callback invoked after every committed
// Operation.
func WithStepObserver(fn StepObserver) Option {
	return func(c *execConfig) error {
		c.observer = fn
		return nil
	}
}
