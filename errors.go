package shrinkcat

import (
	"errors"
	"fmt"
)

var (
	// ErrFileSizeZero is returned by Plan when the file size is 0.
	ErrFileSizeZero = errors.New("file size must be greater than 0")

	// ErrInvalidChunkSize is returned by Plan when the chunk size is 0.
	// Not one of the wire-level error kinds the spec enumerates for the
	// realizer/executor, but the planner divides by chunk size and a zero
	// value must be rejected before that division runs.
	ErrInvalidChunkSize = errors.New("chunk size must be greater than 0")

	// ErrOperationLimitExceeded is returned by Realize when the number of
	// operations it would produce exceeds the configured limit.
	ErrOperationLimitExceeded = errors.New("operation limit exceeded")

	// ErrInvalidRange is returned by the range primitives when end <= start.
	ErrInvalidRange = errors.New("invalid range: end must be greater than start")

	// ErrOutOfBounds is returned when a range exceeds the current file length.
	ErrOutOfBounds = errors.New("range out of bounds")

	// ErrRangeOverlap is returned when a copy's source and destination ranges intersect.
	ErrRangeOverlap = errors.New("source and destination ranges overlap")

	// ErrSizeMismatch is returned when a copy's source and destination ranges
	// have unequal length.
	ErrSizeMismatch = errors.New("source and destination ranges have unequal length")

	// ErrShortReadOrWrite is returned when underlying I/O returns fewer bytes
	// than the operation required.
	ErrShortReadOrWrite = errors.New("short read or write")

	// ErrTruncateUnderflow is returned when the requested length exceeds the
	// file's current length.
	ErrTruncateUnderflow = errors.New("truncate target exceeds current file length")

	// ErrIOFailure is the sentinel every IOError matches, so callers can test
	// errors.Is(err, shrinkcat.ErrIOFailure) without caring which OS error
	// caused it.
	ErrIOFailure = errors.New("io failure")

	// ErrNilSink is returned by NewExecutor when given a nil sink.
	ErrNilSink = errors.New("sink must not be nil")
)

// IOError wraps an underlying filesystem error with the operation and path
// that triggered it, while still satisfying errors.Is(err, ErrIOFailure) via
// Is and errors.Is(err, the wrapped OS error) via Unwrap.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIOFailure, letting callers match the
// sentinel without knowing the wrapped OS error.
func (e *IOError) Is(target error) bool {
	return target == ErrIOFailure
}

func ioError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}
