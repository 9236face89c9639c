package shrinkcat

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Executor commits a realized operation sequence against a file on disk,
// streaming each operation's DataChunk to a sink before relocating and
// truncating.
type Executor struct {
	sink io.Writer
	cfg  execConfig
}

// NewExecutor builds an Executor that streams emitted bytes to sink.
func NewExecutor(sink io.Writer, opts ...Option) (*Executor, error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	cfg := execConfig{
		bufferSize: DefaultBufferSize,
		logger:     defaultLogger(),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Executor{sink: sink, cfg: cfg}, nil
}

func defaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Commit runs operations against filePath in order: for each one it emits
// DataChunk to the sink, relocates SrcChunk on top of it when present, and
// truncates the file to TruncateTo. When dryRun is true no I/O is
// performed against filePath; only the step log and any StepObserver run.
//
// operations must come from Realize (or honor the same invariants): a
// monotonically non-increasing TruncateTo sequence and disjoint
// src/data ranges. Commit does not re-derive them from a ChunkPlan.
func (e *Executor) Commit(filePath string, operations []Operation, dryRun bool) error {
	var stepNo uint64

	for _, op := range operations {
		middleMsg := ""
		if op.IsMiddle {
			middleMsg = "(middle) "
		}
		e.cfg.logger.WithFields(logrus.Fields{
			"step":     stepNo,
			"chunk_no": op.ChunkNo,
			"range":    op.DataChunk.String(),
		}).Infof("%semit chunk %d", middleMsg, op.ChunkNo)

		if !dryRun {
			if err := emitRange(filePath, op.DataChunk, e.sink, e.cfg.bufferSize); err != nil {
				return err
			}
		}
		stepNo++

		if op.SrcChunk != nil {
			e.cfg.logger.WithFields(logrus.Fields{
				"step": stepNo,
				"src":  op.SrcChunk.String(),
				"dst":  op.DataChunk.String(),
			}).Info("copy bytes")

			if !dryRun {
				if err := copyRange(filePath, *op.SrcChunk, op.DataChunk); err != nil {
					return err
				}
			}
			stepNo++
		}

		e.cfg.logger.WithFields(logrus.Fields{
			"step":        stepNo,
			"truncate_to": op.TruncateTo,
		}).Info("truncate file")

		if !dryRun {
			if err := truncateToLength(filePath, op.TruncateTo); err != nil {
				return err
			}
		}
		stepNo++

		if e.cfg.observer != nil {
			e.cfg.observer(op)
		}
	}

	return nil
}
