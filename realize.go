package shrinkcat

// DefaultOperationLimit is the safety cap on the number of operations
// Realize will produce before it gives up with ErrOperationLimitExceeded.
const DefaultOperationLimit = 1_000_000

// RealizeOption configures Realize.
type RealizeOption func(*realizeConfig)

type realizeConfig struct {
	operationLimit uint64
}

// WithOperationLimit overrides DefaultOperationLimit.
func WithOperationLimit(n uint64) RealizeOption {
	return func(c *realizeConfig) {
		c.operationLimit = n
	}
}

// Realize expands a ChunkPlan into the ordered sequence of operations that
// reproduce the plan's file in its original byte order while shrinking it
// monotonically. It performs no I/O.
func Realize(plan ChunkPlan, opts ...RealizeOption) ([]Operation, error) {
	cfg := realizeConfig{operationLimit: DefaultOperationLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	ops := make([]Operation, 0, 2*plan.StartChunks+2)
	var chunkNo uint64

	push := func(op Operation) error {
		if chunkNo >= cfg.operationLimit {
			return ErrOperationLimitExceeded
		}
		op.ChunkNo = chunkNo
		chunkNo++
		ops = append(ops, op)
		return nil
	}

	c := plan.ChunkSize
	n := plan.FileSize
	s := plan.StartChunks * c

	// Phase H — head pass: emit head chunk i, copy the symmetric tail
	// chunk into its slot, truncate past it.
	for i := uint64(0); i < plan.StartChunks; i++ {
		dstStart := i * c
		dstEnd := dstStart + c
		srcStart := n - (i+1)*c
		srcEnd := srcStart + c

		if err := push(Operation{
			SrcChunk:   &Range{Start: srcStart, End: srcEnd},
			DataChunk:  Range{Start: dstStart, End: dstEnd},
			TruncateTo: n - (i+1)*c,
			IsMiddle:   false,
		}); err != nil {
			return nil, err
		}
	}

	// Phase M — middle zone: emit-in-place the left half, relocating the
	// right half in front of itself first when both halves are present.
	if plan.MiddleLeftSize > 0 {
		left := plan.MiddleLeftSize
		right := plan.MiddleRightSize

		switch {
		case right > 0 && left == right+1:
			// Anomaly: one byte of the left half (the last one) has no
			// symmetric partner in the right half. Rather than patch the
			// copy length at commit time, split into an emit+copy op for
			// the aligned prefix — whose copy destination, like the
			// unsplit case below, is exactly its own DataChunk — and a
			// separate emit-only op for the trailing extra byte.
			if err := push(Operation{
				SrcChunk:   &Range{Start: s + left, End: s + left + right},
				DataChunk:  Range{Start: s, End: s + right},
				TruncateTo: s + left, // preserve the not-yet-emitted extra byte
				IsMiddle:   true,
			}); err != nil {
				return nil, err
			}

			if err := push(Operation{
				DataChunk:  Range{Start: s + right, End: s + left},
				TruncateTo: s + right,
				IsMiddle:   true,
			}); err != nil {
				return nil, err
			}

		case right > 0:
			// left == right: the copy destination matches DataChunk exactly.
			if err := push(Operation{
				SrcChunk:   &Range{Start: s + left, End: s + left + right},
				DataChunk:  Range{Start: s, End: s + left},
				TruncateTo: s + right,
				IsMiddle:   true,
			}); err != nil {
				return nil, err
			}

		default:
			// No right half: emit the whole middle zone and drop it.
			if err := push(Operation{
				DataChunk:  Range{Start: s, End: s + left},
				TruncateTo: s,
				IsMiddle:   true,
			}); err != nil {
				return nil, err
			}
		}
	}

	if plan.MiddleRightSize > 0 {
		right := plan.MiddleRightSize
		if err := push(Operation{
			DataChunk:  Range{Start: s, End: s + right},
			TruncateTo: s,
			IsMiddle:   true,
		}); err != nil {
			return nil, err
		}
	}

	// Phase T — tail pass: chunks already hold correct content (relocated
	// by the head pass), so each step is a plain emit + truncate.
	for i := uint64(0); i < plan.StartChunks; i++ {
		k := plan.StartChunks - i - 1
		dstStart := k * c
		dstEnd := dstStart + c

		if err := push(Operation{
			DataChunk:  Range{Start: dstStart, End: dstEnd},
			TruncateTo: k * c,
			IsMiddle:   false,
		}); err != nil {
			return nil, err
		}
	}

	return ops, nil
}
