package shrinkcat

import "fmt"

// Range is a half-open byte range [Start, End) within a file.
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the number of bytes spanned by the range.
func (r Range) Len() uint64 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// overlap reports whether two half-open ranges intersect. Touching ranges
// (e.g. [0,10) and [10,20)) do not overlap.
func overlap(a, b Range) bool {
	return !(a.End <= b.Start || a.Start >= b.End)
}

// Operation is one step of a realized ChunkPlan: emit DataChunk to the
// sink, optionally relocate SrcChunk on top of it, then truncate the file
// to TruncateTo.
type Operation struct {
	// ChunkNo is this operation's position in the realized sequence.
	ChunkNo uint64

	// SrcChunk is the range to copy into DataChunk's slot before
	// truncating, or nil when no relocation is needed.
	SrcChunk *Range

	// DataChunk is the range of bytes that must be emitted to the sink
	// before any copy or truncate for this operation.
	DataChunk Range

	// TruncateTo is the file length this operation leaves behind.
	TruncateTo uint64

	// IsMiddle flags the operations realized from the middle zone (one to
	// three of them; three when the Phase M-left split applies, see
	// realize.go). Commit uses it only to tag its log lines.
	IsMiddle bool
}
