// Package shrinkcat streams a file to an output sink while progressively
// reclaiming the disk space occupied by the bytes already emitted, so a file
// larger than the free space on its volume can still be drained to a pipe,
// compressor, or remote sink.
//
// # Overview
//
// The package splits the work into two pure-data stages followed by one
// I/O stage:
//
//   - Plan computes a ChunkPlan from a chunk size and a file size.
//   - Realize expands a ChunkPlan into an ordered []Operation.
//   - Executor.Commit walks the operations against a real file, emitting
//     each data chunk to the sink, relocating bytes in place when needed,
//     and truncating the file so its length never stops shrinking.
//
// Plan and Realize do no I/O and can be property-tested without a
// filesystem. Commit is the only stage that touches disk, and it does so
// through range-validated primitives (emitRange, copyRange,
// truncateToLength) that re-check every precondition Realize already
// guarantees.
//
// # Quick Start
//
//	plan, err := shrinkcat.Plan(64*1024, fileSize)
//	ops, err := shrinkcat.Realize(plan)
//	exec, err := shrinkcat.NewExecutor(os.Stdout)
//	err = exec.Commit(path, ops, false)
//
// # Shape of the plan
//
// A file is split into a head zone and a tail zone of equal-sized chunks,
// plus a middle zone smaller than two chunks:
//
//	[ head chunks ... ][ middle (< 2*chunkSize) ][ ... tail chunks ]
//
// Each head chunk is emitted, then the matching tail chunk is copied into
// its slot and the file is truncated past it — the file shrinks by one
// chunk per head/tail pair. The middle zone is emitted directly, relocating
// its second half in front of itself first when both halves are present.
//
// # Durability
//
// This is deliberately destructive: a killed process leaves the file
// truncated to whatever length the last completed operation set, with its
// surviving bytes equal to the unread suffix of the original file. There is
// no write-ahead log, no shadow file, and no recovery path — callers accept
// this tradeoff by invoking the tool.
package shrinkcat
