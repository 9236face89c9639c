package shrinkcat

import "io"

// Exported aliases for the unexported range primitives, so the external
// shrinkcat_test package can exercise them directly without reaching into
// Executor.Commit for every case.

func CommitTestEmitRange(path string, rng Range, sink io.Writer, bufSize int) error {
	return emitRange(path, rng, sink, bufSize)
}

func CommitTestCopyRange(path string, src, dst Range) error {
	return copyRange(path, src, dst)
}

func CommitTestTruncateToLength(path string, length uint64) error {
	return truncateToLength(path, length)
}

// Overlap exposes the package's overlap predicate for direct testing.
func Overlap(a, b Range) bool {
	return overlap(a, b)
}
