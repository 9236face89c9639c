package cli

// DefaultChunkSize implements the tiered default used when --chunk-size is
// absent. It is an operational tuning choice, not a planner invariant, so
// it lives here rather than in the core package.
func DefaultChunkSize(fileSize uint64) uint64 {
	switch {
	case fileSize < 1<<20:
		return 50000
	case fileSize < 1<<30:
		return fileSize / 100
	case fileSize < 1<<40:
		return fileSize / 500
	default:
		return fileSize / 1000
	}
}
