package shrinkcat

// ChunkPlan is the declarative decomposition of a file of FileSize bytes
// into a head zone, a middle zone, and a tail zone, immutable once built by
// Plan. It does no I/O; Realize turns it into the ordered operations an
// Executor can run.
type ChunkPlan struct {
	ChunkSize       uint64
	FileSize        uint64
	StartChunks     uint64
	MiddleLeftSize  uint64
	MiddleRightSize uint64
}

// Plan computes a ChunkPlan for a file of fileSize bytes, shrinking it
// chunkSize bytes at a time.
//
// The file is partitioned into StartChunks contiguous chunks of exactly
// chunkSize bytes at the head, a mirrored StartChunks chunks at the tail,
// and a middle zone of at most 2*chunkSize-1 bytes split into
// MiddleLeftSize >= MiddleRightSize halves.
func Plan(chunkSize, fileSize uint64) (ChunkPlan, error) {
	if chunkSize == 0 {
		return ChunkPlan{}, ErrInvalidChunkSize
	}
	if fileSize == 0 {
		return ChunkPlan{}, ErrFileSizeZero
	}

	startChunks := fileSize / 2 / chunkSize
	middleSize := fileSize - 2*startChunks*chunkSize

	middleRight := middleSize / 2
	middleLeft := middleSize - middleRight

	return ChunkPlan{
		ChunkSize:       chunkSize,
		FileSize:        fileSize,
		StartChunks:     startChunks,
		MiddleLeftSize:  middleLeft,
		MiddleRightSize: middleRight,
	}, nil
}
