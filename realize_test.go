package shrinkcat_test

import (
	"testing"

	"github.com/kalbasit/shrinkcat"
)

// fill returns a byte slice of length n whose value at index i identifies
// that original offset, so a simulated Commit's output can be checked for
// both content and ordering without touching a real file.
func fill(n uint64) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 256)
	}
	return b
}

// simulate applies ops against an in-memory model of the original file
// (built by fill) and returns the concatenated bytes written to the sink
// in operation order, plus the final model length. It mirrors exactly
// what Executor.Commit does against a real file, without touching disk.
func simulate(t *testing.T, original []byte, ops []shrinkcat.Operation) (output []byte, finalLen uint64) {
	t.Helper()

	model := append([]byte(nil), original...)
	finalLen = uint64(len(model))
	var lastTruncate uint64 = finalLen + 1
	first := true

	for _, op := range ops {
		if op.DataChunk.End > uint64(len(model)) {
			t.Fatalf("op %d: data chunk %s exceeds current length %d", op.ChunkNo, op.DataChunk, len(model))
		}
		output = append(output, model[op.DataChunk.Start:op.DataChunk.End]...)

		if op.SrcChunk != nil {
			src := *op.SrcChunk
			if src.End > uint64(len(model)) {
				t.Fatalf("op %d: src chunk %s exceeds current length %d", op.ChunkNo, src, len(model))
			}
			if src.Len() != op.DataChunk.Len() {
				t.Fatalf("op %d: src/data length mismatch %d vs %d", op.ChunkNo, src.Len(), op.DataChunk.Len())
			}
			copy(model[op.DataChunk.Start:op.DataChunk.End], model[src.Start:src.End])
		}

		if !first && op.TruncateTo > lastTruncate {
			t.Fatalf("op %d: truncate_to %d increased past previous %d", op.ChunkNo, op.TruncateTo, lastTruncate)
		}
		first = false
		lastTruncate = op.TruncateTo

		model = model[:op.TruncateTo]
	}

	return output, uint64(len(model))
}

func TestRealizeScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		chunkSize uint64
		fileSize  uint64
		wantOps   int
	}{
		// Scenario counts for the two middle-anomaly cases (C=2,N=11 and
		// C=5,N=19) are one higher than the source material's naive count:
		// the anomalous M-left op is split into an aligned emit+copy and a
		// trailing emit-only op instead of patching the copy length at
		// commit time. See realize.go and DESIGN.md.
		{"no middle", 10, 100, 10},
		{"whole file is middle", 1, 1, 1},
		{"single chunk each side", 1, 2, 2},
		{"odd middle, anomaly split", 2, 11, 7},
		{"odd middle, wider chunk, anomaly split", 5, 19, 5},
		{"one-byte middle", 100, 1001, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plan, err := shrinkcat.Plan(tt.chunkSize, tt.fileSize)
			if err != nil {
				t.Fatalf("Plan() error = %v", err)
			}

			ops, err := shrinkcat.Realize(plan)
			if err != nil {
				t.Fatalf("Realize() error = %v", err)
			}

			if len(ops) != tt.wantOps {
				t.Fatalf("len(ops) = %d, want %d", len(ops), tt.wantOps)
			}

			original := fill(tt.fileSize)
			output, finalLen := simulate(t, original, ops)

			if string(output) != string(original) {
				t.Errorf("reconstructed output does not match original byte order")
			}
			if finalLen != 0 {
				t.Errorf("final model length = %d, want 0", finalLen)
			}
		})
	}
}

func TestRealizeOperationLimit(t *testing.T) {
	t.Parallel()

	plan, err := shrinkcat.Plan(1, 100)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	_, err = shrinkcat.Realize(plan, shrinkcat.WithOperationLimit(3))
	if err == nil {
		t.Fatal("Realize() expected error, got nil")
	}
}

func TestRealizeMiddleAnomalyCopyDestinations(t *testing.T) {
	t.Parallel()

	// C=2, N=11: every op that carries a SrcChunk must copy into exactly
	// its own DataChunk, even across the anomaly split.
	plan, err := shrinkcat.Plan(2, 11)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	ops, err := shrinkcat.Realize(plan)
	if err != nil {
		t.Fatalf("Realize() error = %v", err)
	}

	for _, op := range ops {
		if op.SrcChunk != nil && op.SrcChunk.Len() != op.DataChunk.Len() {
			t.Errorf("op %d: src len %d != data len %d", op.ChunkNo, op.SrcChunk.Len(), op.DataChunk.Len())
		}
	}
}
