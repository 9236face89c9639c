package shrinkcat

import (
	"io"
	"os"
)

// DefaultBufferSize is the buffered I/O chunk size range primitives use
// when streaming bytes between the file and the sink, or between two
// in-file offsets during a copy.
const DefaultBufferSize = 1 << 20 // 1 MiB

// validateRange rejects a range with end <= start.
func validateRange(r Range) error {
	if r.End <= r.Start {
		return ErrInvalidRange
	}
	return nil
}

// checkInBounds rejects a range that extends past currentLen.
func checkInBounds(r Range, currentLen uint64) error {
	if r.End > currentLen {
		return ErrOutOfBounds
	}
	return nil
}

// emitRange reads bytes [rng.Start, rng.End) from the file at path and
// writes them to sink, in bufSize-sized slices. It fails on an invalid or
// out-of-bounds range, or on a short read.
func emitRange(path string, rng Range, sink io.Writer, bufSize int) error {
	if err := validateRange(rng); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return ioError("open", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return ioError("stat", path, err)
	}
	if err := checkInBounds(rng, uint64(fi.Size())); err != nil {
		return err
	}

	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	buf := make([]byte, bufSize)

	remaining := rng.Len()
	offset := int64(rng.Start)

	for remaining > 0 {
		want := uint64(len(buf))
		if remaining < want {
			want = remaining
		}

		n, err := f.ReadAt(buf[:want], offset)
		if n > 0 {
			if _, werr := sink.Write(buf[:n]); werr != nil {
				return ioError("write", path, werr)
			}
			offset += int64(n)
			remaining -= uint64(n)
		}
		if err != nil {
			if err == io.EOF {
				// A concurrent shrink of the file underneath us (out of
				// scope per the single-writer model) could land here with
				// remaining > 0; that is a short read, not an I/O failure.
				if remaining == 0 {
					break
				}
				return ErrShortReadOrWrite
			}
			return ioError("read", path, err)
		}
		if n == 0 {
			return ErrShortReadOrWrite
		}
	}

	return nil
}

// copyRange reads bytes [src.Start, src.End) from the file at path and
// writes them to [dst.Start, dst.End) within the same file. It requires
// src and dst to have equal length, to be disjoint, and to lie within the
// file's current length.
func copyRange(path string, src, dst Range) error {
	if err := validateRange(src); err != nil {
		return err
	}
	if err := validateRange(dst); err != nil {
		return err
	}
	if src.Len() != dst.Len() {
		return ErrSizeMismatch
	}
	if overlap(src, dst) {
		return ErrRangeOverlap
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return ioError("open", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return ioError("stat", path, err)
	}
	currentLen := uint64(fi.Size())
	if err := checkInBounds(src, currentLen); err != nil {
		return err
	}
	if err := checkInBounds(dst, currentLen); err != nil {
		return err
	}

	buf := make([]byte, DefaultBufferSize)
	remaining := src.Len()
	srcOff := int64(src.Start)
	dstOff := int64(dst.Start)

	for remaining > 0 {
		want := uint64(len(buf))
		if remaining < want {
			want = remaining
		}

		n, err := f.ReadAt(buf[:want], srcOff)
		if uint64(n) != want {
			if err != nil && err != io.EOF {
				return ioError("read", path, err)
			}
			return ErrShortReadOrWrite
		}

		wn, werr := f.WriteAt(buf[:n], dstOff)
		if werr != nil {
			return ioError("write", path, werr)
		}
		if wn != n {
			return ErrShortReadOrWrite
		}

		srcOff += int64(n)
		dstOff += int64(n)
		remaining -= uint64(n)
	}

	return nil
}

// TruncateToLength sets the file at path to exactly length bytes, removing
// it entirely when length is 0. It is exported for test harnesses (the
// CLI's --test-truncate-file-size flag) that need the primitive outside of
// a Commit.
func TruncateToLength(path string, length uint64) error {
	return truncateToLength(path, length)
}

// truncateToLength sets the file at path to exactly length bytes, removing
// it entirely when length is 0. It fails if the file's current length is
// already smaller than length.
func truncateToLength(path string, length uint64) error {
	fi, err := os.Stat(path)
	if err != nil {
		return ioError("stat", path, err)
	}
	currentLen := uint64(fi.Size())

	if currentLen < length {
		return ErrTruncateUnderflow
	}

	if length == 0 {
		if err := os.Remove(path); err != nil {
			return ioError("remove", path, err)
		}
		return nil
	}

	if currentLen == length {
		return nil
	}

	if err := os.Truncate(path, int64(length)); err != nil {
		return ioError("truncate", path, err)
	}
	return nil
}
