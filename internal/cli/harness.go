package cli

import (
	"crypto/rand"
	"math/big"
	"os"

	"github.com/kalbasit/shrinkcat"
)

// fixtureBufferSize mirrors the original test harness's 1,000,000-byte
// write buffer for fixture generation.
const fixtureBufferSize = 1_000_000

const asciiAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CreateZeroFile writes a file of length bytes, all zero, to path.
func CreateZeroFile(path string, length uint64) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return &shrinkcat.IOError{Op: "create", Path: path, Err: err}
	}
	defer f.Close()

	buf := make([]byte, fixtureBufferSize)
	return writeInChunks(f, buf, length)
}

// CreateRandomFile writes a file of length cryptographically random bytes
// to path.
func CreateRandomFile(path string, length uint64) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return &shrinkcat.IOError{Op: "create", Path: path, Err: err}
	}
	defer f.Close()

	buf := make([]byte, fixtureBufferSize)
	remaining := length
	for remaining > 0 {
		n := uint64(len(buf))
		if remaining < n {
			n = remaining
		}
		if _, err := rand.Read(buf[:n]); err != nil {
			return &shrinkcat.IOError{Op: "read-random", Path: path, Err: err}
		}
		if _, err := f.Write(buf[:n]); err != nil {
			return &shrinkcat.IOError{Op: "write", Path: path, Err: err}
		}
		remaining -= n
	}
	return nil
}

// CreateASCIIFile writes a file of length printable-ASCII bytes to path.
// Determinism doesn't matter here the way it might for the random fixture,
// so this uses math/big-backed crypto/rand indices rather than pulling in
// math/rand for what is otherwise the same buffered-write shape.
func CreateASCIIFile(path string, length uint64) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return &shrinkcat.IOError{Op: "create", Path: path, Err: err}
	}
	defer f.Close()

	buf := make([]byte, fixtureBufferSize)
	remaining := length
	for remaining > 0 {
		n := uint64(len(buf))
		if remaining < n {
			n = remaining
		}
		for i := uint64(0); i < n; i++ {
			idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(asciiAlphabet))))
			if err != nil {
				return &shrinkcat.IOError{Op: "read-random", Path: path, Err: err}
			}
			buf[i] = asciiAlphabet[idx.Int64()]
		}
		if _, err := f.Write(buf[:n]); err != nil {
			return &shrinkcat.IOError{Op: "write", Path: path, Err: err}
		}
		remaining -= n
	}
	return nil
}

func writeInChunks(f *os.File, buf []byte, length uint64) error {
	remaining := length
	for remaining > 0 {
		n := uint64(len(buf))
		if remaining < n {
			n = remaining
		}
		if _, err := f.Write(buf[:n]); err != nil {
			return &shrinkcat.IOError{Op: "write", Path: f.Name(), Err: err}
		}
		remaining -= n
	}
	return nil
}
