package randid

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
)

// Source produces uniformly distributed random bytes.
type Source interface {
	// Bytes returns n random bytes. n must be at least 1.
	Bytes(n int) ([]byte, error)
}

// SystemSource reads from the host's cryptographically secure generator.
type SystemSource struct{}

// Bytes returns n bytes from crypto/rand.
func (SystemSource) Bytes(n int) ([]byte, error) {
	return readBytes(rand.Reader, n)
}

// ReaderSource reads from a caller supplied stream such as an opened
// /dev/urandom. The reader must be safe for concurrent use if the source is
// shared between goroutines.
type ReaderSource struct {
	R io.Reader
}

// Bytes returns the next n bytes of the underlying reader.
func (s ReaderSource) Bytes(n int) ([]byte, error) {
	return readBytes(s.R, n)
}

// DetectSource probes the host for a secure random facility and returns the
// source to use.
func DetectSource() (Source, error) {
	if rand.Reader == nil {
		return nil, cryptoErrorf("no secure random source available")
	}

	src := SystemSource{}
	if err := Probe(src); err != nil {
		return nil, err
	}

	return src, nil
}

// Probe draws a single byte from src to confirm it is usable.
func Probe(src Source) error {
	if src == nil {
		return cryptoErrorf("no secure random source available")
	}
	_, err := src.Bytes(1)
	return err
}

// CheckDevice verifies that path names a character device such as
// /dev/urandom. Regular files, directories and pipes are rejected: their bytes
// are not produced by a secure generator.
func CheckDevice(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCryptoGeneration, err)
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		return cryptoErrorf("%s is not a character device", path)
	}
	return nil
}

func readBytes(r io.Reader, n int) ([]byte, error) {
	if n < 1 {
		return nil, cryptoErrorf("byte count must be a positive integer, got %d", n)
	}
	if r == nil {
		return nil, cryptoErrorf("no secure random source available")
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoGeneration, err)
	}

	return b, nil
}
