package randid

import (
	"bytes"
	"sync"
)

// countingSource wraps a Source and records how much entropy was requested.
type countingSource struct {
	mu    sync.Mutex
	src   Source
	calls int
	bytes int
}

func newCountingSource(src Source) *countingSource {
	if src == nil {
		src = SystemSource{}
	}
	return &countingSource{src: src}
}

func (c *countingSource) Bytes(n int) ([]byte, error) {
	c.mu.Lock()
	c.calls++
	c.bytes += n
	c.mu.Unlock()
	return c.src.Bytes(n)
}

// fixedSource replays the given bytes in order.
func fixedSource(b ...byte) *countingSource {
	return newCountingSource(ReaderSource{R: bytes.NewReader(b)})
}
