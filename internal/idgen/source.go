package idgen

import (
	"fmt"
	"io"
	"os"

	"github.com/hay-kot/shortid/internal/core/config"
	"github.com/hay-kot/shortid/pkg/randid"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenSource returns the random source selected by the configuration. A
// non-system source must be a character device. The returned closer releases
// the opened device.
func OpenSource(cfg *config.Config) (randid.Source, io.Closer, error) {
	if cfg.UsesSystemSource() {
		src, err := randid.DetectSource()
		if err != nil {
			return nil, nil, err
		}
		return src, nopCloser{}, nil
	}

	if err := randid.CheckDevice(cfg.Source); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open %s: %w", randid.ErrCryptoGeneration, cfg.Source, err)
	}

	return randid.ReaderSource{R: f}, f, nil
}
