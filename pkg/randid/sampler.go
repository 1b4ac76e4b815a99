package randid

import "math/bits"

// Int returns an integer uniformly distributed over [0, n).
//
// Draws are masked to the smallest bit width that can hold n-1 and rejected
// when they fall outside the range, which avoids the modulo bias of
// byte % n. Each draw is accepted with probability above one half, so the
// loop is left unbounded.
func (g *Generator) Int(n int) (int, error) {
	if n < 1 {
		return 0, cryptoErrorf("max must be a positive integer, got %d", n)
	}
	if n == 1 {
		return 0, nil
	}

	var (
		bitsNeeded  = bits.Len(uint(n - 1))
		bytesNeeded = (bitsNeeded + 7) / 8
		mask        = uint64(1)<<bitsNeeded - 1
	)

	for {
		b, err := g.src.Bytes(bytesNeeded)
		if err != nil {
			return 0, err
		}

		var v uint64
		for _, x := range b {
			v = v<<8 | uint64(x)
		}
		v &= mask

		if v < uint64(n) {
			return int(v), nil
		}
	}
}
