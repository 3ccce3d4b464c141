package schnorrsig

import (
	"fmt"
	"io"
	"math/rand/v2"
)

// FixedSeedEntropy returns a reproducible entropy source seeded with seed.
// It is meant for tests and is not safe for concurrent use.
func FixedSeedEntropy(seed [32]byte) io.Reader {
	return rand.NewChaCha8(seed)
}

// readEntropy fills buf from r, mapping any failure to ErrEntropyFailure.
func readEntropy(r io.Reader, buf []byte) error {
	if r == nil {
		return fmt.Errorf("%w: no entropy source", ErrEntropyFailure)
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("%w: %w", ErrEntropyFailure, err)
	}
	return nil
}
