package schnorrsig

import (
	"errors"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

// testSeed returns a fixed seed that differs per label.
func testSeed(label byte) [32]byte {
	var seed [32]byte
	for i := range seed {
		seed[i] = label + byte(i)
	}
	return seed
}

// newTestScheme returns a reproducible scheme for a given seed label.
func newTestScheme(label byte) *Scheme {
	return NewScheme().WithEntropy(FixedSeedEntropy(testSeed(label)))
}

// mustKeypair generates a keypair or fails the test.
func mustKeypair(t *testing.T, scheme *Scheme) *Keypair {
	t.Helper()
	kp, err := scheme.GenerateKeypair()
	require.NoError(t, err)
	return kp
}

// keypairFromInt builds the keypair for a small secret.
func keypairFromInt(t *testing.T, v uint32) *Keypair {
	t.Helper()
	var d secp256k1.ModNScalar
	d.SetInt(v)
	kp, err := NewKeypair(&d)
	require.NoError(t, err)
	return kp
}

// zeroReader yields zero bytes forever.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

// constReader yields the same byte forever.
type constReader byte

func (c constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

var errBrokenSource = errors.New("broken source")

// failingReader always errors.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errBrokenSource
}
