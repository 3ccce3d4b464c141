package schnorrsig

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// maxScalarDraws bounds rejection sampling. An honest source needs more than
// one draw with probability about 2^-128.
const maxScalarDraws = 128

// GenerateKeypair creates a keypair whose secret is uniform over [1, n-1].
//
// Returns:
//   - The keypair, or an error wrapping ErrEntropyFailure when the entropy
//     source fails or keeps producing out-of-range values.
func (s *Scheme) GenerateKeypair() (*Keypair, error) {
	secret, err := s.randomScalar()
	if err != nil {
		return nil, err
	}
	defer secret.Zero()

	return NewKeypair(&secret)
}

// randomScalar draws 32-byte candidates until one lies in [1, n-1].
func (s *Scheme) randomScalar() (secp256k1.ModNScalar, error) {
	var (
		buf [32]byte
		k   secp256k1.ModNScalar
	)
	defer clear(buf[:])

	for i := 0; i < maxScalarDraws; i++ {
		if err := readEntropy(s.entropy, buf[:]); err != nil {
			return k, err
		}
		if overflow := k.SetByteSlice(buf[:]); !overflow && !k.IsZero() {
			return k, nil
		}
	}
	k.Zero()
	return k, fmt.Errorf("%w: no valid scalar after %d draws", ErrEntropyFailure, maxScalarDraws)
}
