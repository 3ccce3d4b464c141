package schnorrsig

import (
	"crypto/rand"
	"io"
)

// Scheme fixes the hash function (SHA-256 with BIP-340 tags) and the nonce
// strategy shared by key generation, signing and verification.
//
// Configure a Scheme before use; afterwards it is read-only and may be shared
// between goroutines as long as its entropy source allows concurrent reads.
type Scheme struct {
	entropy io.Reader
	nonces  NonceGen
}

// NewScheme creates a scheme backed by crypto/rand with synthetic nonces.
func NewScheme() *Scheme {
	return &Scheme{
		entropy: rand.Reader,
		nonces:  SyntheticNonce{},
	}
}

// WithEntropy sets the entropy source used for key generation and for
// auxiliary nonce randomness.
func (s *Scheme) WithEntropy(r io.Reader) *Scheme {
	s.entropy = r
	return s
}

// WithNonceGen sets the nonce strategy. A nil strategy is ignored.
func (s *Scheme) WithNonceGen(g NonceGen) *Scheme {
	if g != nil {
		s.nonces = g
	}
	return s
}

// NonceGen returns the configured nonce strategy.
func (s *Scheme) NonceGen() NonceGen {
	return s.nonces
}
