package schnorrsig

import (
	"errors"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var errZeroNonce = errors.New("derived nonce is zero")

// NonceGen supplies the auxiliary randomness mixed into each signing nonce.
//
// Every strategy feeds the same BIP-340 derivation, so the choice only
// affects which signature is produced, never whether it verifies.
type NonceGen interface {
	// AuxRand returns 32 bytes of auxiliary randomness, drawing from entropy
	// if the strategy needs it.
	AuxRand(entropy io.Reader) ([32]byte, error)

	// Name returns a human-readable name for this strategy.
	Name() string
}

// SyntheticNonce draws fresh auxiliary randomness for every signature. The
// nonce still depends on the secret key and message, so a weak entropy source
// does not by itself leak the key.
type SyntheticNonce struct{}

// AuxRand reads 32 bytes from entropy.
func (SyntheticNonce) AuxRand(entropy io.Reader) ([32]byte, error) {
	var aux [32]byte
	if err := readEntropy(entropy, aux[:]); err != nil {
		return aux, err
	}
	return aux, nil
}

// Name implements NonceGen.
func (SyntheticNonce) Name() string {
	return "synthetic"
}

// DeterministicNonce uses all-zero auxiliary randomness. Signing the same
// message with the same key always yields the same signature.
type DeterministicNonce struct{}

// AuxRand returns 32 zero bytes.
func (DeterministicNonce) AuxRand(io.Reader) ([32]byte, error) {
	return [32]byte{}, nil
}

// Name implements NonceGen.
func (DeterministicNonce) Name() string {
	return "deterministic"
}

// deriveNonce computes k = H_nonce((d XOR H_aux(aux)) || P.x || m) mod n.
func deriveNonce(d *secp256k1.ModNScalar, pubX, msg []byte, aux [32]byte) (secp256k1.ModNScalar, error) {
	dBytes := d.Bytes()
	defer clear(dBytes[:])

	auxHash := chainhash.TaggedHash(chainhash.TagBIP0340Aux, aux[:])
	var t [32]byte
	defer clear(t[:])
	for i := range t {
		t[i] = dBytes[i] ^ auxHash[i]
	}

	h := chainhash.TaggedHash(chainhash.TagBIP0340Nonce, t[:], pubX, msg)
	var k secp256k1.ModNScalar
	k.SetBytes((*[32]byte)(h))
	if k.IsZero() {
		return k, errZeroNonce
	}
	return k, nil
}

// challenge computes e = H_challenge(R.x || P.x || m) mod n.
func challenge(rx, pubX, msg []byte) secp256k1.ModNScalar {
	h := chainhash.TaggedHash(chainhash.TagBIP0340Challenge, rx, pubX, msg)
	var e secp256k1.ModNScalar
	e.SetBytes((*[32]byte)(h))
	return e
}
