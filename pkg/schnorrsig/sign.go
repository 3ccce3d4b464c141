package schnorrsig

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var errSelfCheck = errors.New("signature failed self-verification")

// Sign creates a signature over msg with the keypair's secret.
//
// The nonce comes from the scheme's NonceGen. The result is verified before
// it is returned so that a computation fault cannot release a bad signature.
//
// Args:
//   - kp: Keypair created by GenerateKeypair or NewKeypair.
//   - msg: Message to sign, usually from PublicMessage or ParseMessage.
//
// Returns:
//   - The signature, or an error (ErrEntropyFailure when the nonce strategy
//     cannot read its randomness).
func (s *Scheme) Sign(kp *Keypair, msg Message) (*Signature, error) {
	if kp == nil || kp.public == nil {
		return nil, errNilKey
	}
	if kp.secret.IsZero() {
		return nil, errZeroSecret
	}

	aux, err := s.nonces.AuxRand(s.entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to draw nonce randomness (%s): %w", s.nonces.Name(), err)
	}

	pubX := kp.public.Bytes()
	k, err := deriveNonce(&kp.secret, pubX, msg.data, aux)
	if err != nil {
		return nil, err
	}
	defer k.Zero()

	var r secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&k, &r)
	r.ToAffine()
	if r.Y.IsOdd() {
		k.Negate()
	}

	rx := r.X.Bytes()
	e := challenge(rx[:], pubX, msg.data)

	// s = k + e*d mod n
	var sc secp256k1.ModNScalar
	sc.Mul2(&e, &kp.secret).Add(&k)

	sig := newSignature(&r.X, &sc)
	if !s.Verify(kp.public, msg, sig) {
		return nil, errSelfCheck
	}
	return sig, nil
}
