package schnorrsig

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Verify reports whether sig is a valid signature of msg under pub.
//
// It checks R = s*G - e*P where e = H_challenge(R.x || P.x || m); the
// signature is valid iff R is not the point at infinity, R.y is even and
// R.x equals the signature's R.x. Verification is deterministic.
func (s *Scheme) Verify(pub *PublicKey, msg Message, sig *Signature) bool {
	if pub == nil || pub.key == nil || sig == nil || sig.sig == nil {
		return false
	}

	r, sc := sig.components()
	rx := r.Bytes()
	e := challenge(rx[:], pub.Bytes(), msg.data)

	var p, sG, eP, rPoint secp256k1.JacobianPoint
	pub.key.AsJacobian(&p)
	secp256k1.ScalarBaseMultNonConst(&sc, &sG)
	e.Negate()
	secp256k1.ScalarMultNonConst(&e, &p, &eP)
	secp256k1.AddNonConst(&sG, &eP, &rPoint)

	if (rPoint.X.IsZero() && rPoint.Y.IsZero()) || rPoint.Z.IsZero() {
		return false
	}
	rPoint.ToAffine()
	if rPoint.Y.IsOdd() {
		return false
	}
	return rPoint.X.Equals(&r)
}

// VerifyEncoded parses the three hex inputs and verifies the signature.
//
// Args:
//   - publicKey: 64 hex chars, x-only public key.
//   - signature: 128 hex chars, R.x || s.
//   - message: Hex-encoded message bytes (may be empty).
//
// Returns:
//   - valid: The verification result. An invalid signature is not an error.
//   - err: A *ParseError for the first input that fails to parse.
func (s *Scheme) VerifyEncoded(publicKey, signature, message string) (bool, error) {
	pub, err := ParsePublicKey(publicKey)
	if err != nil {
		return false, err
	}
	sig, err := ParseSignature(signature)
	if err != nil {
		return false, err
	}
	msg, err := ParseMessage(message)
	if err != nil {
		return false, err
	}
	return s.Verify(pub, msg, sig), nil
}
