package schnorrsig

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const redactedPlaceholder = "[redacted]"

var (
	errNilKey     = errors.New("nil key")
	errZeroSecret = errors.New("secret key must be nonzero")
)

// Keypair holds a secret scalar and its x-only public key.
//
// SECURITY WARNING: the secret never leaves the package. Call Zero when the
// keypair is no longer needed.
type Keypair struct {
	secret secp256k1.ModNScalar
	public *PublicKey
}

// NewKeypair derives the keypair for the given secret scalar.
//
// The stored secret is negated when needed so that the public point has an
// even Y coordinate; the x-only public key is the same either way.
func NewKeypair(secret *secp256k1.ModNScalar) (*Keypair, error) {
	if secret == nil {
		return nil, errNilKey
	}
	if secret.IsZero() {
		return nil, errZeroSecret
	}

	kp := &Keypair{}
	kp.secret.Set(secret)

	pub := secp256k1.NewPrivateKey(&kp.secret).PubKey()
	if pub.SerializeCompressed()[0] == secp256k1.PubKeyFormatCompressedOdd {
		kp.secret.Negate()
		pub = secp256k1.NewPrivateKey(&kp.secret).PubKey()
	}
	kp.public = &PublicKey{key: pub}
	return kp, nil
}

// PublicKey returns the x-only public key.
func (k *Keypair) PublicKey() *PublicKey {
	return k.public
}

// Zero wipes the secret scalar.
func (k *Keypair) Zero() {
	if k == nil {
		return
	}
	k.secret.Zero()
}

// String never includes the secret.
func (k *Keypair) String() string {
	if k == nil || k.public == nil {
		return "Keypair{}"
	}
	return fmt.Sprintf("Keypair{public: %s, secret: %s}", k.public, redactedPlaceholder)
}

// GoString keeps %#v from dumping the secret.
func (k *Keypair) GoString() string {
	return k.String()
}
