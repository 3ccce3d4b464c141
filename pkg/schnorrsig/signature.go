package schnorrsig

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	btcschnorr "github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Encoded sizes in bytes.
const (
	PublicKeySize = 32 // x-only public key
	SignatureSize = 64 // R.x || s
)

// PublicKey is an x-only verification key. The underlying point always has
// an even Y coordinate.
type PublicKey struct {
	key *btcec.PublicKey
}

// PublicKeyFromECKey converts a full secp256k1 point to its x-only form.
// A point with odd Y maps to its negation, as BIP-340 prescribes.
func PublicKeyFromECKey(key *btcec.PublicKey) (*PublicKey, error) {
	if key == nil {
		return nil, newParseError(FieldPublicKey, "", errNilKey)
	}
	lifted, err := btcschnorr.ParsePubKey(btcschnorr.SerializePubKey(key))
	if err != nil {
		return nil, newParseError(FieldPublicKey, "", err)
	}
	return &PublicKey{key: lifted}, nil
}

// Bytes returns the 32-byte x-coordinate.
func (p *PublicKey) Bytes() []byte {
	return btcschnorr.SerializePubKey(p.key)
}

// String returns the lowercase hex x-only encoding.
func (p *PublicKey) String() string {
	return hex.EncodeToString(p.Bytes())
}

// ECPublicKey returns the even-Y point for use with btcec APIs.
func (p *PublicKey) ECPublicKey() *btcec.PublicKey {
	return p.key
}

// IsEqual reports whether both keys are the same point.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.key.IsEqual(other.key)
}

// Message is the byte string being signed. It is hashed raw into the
// challenge, without a tag or prehash.
type Message struct {
	data []byte
}

// PublicMessage wraps non-secret message bytes. The slice is copied.
func PublicMessage(data []byte) Message {
	return Message{data: bytes.Clone(data)}
}

// Bytes returns a copy of the message bytes.
func (m Message) Bytes() []byte {
	return bytes.Clone(m.data)
}

// Len returns the message length in bytes.
func (m Message) Len() int {
	return len(m.data)
}

// String returns the lowercase hex encoding of the message.
func (m Message) String() string {
	return hex.EncodeToString(m.data)
}

// Signature is a parsed (R.x, s) pair with R.x < p and s < n.
type Signature struct {
	sig *btcschnorr.Signature
}

func newSignature(r *secp256k1.FieldVal, s *secp256k1.ModNScalar) *Signature {
	return &Signature{sig: btcschnorr.NewSignature(r, s)}
}

// Bytes returns the 64-byte encoding R.x || s.
func (s *Signature) Bytes() []byte {
	return s.sig.Serialize()
}

// String returns the lowercase hex encoding (128 characters).
func (s *Signature) String() string {
	return hex.EncodeToString(s.Bytes())
}

// IsEqual reports whether both signatures encode the same pair.
func (s *Signature) IsEqual(other *Signature) bool {
	if s == nil || other == nil {
		return s == other
	}
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// components decodes R.x and s. Both were range checked when the signature
// was built, so neither can overflow here.
func (s *Signature) components() (secp256k1.FieldVal, secp256k1.ModNScalar) {
	raw := s.Bytes()
	var r secp256k1.FieldVal
	r.SetByteSlice(raw[:32])
	r.Normalize()
	var sc secp256k1.ModNScalar
	sc.SetByteSlice(raw[32:])
	return r, sc
}
