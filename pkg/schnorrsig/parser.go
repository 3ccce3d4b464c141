package schnorrsig

import (
	"errors"

	btcschnorr "github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mahdiidarabi/schnorr-sig/internal/parser"
)

var errSTooBig = errors.New("s is not below the group order")

// ParsePublicKey decodes a hex x-only public key (optionally 0x-prefixed).
// The x-coordinate must be below the field prime and lie on the curve.
// Failures match ErrInvalidPublicKey.
func ParsePublicKey(s string) (*PublicKey, error) {
	b, err := parser.DecodeFixed(s, PublicKeySize)
	if err != nil {
		return nil, newParseError(FieldPublicKey, s, err)
	}
	key, err := btcschnorr.ParsePubKey(b)
	if err != nil {
		return nil, newParseError(FieldPublicKey, s, err)
	}
	return &PublicKey{key: key}, nil
}

// ParseSignature decodes a hex signature R.x || s (optionally 0x-prefixed).
// R.x must be below the field prime and s below the group order.
// Failures match ErrInvalidSignature.
func ParseSignature(s string) (*Signature, error) {
	b, err := parser.DecodeFixed(s, SignatureSize)
	if err != nil {
		return nil, newParseError(FieldSignature, s, err)
	}
	// btcschnorr reduces s mod n instead of rejecting it.
	var sc secp256k1.ModNScalar
	if sc.SetByteSlice(b[32:]) {
		return nil, newParseError(FieldSignature, s, errSTooBig)
	}
	sig, err := btcschnorr.ParseSignature(b)
	if err != nil {
		return nil, newParseError(FieldSignature, s, err)
	}
	return &Signature{sig: sig}, nil
}

// ParseMessage decodes a hex message (optionally 0x-prefixed). The empty
// string is the empty message. Failures match ErrInvalidMessage.
func ParseMessage(s string) (Message, error) {
	b, err := parser.Decode(s)
	if err != nil {
		return Message{}, newParseError(FieldMessage, s, err)
	}
	return Message{data: b}, nil
}
