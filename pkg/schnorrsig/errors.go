package schnorrsig

import (
	"errors"
	"fmt"
)

// Sentinel errors. Parse failures match exactly one of the first three with
// errors.Is.
var (
	// ErrInvalidPublicKey indicates the public key is not valid hex or is not
	// the x-coordinate of a point on the curve.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidMessage indicates the message is not valid hex.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrInvalidSignature indicates the signature is not a well-formed
	// 64-byte (R.x, s) pair.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrEntropyFailure indicates the entropy source failed or never produced
	// a usable value.
	ErrEntropyFailure = errors.New("entropy source failure")
)

// Field names an encoded input.
type Field int

const (
	// FieldPublicKey is the x-only public key.
	FieldPublicKey Field = iota + 1
	// FieldSignature is the (R.x, s) signature.
	FieldSignature
	// FieldMessage is the hex-encoded message.
	FieldMessage
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldPublicKey:
		return "public key"
	case FieldSignature:
		return "signature"
	case FieldMessage:
		return "message"
	default:
		return "unknown field"
	}
}

func (f Field) sentinel() error {
	switch f {
	case FieldPublicKey:
		return ErrInvalidPublicKey
	case FieldSignature:
		return ErrInvalidSignature
	case FieldMessage:
		return ErrInvalidMessage
	default:
		return errors.New("invalid input")
	}
}

// ParseError reports an input that could not be decoded.
type ParseError struct {
	Field Field  // Which input failed
	Input string // The raw input as given
	Err   error  // Underlying cause
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field.sentinel(), e.Err)
}

// Unwrap exposes both the field's sentinel and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Field.sentinel()}
	}
	return []error{e.Field.sentinel(), e.Err}
}

func newParseError(field Field, input string, err error) *ParseError {
	return &ParseError{Field: field, Input: input, Err: err}
}
