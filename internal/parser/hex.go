// Package parser decodes the hex encodings accepted on the command line into
// raw bytes. Both "0x" and "0X" prefixes are accepted.
package parser

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput is returned by DecodeFixed when the input is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrLength is returned by DecodeFixed when the decoded length is wrong.
	ErrLength = errors.New("unexpected length")
)

// TrimPrefix removes a leading 0x or 0X.
func TrimPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// Decode decodes a hex string of any length, including the empty string.
func Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(TrimPrefix(s))
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex: %w", err)
	}
	return b, nil
}

// DecodeFixed decodes a hex string that must hold exactly size bytes.
//
// Args:
//   - s: Hex string, optionally 0x-prefixed.
//   - size: Required decoded length in bytes.
//
// Returns:
//   - The decoded bytes, or an error wrapping ErrEmptyInput, ErrLength or the
//     hex decoding failure.
func DecodeFixed(s string, size int) ([]byte, error) {
	if TrimPrefix(s) == "" {
		return nil, ErrEmptyInput
	}
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrLength, size, len(b))
	}
	return b, nil
}
