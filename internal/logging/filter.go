package logging

import (
	"regexp"

	"github.com/rs/zerolog"
)

// RedactedValue replaces secret material in log output.
const RedactedValue = "[REDACTED]"

// secretPatterns match a labelled 32-byte hex value. A bare 64-char hex
// string is not matched since public keys look the same.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(secret|private)[_ -]?(key)?\s*[:=]\s*"?(0x)?[0-9a-f]{64}"?`),
	regexp.MustCompile(`(?i)-----BEGIN[A-Z\s]+PRIVATE KEY-----`),
}

// SecretHook marks log events whose message appears to contain a secret key.
// zerolog hooks cannot rewrite the message, so call sites use Redact.
type SecretHook struct{}

// NewSecretHook creates a SecretHook.
func NewSecretHook() *SecretHook {
	return &SecretHook{}
}

// Run implements zerolog.Hook.
func (h *SecretHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSecret(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSecret reports whether s matches a secret pattern.
func ContainsSecret(s string) bool {
	for _, p := range secretPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Redact replaces every secret pattern in s with RedactedValue.
func Redact(s string) string {
	for _, p := range secretPatterns {
		s = p.ReplaceAllString(s, RedactedValue)
	}
	return s
}
