package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mahdiidarabi/schnorr-sig/internal/config"
)

// Text results, printed verbatim in text mode.
const (
	validSignatureText   = "Valid Schnorr signature!"
	invalidSignatureText = "Invalid Schnorr signature"
)

type generateResult struct {
	PublicKey string `json:"public_key" yaml:"public_key"`
}

type verifyResult struct {
	Valid bool `json:"valid" yaml:"valid"`
}

// writeResult prints v in the requested format, or text in text mode.
func writeResult(w io.Writer, format, text string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, text)
		return err
	}
}
