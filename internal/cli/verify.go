package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/schnorr-sig/internal/logging"
	"github.com/mahdiidarabi/schnorr-sig/pkg/schnorrsig"
)

// AddVerifyCommand adds the verify subcommand.
func AddVerifyCommand(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "verify <public_key> <signature> <message>",
		Short: "Verify a Schnorr signature",
		Long: `Verify a Schnorr signature over a hex-encoded message.

  public_key  x-only public key, 64 hex chars
  signature   R.x || s, 128 hex chars
  message     message bytes in hex (may be empty)

An invalid signature is a normal result and exits with status 0. Malformed
input exits with status 2.`,
		Example: `  schnorr-sig verify <public_key> <signature> 68656c6c6f`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd, args[0], args[1], args[2])
		},
	})
}

func (a *app) runVerify(cmd *cobra.Command, publicKey, signature, message string) error {
	valid, err := a.newScheme().VerifyEncoded(publicKey, signature, message)
	if err != nil {
		var perr *schnorrsig.ParseError
		if errors.As(err, &perr) {
			// Raw arguments may hold a pasted secret key.
			a.logger.Debug().
				Err(err).
				Stringer("field", perr.Field).
				Str("input", logging.Redact(perr.Input)).
				Msg("verification input rejected")
		}
		return err
	}

	a.logger.Debug().
		Str("public_key", publicKey).
		Bool("valid", valid).
		Msg("signature verified")

	text := invalidSignatureText
	if valid {
		text = validSignatureText
	}
	return writeResult(cmd.OutOrStdout(), a.cfg.Output, text, verifyResult{Valid: valid})
}
