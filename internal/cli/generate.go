package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddGenerateCommand adds the generate subcommand.
func AddGenerateCommand(root *cobra.Command, a *app) {
	root.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Generate a random keypair and print its public key",
		Long: `Generate a random secp256k1 keypair from the system's secure random source
and print the x-only public key as 64 hex characters. The secret key is never
printed or stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd)
		},
	})
}

func (a *app) runGenerate(cmd *cobra.Command) error {
	kp, err := a.newScheme().GenerateKeypair()
	if err != nil {
		a.logger.Error().Err(err).Msg("key generation failed")
		return fmt.Errorf("failed to generate keypair: %w", err)
	}
	defer kp.Zero()

	pub := kp.PublicKey().String()
	a.logger.Debug().Str("public_key", pub).Msg("keypair generated")

	return writeResult(cmd.OutOrStdout(), a.cfg.Output, "Public key: "+pub, generateResult{PublicKey: pub})
}
