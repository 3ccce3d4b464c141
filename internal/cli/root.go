// Package cli provides the command-line interface for schnorr-sig.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mahdiidarabi/schnorr-sig/internal/config"
	"github.com/mahdiidarabi/schnorr-sig/internal/logging"
	"github.com/mahdiidarabi/schnorr-sig/pkg/schnorrsig"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app is the per-invocation state shared by subcommands.
type app struct {
	cfg       *config.Config
	logger    zerolog.Logger
	logCloser io.Closer

	// newScheme builds a fresh scheme for each operation.
	newScheme func() *schnorrsig.Scheme
}

func newApp() *app {
	return &app{
		logger:    zerolog.Nop(),
		logCloser: nopCloser{},
		newScheme: schnorrsig.NewScheme,
	}
}

// newRootCmd creates the root command. Running it without a subcommand
// prints the help text.
func newRootCmd(flags *GlobalFlags, info BuildInfo, a *app) *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "schnorr-sig",
		Short: "Generate Schnorr keypairs and verify Schnorr signatures",
		Long: `schnorr-sig generates secp256k1 keypairs and verifies BIP-340 style Schnorr
signatures over arbitrary hex-encoded messages.

Public keys are 32-byte x-only points (64 hex chars). Signatures are the
64-byte concatenation R.x || s (128 hex chars).`,
		Version: formatVersion(info),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, v, flags)
		},
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)
	AddGenerateCommand(cmd, a)
	AddVerifyCommand(cmd, a)

	return cmd
}

// init loads configuration and builds the logger.
func (a *app) init(cmd *cobra.Command, v *viper.Viper, flags *GlobalFlags) error {
	if err := BindGlobalFlags(v, cmd); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg, err := config.Load(v, flags.ConfigFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, a.logCloser = logging.New(logging.Options{
		Verbose:    cfg.Verbose,
		Quiet:      cfg.Quiet,
		Console:    cmd.ErrOrStderr(),
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	cmd.SetContext(a.logger.WithContext(cmd.Context()))

	a.logger.Debug().
		Str("command", cmd.Name()).
		Str("output", cfg.Output).
		Msg("configuration loaded")
	return nil
}

func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	a := newApp()
	defer func() { _ = a.logCloser.Close() }()

	cmd := newRootCmd(flags, info, a)
	return cmd.ExecuteContext(ctx)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
