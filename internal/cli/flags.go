package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mahdiidarabi/schnorr-sig/internal/config"
	"github.com/mahdiidarabi/schnorr-sig/pkg/schnorrsig"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution, including a signature
	// that verified as invalid.
	ExitSuccess = 0
	// ExitError indicates a general error such as an entropy failure.
	ExitError = 1
	// ExitInvalidInput indicates malformed arguments or flags.
	ExitInvalidInput = 2
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	Output     string
	Verbose    bool
	Quiet      bool
	ConfigFile string
	LogFile    string
}

// AddGlobalFlags adds persistent flags to the root command.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.Output, "output", "o", config.OutputText, "output format (text|json|yaml)")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "log warnings and errors only")
	pf.StringVar(&flags.ConfigFile, "config", "", "path to a YAML config file")
	pf.StringVar(&flags.LogFile, "log-file", "", "also write JSON logs to this file")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds the root's persistent flags to viper keys so that
// explicitly set flags override the config file and environment.
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	rootFlags := cmd.Root().PersistentFlags()

	bindings := map[string]string{
		"output":   "output",
		"verbose":  "verbose",
		"quiet":    "quiet",
		"log.file": "log-file",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, rootFlags.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// ExitCodeForError maps an error returned by Execute to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var perr *schnorrsig.ParseError
	if errors.As(err, &perr) || errors.Is(err, config.ErrInvalidOutputFormat) {
		return ExitInvalidInput
	}
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}
	return ExitError
}

// isInvalidInputError catches cobra's own argument and flag errors.
func isInvalidInputError(msg string) bool {
	patterns := []string{
		"unknown command",
		"unknown flag",
		"unknown shorthand flag",
		"accepts ",
		"flag needs an argument",
		"invalid argument",
		"if any flags in the group",
		"are mutually exclusive",
	}
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
