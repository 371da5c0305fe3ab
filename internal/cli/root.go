package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/unitconv/internal/config"
	"github.com/roach88/unitconv/internal/history"
	"github.com/roach88/unitconv/internal/session"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	History string // "memory" | "sqlite"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the unitconv CLI.
// Flag defaults come from cfg.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "unitconv",
		Short: "unitconv - length, mass and temperature conversions",
		Long: `Convert values between units of length, mass and temperature,
and keep a history of saved conversions for the current session.

Histories are never written to disk: they end with the session.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if !history.IsValidBackend(opts.History) {
				return fmt.Errorf("invalid history backend %q: must be one of %v", opts.History, history.ValidBackends)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", cfg.Verbose, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.History, "history", cfg.History, "history backend (memory|sqlite)")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewUnitsCommand(opts))
	cmd.AddCommand(NewSessionCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds the formatter used by every command.
// Verbose logs go to stderr to avoid corrupting JSON output.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// openSession starts a session on a fresh store of the configured backend.
func openSession(opts *RootOptions, formatter *OutputFormatter) (*session.Session, error) {
	store, err := history.Open(opts.History)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open history", err)
	}
	s := session.New(store)
	formatter.VerboseLog("session %s (history=%s)", s.ID(), opts.History)
	return s, nil
}
