package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/unitconv/internal/script"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay a session script",
		Long: `Replay a YAML session script against a fresh session and print the transcript.

The script is validated against the built-in schema before any step runs.
Failed steps are part of the transcript and do not change the exit code.

Example script:
  name: quick
  steps:
    - convert: {category: Length, value: 1, from: Meter, to: Foot}
    - save: true
    - history: true`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runScript(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sc, err := script.Load(path)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}
	formatter.VerboseLog("loaded script %q with %d step(s)", sc.Name, len(sc.Steps))

	s, err := openSession(opts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	transcript, err := script.Run(cmd.Context(), sc, s)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(transcript)
	}
	fmt.Fprint(formatter.Writer, transcript)
	return nil
}
