package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/unitconv/internal/script"
	"github.com/roach88/unitconv/internal/session"
)

const sessionHelp = `commands:
  convert <category> <value> <from> <to>
  save
  history
  units [category]
  help
  quit`

// NewSessionCommand creates the session command.
func NewSessionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run an interactive conversion session",
		Long: `Run an interactive conversion session reading commands from stdin.

Each line is one action:
  convert <category> <value> <from> <to>   compute a conversion
  save                                     save the last conversion
  history                                  list saved conversions
  units [category]                         list units
  help                                     show commands
  quit | exit                              end the session

Blank lines and lines starting with # are ignored. The history is
discarded when the session ends.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(rootOpts, cmd)
		},
	}

	return cmd
}

func runSession(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openSession(opts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			formatter.VerboseLog("session %s ended", s.ID())
			return nil
		case "help":
			respondText(formatter, sessionHelp)
		case "units":
			infos, err := listUnits(fields[1:])
			if err != nil {
				respondError(formatter, err)
				continue
			}
			_ = outputUnits(formatter, infos)
		default:
			if err := sessionStep(cmd, formatter, s, fields); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	return nil
}

// sessionStep parses and executes a convert, save or history line.
// Only a failure to read the history is returned; everything else is printed.
func sessionStep(cmd *cobra.Command, formatter *OutputFormatter, s *session.Session, fields []string) error {
	step, err := ParseStep(fields)
	if err != nil {
		respondError(formatter, err)
		return nil
	}

	out, err := script.Exec(cmd.Context(), step, s)
	if err != nil {
		return WrapExitError(ExitFailure, "history unavailable", err)
	}

	if out.Err != nil {
		respondError(formatter, out.Err)
		return nil
	}
	if formatter.Format == "json" {
		return formatter.Success(out)
	}
	for _, line := range out.Lines() {
		fmt.Fprintln(formatter.Writer, line)
	}
	return nil
}

// ParseStep turns the fields of a session line into a script step.
func ParseStep(fields []string) (script.Step, error) {
	if len(fields) == 0 {
		return script.Step{}, fmt.Errorf("empty command")
	}

	switch strings.ToLower(fields[0]) {
	case "convert":
		if len(fields) != 5 {
			return script.Step{}, fmt.Errorf("usage: convert <category> <value> <from> <to>")
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return script.Step{}, fmt.Errorf("invalid value %q: not a number", fields[2])
		}
		return script.Step{Convert: &script.ConvertStep{
			Category: fields[1],
			Value:    value,
			From:     fields[3],
			To:       fields[4],
		}}, nil
	case "save":
		return script.Step{Save: true}, nil
	case "history":
		return script.Step{History: true}, nil
	}

	return script.Step{}, fmt.Errorf("unknown command %q (try help)", fields[0])
}

func respondError(formatter *OutputFormatter, err error) {
	if formatter.Format == "json" {
		_ = formatter.Error(errorCode(err), errorMessage(err), nil)
		return
	}
	fmt.Fprintf(formatter.Writer, "error: %v\n", err)
}

func respondText(formatter *OutputFormatter, text string) {
	if formatter.Format == "json" {
		_ = formatter.Success(text)
		return
	}
	fmt.Fprintln(formatter.Writer, text)
}
