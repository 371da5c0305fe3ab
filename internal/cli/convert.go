package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/unitconv/internal/history"
	"github.com/roach88/unitconv/internal/units"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Save bool
}

// ConvertResult is the JSON payload of the convert command.
type ConvertResult struct {
	Conversion units.Conversion `json:"conversion"`
	Saved      *history.Record  `json:"saved,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <category> <value> <from> <to>",
		Short: "Convert a value between two units",
		Long: `Convert a value between two units of the same category.

Categories and units are matched case-insensitively. Length and mass
values must not be negative. Flags go before the arguments so that
negative temperatures are not read as flags.

Example:
  unitconv convert length 1 meter foot
  unitconv convert --save temperature -40 celsius fahrenheit`,
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args, cmd)
		},
	}
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().BoolVar(&opts.Save, "save", false, "save the result to the session history")

	return cmd
}

func runConvert(opts *ConvertOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("invalid value %q: not a number", args[1]), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid value %q", args[1]))
	}

	s, err := openSession(opts.RootOptions, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	conv, err := s.ConvertLabels(cmd.Context(), args[0], value, args[2], args[3])
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}

	result := ConvertResult{Conversion: conv}
	if opts.Save {
		rec, err := s.Save(cmd.Context())
		if err != nil {
			return formatter.Fail(ExitFailure, err)
		}
		result.Saved = &rec
		formatter.VerboseLog("saved record %d", rec.Seq)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintln(formatter.Writer, conv)
	if result.Saved != nil {
		fmt.Fprintf(formatter.Writer, "saved: %s\n", result.Saved.Display())
	}
	return nil
}
