package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/unitconv/internal/units"
)

// CategoryInfo describes one category in the units listing.
type CategoryInfo struct {
	Category units.Category `json:"category"`
	Base     units.Unit     `json:"base"`
	Units    []units.Unit   `json:"units"`
}

// String renders the category as "Length (base Meter): Meter, Kilometer, ...".
func (c CategoryInfo) String() string {
	names := make([]string, len(c.Units))
	for i, u := range c.Units {
		names[i] = u.String()
	}
	return fmt.Sprintf("%s (base %s): %s", c.Category, c.Base, strings.Join(names, ", "))
}

// NewUnitsCommand creates the units command.
func NewUnitsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units [category]",
		Short: "List categories and their units",
		Long: `List the supported categories and their units in display order.

With a category argument only that category is listed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			infos, err := listUnits(args)
			if err != nil {
				return formatter.Fail(ExitCommandError, err)
			}
			return outputUnits(formatter, infos)
		},
	}

	return cmd
}

// listUnits returns the listing for all categories, or for the one named
// by the first of args.
func listUnits(args []string) ([]CategoryInfo, error) {
	categories := units.Categories()
	if len(args) > 0 {
		c, err := units.ParseCategory(args[0])
		if err != nil {
			return nil, err
		}
		categories = []units.Category{c}
	}

	infos := make([]CategoryInfo, 0, len(categories))
	for _, c := range categories {
		base, err := units.BaseUnit(c)
		if err != nil {
			return nil, err
		}
		infos = append(infos, CategoryInfo{Category: c, Base: base, Units: units.Units(c)})
	}
	return infos, nil
}

func outputUnits(formatter *OutputFormatter, infos []CategoryInfo) error {
	if formatter.Format == "json" {
		return formatter.Success(infos)
	}
	for _, info := range infos {
		fmt.Fprintln(formatter.Writer, info)
	}
	return nil
}
