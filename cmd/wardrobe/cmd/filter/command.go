// Package filter implements the filter command.
package filter

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/wardrobe/internal/appcontext"
	"github.com/agentstation/wardrobe/internal/cmd/output"
	"github.com/agentstation/wardrobe/internal/validation"
)

// NewCommand creates the filter command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var by, value, category string

	cmd := &cobra.Command{
		Use:     "filter",
		GroupID: "core",
		Short:   "Find items whose tag exactly matches a value",
		Long: `Filter keeps the items whose tag named by --by equals --value.
Tags are id, type, colour, fit, mood and dress code. Matching is exact and
case-sensitive; an unknown tag matches nothing.`,
		Example: `  wardrobe filter --by colour --value red
  wardrobe filter --by mood --value bold --category jacket`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}

			w, err := app.Wardrobe()
			if err != nil {
				return err
			}

			source := w.Items()
			if category != "" {
				c, err := validation.Category(category)
				if err != nil {
					return err
				}
				source = w.View(c)
			}

			items := w.Filter(by, value, source)
			app.Logger().Debug().
				Str("by", by).
				Str("value", value).
				Int("items", len(items)).
				Msg("Filtered items")
			return output.FormatItems(cmd.OutOrStdout(), format, items)
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "tag to match: id, type, colour, fit, mood, dress code")
	cmd.Flags().StringVar(&value, "value", "", "value the tag must equal")
	cmd.Flags().StringVar(&category, "category", "", "search one category view instead of every item")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}
