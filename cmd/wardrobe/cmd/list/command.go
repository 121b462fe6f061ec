// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/wardrobe/internal/appcontext"
	"github.com/agentstation/wardrobe/internal/cmd/filter"
	"github.com/agentstation/wardrobe/internal/cmd/output"
	"github.com/agentstation/wardrobe/internal/cmd/table"
	"github.com/agentstation/wardrobe/internal/validation"
	"github.com/agentstation/wardrobe/pkg/catalogs"
)

// countsRecord is the json and yaml shape of --counts.
type countsRecord struct {
	Categories    map[string]int `json:"categories" yaml:"categories"`
	Uncategorized int            `json:"uncategorized" yaml:"uncategorized"`
	Total         int            `json:"total" yaml:"total"`
}

// NewCommand creates the list command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		flags  filter.ItemFilter
		counts bool
	)

	cmd := &cobra.Command{
		Use:     "list [category]",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List wardrobe items",
		Long: `List prints every item, or one category view when a category is given.
Tag flags narrow the result by exact match.`,
		Example: `  wardrobe list
  wardrobe list tops
  wardrobe list bottom --colour black
  wardrobe list --counts
  wardrobe list -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}

			w, err := app.Wardrobe()
			if err != nil {
				return err
			}

			if counts {
				return writeCounts(cmd, format, w.Counts(), len(w.Uncategorized()), len(w.Items()))
			}

			items := w.Items()
			if len(args) == 1 {
				category, err := validation.Category(args[0])
				if err != nil {
					return err
				}
				items = w.View(category)
			}
			items = flags.Apply(items)

			app.Logger().Debug().Int("items", len(items)).Msg("Listing items")
			return output.FormatItems(cmd.OutOrStdout(), format, items)
		},
	}

	cmd.Flags().StringVarP(&flags.Colour, "colour", "c", "", "only items with this colour")
	cmd.Flags().StringVar(&flags.Fit, "fit", "", "only items with this fit")
	cmd.Flags().StringVar(&flags.Mood, "mood", "", "only items with this mood")
	cmd.Flags().StringVar(&flags.DressCode, "dress-code", "", "only items with this dress code")
	cmd.Flags().BoolVar(&counts, "counts", false, "show how many items each category holds")

	return cmd
}

func writeCounts(cmd *cobra.Command, format output.Format, counts map[catalogs.Category]int, uncategorized, total int) error {
	if format == output.FormatTable {
		return output.FormatAny(cmd.OutOrStdout(), format, table.CountsToTableData(counts, total))
	}

	rec := countsRecord{
		Categories:    make(map[string]int, len(counts)),
		Uncategorized: uncategorized,
		Total:         total,
	}
	for c, n := range counts {
		rec.Categories[c.Plural()] = n
	}
	return output.FormatAny(cmd.OutOrStdout(), format, rec)
}
