// Package add implements the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/wardrobe/internal/appcontext"
	"github.com/agentstation/wardrobe/internal/validation"
)

// NewCommand creates the add command. Tags missing from the flags are
// prompted for on stdin.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var in validation.ItemInput

	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "core",
		Short:   "Add an item to the wardrobe",
		Long: `Add stores a new clothing item and saves the wardrobe.

Any tag not given as a flag is asked for interactively. Menus accept
shortcuts: t, b, j or a for the type, 1-3 for the fit and 1-6 for the
dress code.`,
		Example: `  wardrobe add --id "Red shirt" --type top --colour red --fit comfy --mood bold --dress-code casual
  wardrobe add --id "Grey hoodie" -t t --fit 3 --dress-code 1 --colour grey --mood lazy
  wardrobe add                     # prompt for everything`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			if err := p.complete(&in); err != nil {
				return err
			}

			item, err := in.Item()
			if err != nil {
				return err
			}

			w, err := app.Wardrobe()
			if err != nil {
				return err
			}
			if err := w.Add(item); err != nil {
				return err
			}
			if err := w.Save(); err != nil {
				return err
			}

			app.Logger().Debug().Str("item_id", item.ID()).Str("store", w.StorePath()).Msg("Item added")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", item.ID(), item.Category())
			return err
		},
	}

	cmd.Flags().StringVar(&in.ID, "id", "", "item name")
	cmd.Flags().StringVarP(&in.Type, "type", "t", "", "top, bottom, jacket or accessory")
	cmd.Flags().StringVarP(&in.Colour, "colour", "c", "", "colour")
	cmd.Flags().StringVar(&in.Fit, "fit", "", "tight, comfy or baggy")
	cmd.Flags().StringVar(&in.Mood, "mood", "", "mood")
	cmd.Flags().StringVar(&in.DressCode, "dress-code", "", "casual, business casual, formal, cocktail, black tie or white tie")

	return cmd
}
