// Package outfit implements the outfit command.
package outfit

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/wardrobe/internal/appcontext"
	"github.com/agentstation/wardrobe/internal/cmd/output"
)

// NewCommand creates the outfit command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var colour, mood, dressCode string

	cmd := &cobra.Command{
		Use:     "outfit",
		GroupID: "core",
		Short:   "Suggest an outfit by colour, mood and dress code",
		Long: `Outfit lists every item matching all three tags, grouped by category.`,
		Example: `  wardrobe outfit --colour black --mood calm --dress-code formal`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}

			w, err := app.Wardrobe()
			if err != nil {
				return err
			}

			outfit := w.Outfit(colour, mood, dressCode)
			app.Logger().Debug().Int("items", outfit.Len()).Msg("Outfit assembled")
			return output.FormatOutfit(cmd.OutOrStdout(), format, outfit)
		},
	}

	cmd.Flags().StringVarP(&colour, "colour", "c", "", "colour to match")
	cmd.Flags().StringVar(&mood, "mood", "", "mood to match")
	cmd.Flags().StringVar(&dressCode, "dress-code", "", "dress code to match")
	_ = cmd.MarkFlagRequired("colour")
	_ = cmd.MarkFlagRequired("mood")
	_ = cmd.MarkFlagRequired("dress-code")

	return cmd
}
