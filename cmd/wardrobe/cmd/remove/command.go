// Package remove implements the remove command.
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/wardrobe/internal/appcontext"
	"github.com/agentstation/wardrobe/pkg/errors"
)

// NewCommand creates the remove command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		GroupID: "core",
		Short:   "Remove every item with the given name",
		Example: `  wardrobe remove "Red shirt"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			w, err := app.Wardrobe()
			if err != nil {
				return err
			}
			removed, err := w.Remove(id)
			if err != nil {
				return err
			}
			if removed == 0 {
				return errors.NewNotFoundError("item", id)
			}
			if err := w.Save(); err != nil {
				return err
			}

			noun := "item"
			if removed > 1 {
				noun = "items"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d %s named %q\n", removed, noun, id)
			return err
		},
	}
}
