// Package version implements the version command.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/wardrobe/internal/appcontext"
)

// NewCommand creates the version command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if short {
				_, err := fmt.Fprintln(out, app.Version())
				return err
			}
			_, err := fmt.Fprintf(out, "wardrobe %s\n  commit: %s\n  built:  %s\n",
				app.Version(), app.Commit(), app.Date())
			return err
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}
