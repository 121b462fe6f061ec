// Package export implements the export command.
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/wardrobe/internal/appcontext"
	"github.com/agentstation/wardrobe/pkg/errors"
	"github.com/agentstation/wardrobe/pkg/save"
)

// NewCommand creates the export command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "export [file]",
		GroupID: "management",
		Short:   "Write the wardrobe snapshot to a file or stdout",
		Long: `Export writes the whole catalog in the snapshot format, as JSON by
default or as YAML with -o yaml. Without a file it writes to stdout.`,
		Example: `  wardrobe export backup.json
  wardrobe export -o yaml > wardrobe.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := app.OutputFormat()
			if name == "table" {
				name = ""
			}
			format, ok := save.ParseFormat(name)
			if !ok {
				return errors.NewValidationError("format", name, "export supports json or yaml")
			}

			w, err := app.Wardrobe()
			if err != nil {
				return err
			}

			opts := []save.Option{save.WithFormat(format)}
			if len(args) == 1 {
				opts = append(opts, save.WithPath(args[0]))
			} else {
				opts = append(opts, save.WithWriter(cmd.OutOrStdout()))
			}
			if err := w.Save(opts...); err != nil {
				return err
			}

			if len(args) == 1 {
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d items to %s\n", len(w.Items()), args[0])
			}
			return err
		},
	}
}
