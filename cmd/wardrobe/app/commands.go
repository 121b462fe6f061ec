package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/wardrobe/cmd/wardrobe/cmd/add"
	"github.com/agentstation/wardrobe/cmd/wardrobe/cmd/export"
	"github.com/agentstation/wardrobe/cmd/wardrobe/cmd/filter"
	"github.com/agentstation/wardrobe/cmd/wardrobe/cmd/list"
	"github.com/agentstation/wardrobe/cmd/wardrobe/cmd/outfit"
	"github.com/agentstation/wardrobe/cmd/wardrobe/cmd/remove"
	"github.com/agentstation/wardrobe/cmd/wardrobe/cmd/serve"
	"github.com/agentstation/wardrobe/cmd/wardrobe/cmd/version"
)

// NewAddCommand creates the add command with app dependencies.
func (a *App) NewAddCommand() *cobra.Command {
	return add.NewCommand(a)
}

// NewRemoveCommand creates the remove command with app dependencies.
func (a *App) NewRemoveCommand() *cobra.Command {
	return remove.NewCommand(a)
}

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// NewFilterCommand creates the filter command with app dependencies.
func (a *App) NewFilterCommand() *cobra.Command {
	return filter.NewCommand(a)
}

// NewOutfitCommand creates the outfit command with app dependencies.
func (a *App) NewOutfitCommand() *cobra.Command {
	return outfit.NewCommand(a)
}

// NewExportCommand creates the export command with app dependencies.
func (a *App) NewExportCommand() *cobra.Command {
	return export.NewCommand(a)
}

// NewServeCommand creates the serve command with app dependencies.
func (a *App) NewServeCommand() *cobra.Command {
	return serve.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return version.NewCommand(a)
}
