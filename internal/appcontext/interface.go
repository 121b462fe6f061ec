// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on one small contract
// instead of the concrete App.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/wardrobe"
)

// Interface defines what commands need from the application.
// The App struct from cmd/wardrobe/app implements it; tests use Mock.
type Interface interface {
	// Wardrobe returns the shared wardrobe, loading the store on first use.
	// A missing store file yields an empty wardrobe; any other read
	// failure is returned.
	Wardrobe() (wardrobe.Wardrobe, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// ServerAddr returns the host:port the API server listens on.
	ServerAddr() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}
