// Package app provides the application context and dependency management
// for the wardrobe CLI. It centralizes configuration, logging and the
// shared wardrobe instance.
package app

import (
	"context"
	"net"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/wardrobe"
	"github.com/agentstation/wardrobe/internal/appcontext"
	"github.com/agentstation/wardrobe/pkg/errors"
)

// App represents the wardrobe application with all its dependencies.
type App struct {
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Wardrobe instance (lazy-initialized, singleton)
	mu       sync.Mutex
	wardrobe wardrobe.Wardrobe
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value, empty when unset.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// ServerAddr returns the configured API listen address.
func (a *App) ServerAddr() string {
	return net.JoinHostPort(a.config.ServerHost, strconv.Itoa(a.config.ServerPort))
}

// Wardrobe returns the shared wardrobe, reading the store file on first
// use. A missing store file yields an empty wardrobe.
func (a *App) Wardrobe() (wardrobe.Wardrobe, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.wardrobe != nil {
		return a.wardrobe, nil
	}

	w, err := wardrobe.New(
		wardrobe.WithStorePath(a.config.StorePath),
		wardrobe.WithAutoSave(a.config.AutoSave),
		wardrobe.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}
	if err := w.Reload(); err != nil {
		return nil, err
	}

	a.wardrobe = w
	return w, nil
}

// Shutdown releases the shared wardrobe; the next Wardrobe call reads the
// store again. Changes are never written here: commands that mutate the
// wardrobe save it themselves.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.wardrobe != nil {
		a.logger.Debug().Str("store", a.wardrobe.StorePath()).Msg("Releasing wardrobe")
		a.wardrobe = nil
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithWardrobe sets a custom wardrobe instance (useful for testing).
func WithWardrobe(w wardrobe.Wardrobe) Option {
	return func(a *App) error {
		a.wardrobe = w
		return nil
	}
}
