package wardrobe

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/wardrobe/pkg/catalogs"
	"github.com/agentstation/wardrobe/pkg/errors"
)

// config holds the options applied by New.
type config struct {
	storePath      string
	autoSave       bool
	logger         *zerolog.Logger
	sink           catalogs.EventSink
	initialCatalog *catalogs.Catalog
}

func defaultConfig() *config {
	return &config{}
}

// Option is a function that configures a Wardrobe instance
type Option func(*config) error

// WithStorePath sets the snapshot file used by Save, Load and Reload.
func WithStorePath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return &errors.ConfigError{Component: "wardrobe", Message: "store path must not be empty"}
		}
		c.storePath = path
		return nil
	}
}

// WithAutoSave writes the store after every successful Add or Remove.
// It requires a store path.
func WithAutoSave(enabled bool) Option {
	return func(c *config) error {
		c.autoSave = enabled
		return nil
	}
}

// WithLogger sets the logger used for change and persistence logging.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithEventSink receives every catalog event, including those fired while
// a snapshot is loaded.
func WithEventSink(sink catalogs.EventSink) Option {
	return func(c *config) error {
		c.sink = sink
		return nil
	}
}

// WithCatalog seeds the wardrobe with a copy of catalog.
func WithCatalog(catalog *catalogs.Catalog) Option {
	return func(c *config) error {
		c.initialCatalog = catalog
		return nil
	}
}
