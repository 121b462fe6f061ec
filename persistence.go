package wardrobe

import (
	"io/fs"

	"github.com/agentstation/wardrobe/pkg/catalogs"
	"github.com/agentstation/wardrobe/pkg/catalogs/files"
	"github.com/agentstation/wardrobe/pkg/errors"
	"github.com/agentstation/wardrobe/pkg/save"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*client)(nil)

// Persistence handles catalog persistence operations.
type Persistence interface {
	// Save writes the catalog. Without a path or writer option it writes
	// to the store path.
	Save(opts ...save.Option) error

	// Load replaces the catalog with the store's snapshot. On any failure
	// the current catalog is kept.
	Load() error

	// Reload is Load, except a missing store file resets the wardrobe to
	// empty instead of failing.
	Reload() error
}

// Save persists the current catalog.
func (c *client) Save(opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)
	path := options.Path()
	if path == "" && options.Writer() == nil {
		if c.store == nil {
			return &errors.ConfigError{
				Component: "wardrobe",
				Message:   "no store path configured for saving",
			}
		}
		path = c.store.Path
		opts = append([]save.Option{save.WithPath(path)}, opts...)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := files.Write(c.catalog, opts...); err != nil {
		c.logger.Error().Err(err).Str("store", path).Msg("Failed to save wardrobe")
		return err
	}
	c.logger.Debug().Int("items", c.catalog.Len()).Msg("Wardrobe saved")
	return nil
}

// Load reads the store and swaps in the result.
func (c *client) Load() error {
	return c.load(false)
}

// Reload reads the store, treating a missing file as an empty wardrobe.
func (c *client) Reload() error {
	return c.load(true)
}

func (c *client) load(allowMissing bool) error {
	if c.store == nil {
		return &errors.ConfigError{
			Component: "wardrobe",
			Message:   "no store path configured for loading",
		}
	}

	loaded, err := c.store.Load(catalogs.WithEventSink(c.sink))
	if err != nil {
		if !allowMissing || !errors.Is(err, fs.ErrNotExist) {
			c.logger.Error().Err(err).Str("store", c.store.Path).Msg("Failed to load wardrobe")
			return err
		}
		loaded = catalogs.New(catalogs.WithEventSink(c.sink))
	}

	c.mu.Lock()
	c.catalog = loaded
	snapshot := loaded.Copy()
	c.mu.Unlock()

	c.logger.Debug().
		Str("store", c.store.Path).
		Int("items", snapshot.Len()).
		Msg("Wardrobe loaded")

	c.hooks.triggerCatalogLoaded(snapshot)
	return nil
}

// autoSave writes the store when auto-save is enabled. Callers hold c.mu.
func (c *client) autoSave() error {
	if !c.config.autoSave || c.store == nil {
		return nil
	}
	if err := c.store.Save(c.catalog); err != nil {
		c.logger.Error().Err(err).Str("store", c.store.Path).Msg("Auto-save failed")
		return err
	}
	return nil
}
