// Package wardrobe manages a clothing catalog shared between callers, with
// change hooks and snapshot persistence.
//
// Example:
//
//	w, err := wardrobe.New(wardrobe.WithStorePath("wardrobe.json"))
//	if err != nil {
//		return err
//	}
//	if err := w.Reload(); err != nil {
//		return err
//	}
//	w.Add(catalogs.NewItem("Silk scarf", "accessory", "red", "comfy", "bold", "cocktail"))
//	outfit := w.Outfit("red", "bold", "cocktail")
package wardrobe

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/wardrobe/pkg/catalogs"
	"github.com/agentstation/wardrobe/pkg/catalogs/files"
	"github.com/agentstation/wardrobe/pkg/errors"
	"github.com/agentstation/wardrobe/pkg/logging"
)

// Wardrobe is a catalog safe for concurrent use, with hooks and persistence.
type Wardrobe interface {
	// Add stores an item. It only fails when auto-save is on and the
	// write fails; the item stays in memory either way.
	Add(item *catalogs.Item) error

	// Remove drops every item with the identifier and returns how many
	// were dropped.
	Remove(id string) (int, error)

	// Filter is catalogs.Filter. It never touches the catalog.
	Filter(category, value string, source []*catalogs.Item) []*catalogs.Item

	// Outfit runs the colour, mood and dress code search.
	Outfit(colour, mood, dressCode string) catalogs.Outfit

	// Items returns every item in insertion order.
	Items() []*catalogs.Item

	// View returns one category view.
	View(category catalogs.Category) []*catalogs.Item

	// Uncategorized returns items outside every view.
	Uncategorized() []*catalogs.Item

	// Counts returns the size of each view.
	Counts() map[catalogs.Category]int

	// Catalog returns an independent copy of the current catalog.
	Catalog() *catalogs.Catalog

	// StorePath returns the configured snapshot file, if any.
	StorePath() string

	Persistence
	Hooks
}

var _ Wardrobe = (*client)(nil)

// client is the Wardrobe implementation.
type client struct {
	mu      sync.RWMutex
	catalog *catalogs.Catalog
	config  *config
	store   *files.Store
	logger  *zerolog.Logger
	sink    catalogs.EventSink
	sinkMu  sync.Mutex

	hooks *hooks
}

// New creates a Wardrobe. The catalog starts empty unless WithCatalog is
// given; nothing is read from disk until Load or Reload.
func New(opts ...Option) (Wardrobe, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	if cfg.autoSave && cfg.storePath == "" {
		return nil, &errors.ConfigError{Component: "wardrobe", Message: "auto-save requires a store path"}
	}

	c := &client{
		config: cfg,
		logger: cfg.logger,
		hooks:  newHooks(),
	}
	if c.logger == nil {
		c.logger = logging.Default()
	}
	if cfg.storePath != "" {
		c.store = files.NewStore(cfg.storePath)
	}
	c.sink = c.eventSink()

	if cfg.initialCatalog != nil {
		c.catalog = catalogs.FromSnapshot(cfg.initialCatalog.Snapshot(), catalogs.WithEventSink(c.sink))
	} else {
		c.catalog = catalogs.New(catalogs.WithEventSink(c.sink))
	}

	return c, nil
}

// eventSink fans catalog events out to the logger and any configured sink.
// Deliveries are serialized: Load replays its records outside c.mu while
// Add and Remove may be emitting under it.
func (c *client) eventSink() catalogs.EventSink {
	logSink := logging.NewEventSink(c.logger)
	user := c.config.sink
	return catalogs.SinkFunc(func(e catalogs.Event) {
		c.sinkMu.Lock()
		defer c.sinkMu.Unlock()
		logSink.Record(e)
		if user != nil {
			user.Record(e)
		}
	})
}

// Add stores an item and fires OnItemAdded hooks.
func (c *client) Add(item *catalogs.Item) error {
	if item == nil {
		return nil
	}

	c.mu.Lock()
	c.catalog.Add(item)
	err := c.autoSave()
	c.mu.Unlock()

	c.hooks.triggerItemAdded(item)
	return err
}

// Remove drops items by identifier and fires OnItemRemoved hooks when any
// were dropped.
func (c *client) Remove(id string) (int, error) {
	c.mu.Lock()
	removed := c.catalog.Remove(id)
	var err error
	if removed > 0 {
		err = c.autoSave()
	}
	c.mu.Unlock()

	if removed > 0 {
		c.hooks.triggerItemRemoved(id, removed)
	}
	return removed, err
}

// Filter delegates to catalogs.Filter.
func (c *client) Filter(category, value string, source []*catalogs.Item) []*catalogs.Item {
	return catalogs.Filter(category, value, source)
}

// Outfit searches the current items.
func (c *client) Outfit(colour, mood, dressCode string) catalogs.Outfit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.Outfit(colour, mood, dressCode)
}

// Items returns every item in insertion order.
func (c *client) Items() []*catalogs.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.All()
}

// View returns the items of one category.
func (c *client) View(category catalogs.Category) []*catalogs.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.View(category)
}

// Uncategorized returns items outside every view.
func (c *client) Uncategorized() []*catalogs.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.Uncategorized()
}

// Counts returns the size of each view.
func (c *client) Counts() map[catalogs.Category]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.Counts()
}

// Catalog returns a copy of the current catalog.
func (c *client) Catalog() *catalogs.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.Copy()
}

// StorePath returns the configured snapshot file.
func (c *client) StorePath() string {
	return c.config.storePath
}
