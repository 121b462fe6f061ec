package wardrobe

import (
	"sync"

	"github.com/agentstation/wardrobe/pkg/catalogs"
)

// Hook function types for wardrobe events
type (
	// ItemAddedHook is called after an item is added
	ItemAddedHook func(item *catalogs.Item)

	// ItemRemovedHook is called after items are removed, with how many were dropped
	ItemRemovedHook func(id string, count int)

	// CatalogLoadedHook is called after a snapshot replaces the catalog
	CatalogLoadedHook func(catalog *catalogs.Catalog)
)

// Hooks registers callbacks for wardrobe changes. Callbacks run on the
// caller's goroutine after the change is applied and the lock is released.
type Hooks interface {
	OnItemAdded(ItemAddedHook)
	OnItemRemoved(ItemRemovedHook)
	OnCatalogLoaded(CatalogLoadedHook)
}

// hooks manages event callbacks for catalog changes
type hooks struct {
	mu              sync.RWMutex
	onItemAdded     []ItemAddedHook
	onItemRemoved   []ItemRemovedHook
	onCatalogLoaded []CatalogLoadedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnItemAdded registers a callback for when items are added
func (c *client) OnItemAdded(fn ItemAddedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onItemAdded = append(c.hooks.onItemAdded, fn)
}

// OnItemRemoved registers a callback for when items are removed
func (c *client) OnItemRemoved(fn ItemRemovedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onItemRemoved = append(c.hooks.onItemRemoved, fn)
}

// OnCatalogLoaded registers a callback for when a snapshot is loaded
func (c *client) OnCatalogLoaded(fn CatalogLoadedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onCatalogLoaded = append(c.hooks.onCatalogLoaded, fn)
}

func (h *hooks) triggerItemAdded(item *catalogs.Item) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onItemAdded {
		hook(item)
	}
}

func (h *hooks) triggerItemRemoved(id string, count int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onItemRemoved {
		hook(id, count)
	}
}

func (h *hooks) triggerCatalogLoaded(catalog *catalogs.Catalog) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onCatalogLoaded {
		hook(catalog)
	}
}
