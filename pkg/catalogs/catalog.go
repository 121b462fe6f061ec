// Package catalogs provides the in-memory wardrobe catalog.
//
// A Catalog keeps every item in the order it was added and maintains one view
// per known category (top, bottom, jacket, accessory). Views always hold
// exactly the items of the main collection whose category matches, in the
// same relative order. Items with an unrecognised category stay in the main
// collection and appear in no view.
//
// The catalog is not safe for concurrent use; callers that share one across
// goroutines must guard it, as the wardrobe client does.
//
// Example usage:
//
//	cat := catalogs.New()
//	cat.Add(catalogs.NewItem("Farrah jeans", "bottom", "blue", "baggy", "elegant", "business casual"))
//	cat.Add(catalogs.NewItem("Tweed blazer", "jacket", "brown", "baggy", "academic", "formal"))
//
//	blue := cat.Filter("colour", "blue", cat.All())
//	cat.Remove("Tweed blazer")
package catalogs

import (
	"time"
)

// Catalog is the ordered collection of items plus its four category views.
type Catalog struct {
	items []*Item
	views map[Category][]*Item
	sink  EventSink
	now   func() time.Time
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithEventSink sets the sink notified after every add and remove.
func WithEventSink(sink EventSink) Option {
	return func(c *Catalog) {
		c.sink = sink
	}
}

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		views: newViews(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newViews() map[Category][]*Item {
	views := make(map[Category][]*Item, len(Categories()))
	for _, category := range Categories() {
		views[category] = nil
	}
	return views
}

// Add appends item to the main collection and to the view matching its
// category, compared case-insensitively. An unrecognised category is not an
// error: the item is kept in the main collection only. A nil item is ignored.
func (c *Catalog) Add(item *Item) {
	if item == nil {
		return
	}

	c.items = append(c.items, item)
	if category, ok := ParseCategory(item.Category()); ok {
		c.views[category] = append(c.views[category], item)
	}

	c.emit(newEvent(EventItemAdded, item.ID(), 1, c.now()))
}

// Remove drops every item whose identifier equals id exactly, then rebuilds
// each view from the items that are still present. It returns the number of
// items removed; removing an unknown identifier is a no-op.
func (c *Catalog) Remove(id string) int {
	kept := c.items[:0:0]
	for _, item := range c.items {
		if item.ID() != id {
			kept = append(kept, item)
		}
	}
	removed := len(c.items) - len(kept)
	if removed > 0 {
		c.items = kept
		c.reconcile()
	}

	c.emit(newEvent(EventItemRemoved, id, removed, c.now()))
	return removed
}

// reconcile drops from every view the items no longer in the main collection.
func (c *Catalog) reconcile() {
	present := make(map[*Item]struct{}, len(c.items))
	for _, item := range c.items {
		present[item] = struct{}{}
	}
	for category, view := range c.views {
		pruned := view[:0:0]
		for _, item := range view {
			if _, ok := present[item]; ok {
				pruned = append(pruned, item)
			}
		}
		c.views[category] = pruned
	}
}

// Filter is the method form of the package-level Filter. It never touches
// the catalog's own state.
func (c *Catalog) Filter(category, value string, source []*Item) []*Item {
	return Filter(category, value, source)
}

// All returns every item in the order added.
func (c *Catalog) All() []*Item {
	return append([]*Item(nil), c.items...)
}

// Len returns the number of items in the main collection.
func (c *Catalog) Len() int {
	return len(c.items)
}

// View returns the items of one category in the order added. An unknown
// category yields an empty slice.
func (c *Catalog) View(category Category) []*Item {
	return append([]*Item(nil), c.views[category]...)
}

// Tops returns the top view.
func (c *Catalog) Tops() []*Item { return c.View(CategoryTop) }

// Bottoms returns the bottom view.
func (c *Catalog) Bottoms() []*Item { return c.View(CategoryBottom) }

// Jackets returns the jacket view.
func (c *Catalog) Jackets() []*Item { return c.View(CategoryJacket) }

// Accessories returns the accessory view.
func (c *Catalog) Accessories() []*Item { return c.View(CategoryAccessory) }

// Uncategorized returns the items that belong to no view.
func (c *Catalog) Uncategorized() []*Item {
	var items []*Item
	for _, item := range c.items {
		if _, ok := ParseCategory(item.Category()); !ok {
			items = append(items, item)
		}
	}
	return items
}

// Find returns every item with the given identifier, in the order added.
func (c *Catalog) Find(id string) []*Item {
	var items []*Item
	for _, item := range c.items {
		if item.ID() == id {
			items = append(items, item)
		}
	}
	return items
}

// Counts returns the number of items per category view.
func (c *Catalog) Counts() map[Category]int {
	counts := make(map[Category]int, len(c.views))
	for category, view := range c.views {
		counts[category] = len(view)
	}
	return counts
}

// Copy returns an independent catalog holding the same items and views.
// Items are immutable so they are shared; the event sink is not copied.
func (c *Catalog) Copy() *Catalog {
	cp := New(WithClock(c.now))
	cp.items = c.All()
	for category, view := range c.views {
		cp.views[category] = append([]*Item(nil), view...)
	}
	return cp
}

func (c *Catalog) emit(e Event) {
	if c.sink != nil {
		c.sink.Record(e)
	}
}
