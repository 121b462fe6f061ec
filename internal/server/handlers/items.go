package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agentstation/wardrobe/internal/cmd/filter"
	"github.com/agentstation/wardrobe/internal/server/response"
	"github.com/agentstation/wardrobe/internal/validation"
	"github.com/agentstation/wardrobe/pkg/catalogs"
	"github.com/agentstation/wardrobe/pkg/errors"
	"github.com/agentstation/wardrobe/pkg/logging"
)

// ItemList is the body of item listing responses.
type ItemList struct {
	Items []catalogs.Record `json:"items"`
	Count int               `json:"count"`
}

func newItemList(items []*catalogs.Item) ItemList {
	return ItemList{Items: catalogs.Records(items), Count: len(items)}
}

// HandleListItems handles GET /api/v1/items.
// Query parameters category, colour, fit, mood and dressCode narrow the
// list; tags match exactly.
func (h *Handlers) HandleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := &filter.ItemFilter{
		Category:  q.Get("category"),
		Colour:    q.Get("colour"),
		Fit:       q.Get("fit"),
		Mood:      q.Get("mood"),
		DressCode: q.Get("dressCode"),
	}

	h.cached(w, r, func() any {
		return newItemList(f.Apply(h.wardrobe.Items()))
	})
}

// HandleFilterItems handles GET /api/v1/items/filter?by=&value=&category=.
// by selects the tag: colour, fit and mood select themselves and anything
// else selects the dress code. category restricts the source to one view.
func (h *Handlers) HandleFilterItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	source := h.wardrobe.Items
	if name := q.Get("category"); name != "" {
		category, err := validation.Category(name)
		if err != nil {
			response.ErrorFromType(w, err)
			return
		}
		source = func() []*catalogs.Item { return h.wardrobe.View(category) }
	}

	h.cached(w, r, func() any {
		return newItemList(h.wardrobe.Filter(q.Get("by"), q.Get("value"), source()))
	})
}

// HandleAddItem handles POST /api/v1/items.
func (h *Handlers) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	var in validation.ItemInput
	if err := decodeJSON(w, r, &in); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	item, err := in.Item()
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	if err := h.wardrobe.Add(item); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Str("item_id", item.ID()).Msg("Auto-save failed after add")
		response.ErrorFromType(w, err)
		return
	}

	response.Created(w, item.Record())
}

// HandleRemoveItem handles DELETE /api/v1/items/{id}. Every item with the
// identifier is removed; 404 means none existed.
func (h *Handlers) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.wardrobe.Remove(id)
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Str("item_id", id).Msg("Auto-save failed after remove")
		response.ErrorFromType(w, err)
		return
	}
	if removed == 0 {
		response.ErrorFromType(w, errors.NewNotFoundError("item", id))
		return
	}

	response.OK(w, map[string]any{
		"id":      id,
		"removed": removed,
	})
}
