package handlers

import (
	"net/http"

	"github.com/agentstation/wardrobe/pkg/catalogs"
)

// HandleOutfit handles GET /api/v1/outfits?colour=&mood=&dressCode=.
// All three parameters are matched exactly, so an omitted one only matches
// items whose tag is empty.
func (h *Handlers) HandleOutfit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.cached(w, r, func() any {
		return h.wardrobe.Outfit(q.Get("colour"), q.Get("mood"), q.Get("dressCode")).Record()
	})
}

// CountsResponse is the body of GET /api/v1/counts.
type CountsResponse struct {
	Categories    map[string]int `json:"categories"`
	Uncategorized int            `json:"uncategorized"`
	Total         int            `json:"total"`
}

// HandleCounts handles GET /api/v1/counts.
func (h *Handlers) HandleCounts(w http.ResponseWriter, r *http.Request) {
	h.cached(w, r, func() any {
		counts := h.wardrobe.Counts()
		resp := CountsResponse{
			Categories:    make(map[string]int, len(counts)),
			Uncategorized: len(h.wardrobe.Uncategorized()),
		}
		for _, category := range catalogs.Categories() {
			resp.Categories[category.Plural()] = counts[category]
			resp.Total += counts[category]
		}
		resp.Total += resp.Uncategorized
		return resp
	})
}
