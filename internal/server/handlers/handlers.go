// Package handlers implements the wardrobe REST API.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/agentstation/wardrobe"
	"github.com/agentstation/wardrobe/internal/server/cache"
	"github.com/agentstation/wardrobe/internal/server/response"
	"github.com/agentstation/wardrobe/internal/server/sse"
	ws "github.com/agentstation/wardrobe/internal/server/websocket"
	"github.com/agentstation/wardrobe/pkg/constants"
	"github.com/agentstation/wardrobe/pkg/errors"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	wardrobe       wardrobe.Wardrobe
	cache          *cache.Cache
	wsHub          *ws.Hub
	sseBroadcaster *sse.Broadcaster
	upgrader       websocket.Upgrader
	logger         *zerolog.Logger
}

// New creates a new Handlers instance. A nil cache disables response
// caching.
func New(
	w wardrobe.Wardrobe,
	c *cache.Cache,
	wsHub *ws.Hub,
	sseBroadcaster *sse.Broadcaster,
	upgrader websocket.Upgrader,
	logger *zerolog.Logger,
) *Handlers {
	return &Handlers{
		wardrobe:       w,
		cache:          c,
		wsHub:          wsHub,
		sseBroadcaster: sseBroadcaster,
		upgrader:       upgrader,
		logger:         logger,
	}
}

// cached serves a read from the response cache, computing and storing it
// on a miss. A result computed across a change is served but not stored.
func (h *Handlers) cached(w http.ResponseWriter, r *http.Request, compute func() any) {
	if h.cache == nil {
		response.OK(w, compute())
		return
	}

	key := cache.Key(r)
	if data, ok := h.cache.Get(key); ok {
		w.Header().Set("X-Cache", "HIT")
		response.OK(w, data)
		return
	}

	gen := h.cache.Generation()
	data := compute()
	h.cache.SetIfCurrent(key, data, gen)
	w.Header().Set("X-Cache", "MISS")
	response.OK(w, data)
}

// decodeJSON reads a bounded JSON body into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return errors.NewValidationError("body", "", "request body is empty")
		}
		return errors.NewValidationError("body", "", err.Error())
	}
	return nil
}
