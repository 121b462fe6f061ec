package handlers

import (
	"net/http"

	"github.com/agentstation/wardrobe/internal/server/response"
)

// HandleHealth handles GET /api/v1/health (liveness).
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "wardrobe-api",
		"version": "v1",
	})
}

// HandleReady handles GET /api/v1/ready (readiness).
func (h *Handlers) HandleReady(w http.ResponseWriter, _ *http.Request) {
	if h.wardrobe == nil {
		response.ServiceUnavailable(w, "Wardrobe not available")
		return
	}

	ready := map[string]any{
		"status":            "ready",
		"items":             len(h.wardrobe.Items()),
		"store":             h.wardrobe.StorePath(),
		"websocket_clients": h.wsHub.ClientCount(),
		"sse_clients":       h.sseBroadcaster.ClientCount(),
	}
	if h.cache != nil {
		ready["cache"] = h.cache.Stats()
	}
	response.OK(w, ready)
}
