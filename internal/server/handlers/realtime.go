package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/wardrobe/internal/server/events"
	ws "github.com/agentstation/wardrobe/internal/server/websocket"
)

// HandleWebSocket handles WebSocket connections at /api/v1/events/ws.
func (h *Handlers) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	h.wsHub.Register(client)

	h.wsHub.Broadcast(ws.Message{
		Type:      string(events.ClientConnected),
		Timestamp: time.Now(),
		Data: map[string]any{
			"client_id": client.ID(),
		},
	})

	go client.WritePump()
	go client.ReadPump()
}

// HandleSSE handles Server-Sent Events at /api/v1/events/stream.
func (h *Handlers) HandleSSE(w http.ResponseWriter, r *http.Request) {
	h.sseBroadcaster.ServeHTTP(w, r)
}
