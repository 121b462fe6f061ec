// Package events fans wardrobe changes out to live transports.
//
// The server registers wardrobe hooks that publish to a Broker; the broker
// forwards every event to each Subscriber (WebSocket, SSE) concurrently.
package events

import "time"

// EventType represents the type of wardrobe event.
type EventType string

// Event types for wardrobe changes.
const (
	ItemAdded     EventType = "item.added"
	ItemRemoved   EventType = "item.removed"
	CatalogLoaded EventType = "catalog.loaded"
	CatalogSaved  EventType = "catalog.saved"

	// ClientConnected is sent by transports when a client attaches.
	ClientConnected EventType = "client.connected"
)

// Event represents a wardrobe event with type, timestamp, and data.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}
