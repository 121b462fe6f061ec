package catalogs

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a catalog mutation.
type EventType string

// Event types.
const (
	EventItemAdded   EventType = "item_added"
	EventItemRemoved EventType = "item_removed"
)

// Event is a change record emitted after a mutation.
type Event struct {
	ID      string    `json:"id" yaml:"id"`
	Type    EventType `json:"type" yaml:"type"`
	ItemID  string    `json:"item_id" yaml:"item_id"`
	Count   int       `json:"count" yaml:"count"` // items affected; 0 for a no-op remove
	Message string    `json:"message" yaml:"message"`
	Time    time.Time `json:"time" yaml:"time"`
}

// EventSink receives change records from a catalog. The sink is owned by
// the caller and invoked synchronously on the mutating goroutine.
type EventSink interface {
	Record(Event)
}

// SinkFunc adapts a function to an EventSink.
type SinkFunc func(Event)

// Record implements EventSink.
func (f SinkFunc) Record(e Event) {
	f(e)
}

// EventLog is an in-memory EventSink that keeps every event in order.
type EventLog struct {
	events []Event
}

// Record implements EventSink.
func (l *EventLog) Record(e Event) {
	l.events = append(l.events, e)
}

// Events returns a copy of the recorded events.
func (l *EventLog) Events() []Event {
	return append([]Event(nil), l.events...)
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Clear drops all recorded events.
func (l *EventLog) Clear() {
	l.events = nil
}

func newEvent(typ EventType, itemID string, count int, at time.Time) Event {
	msg := "Clothing item added."
	if typ == EventItemRemoved {
		msg = "Clothing item removed."
	}
	return Event{
		ID:      uuid.NewString(),
		Type:    typ,
		ItemID:  itemID,
		Count:   count,
		Message: msg,
		Time:    at,
	}
}
