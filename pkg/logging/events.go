package logging

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/wardrobe/pkg/catalogs"
)

// EventSink writes catalog change records to a logger at debug level.
type EventSink struct {
	logger *zerolog.Logger
}

var _ catalogs.EventSink = (*EventSink)(nil)

// NewEventSink returns a sink logging to logger, or to the default logger
// when logger is nil.
func NewEventSink(logger *zerolog.Logger) *EventSink {
	if logger == nil {
		logger = Default()
	}
	return &EventSink{logger: logger}
}

// Record implements catalogs.EventSink.
func (s *EventSink) Record(e catalogs.Event) {
	s.logger.Debug().
		Str("event_id", e.ID).
		Str("event", string(e.Type)).
		Str("item_id", e.ItemID).
		Int("count", e.Count).
		Time("at", e.Time).
		Msg(e.Message)
}
