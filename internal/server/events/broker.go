package events

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Broker manages event distribution to multiple subscribers.
type Broker struct {
	subscribers []Subscriber
	events      chan Event
	mu          sync.RWMutex
	logger      *zerolog.Logger
	now         func() time.Time

	// onPublish observes each accepted event, for metrics.
	onPublish func(EventType)
}

// NewBroker creates a new event broker. Subscribers may be added before or
// after Run starts.
func NewBroker(logger *zerolog.Logger) *Broker {
	return &Broker{
		subscribers: make([]Subscriber, 0),
		events:      make(chan Event, 256),
		logger:      logger,
		now:         time.Now,
	}
}

// OnPublish registers a callback invoked for every event accepted by Publish.
func (b *Broker) OnPublish(fn func(EventType)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPublish = fn
}

// Run starts the broker's event loop until the context is cancelled, then
// closes every subscriber.
func (b *Broker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			b.mu.Lock()
			for _, sub := range b.subscribers {
				_ = sub.Close()
			}
			b.subscribers = nil
			b.mu.Unlock()
			b.logger.Info().Msg("Event broker shut down")
			return

		case event := <-b.events:
			b.mu.RLock()
			subs := make([]Subscriber, len(b.subscribers))
			copy(subs, b.subscribers)
			b.mu.RUnlock()

			// Fan-out to all subscribers concurrently
			for _, sub := range subs {
				go func(s Subscriber, e Event) {
					if err := s.Send(e); err != nil {
						b.logger.Warn().
							Err(err).
							Str("event_type", string(e.Type)).
							Msg("Failed to send event to subscriber")
					}
				}(sub, event)
			}

			b.logger.Debug().
				Str("event_type", string(event.Type)).
				Int("subscribers", len(subs)).
				Msg("Event broadcasted")
		}
	}
}

// Publish queues an event for all subscribers. It never blocks; when the
// queue is full the event is dropped and logged.
func (b *Broker) Publish(eventType EventType, data any) {
	event := Event{
		Type:      eventType,
		Timestamp: b.now(),
		Data:      data,
	}

	select {
	case b.events <- event:
		b.mu.RLock()
		fn := b.onPublish
		b.mu.RUnlock()
		if fn != nil {
			fn(eventType)
		}
	default:
		b.logger.Warn().
			Str("event_type", string(eventType)).
			Msg("Event channel full, event dropped")
	}
}

// Subscribe registers a new subscriber to receive events.
func (b *Broker) Subscribe(sub Subscriber) {
	b.mu.Lock()
	b.subscribers = append(b.subscribers, sub)
	total := len(b.subscribers)
	b.mu.Unlock()

	b.logger.Debug().Int("total_subscribers", total).Msg("Subscriber registered")
}

// Unsubscribe removes and closes a subscriber.
func (b *Broker) Unsubscribe(sub Subscriber) {
	b.mu.Lock()
	for i, s := range b.subscribers {
		if s == sub {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			_ = s.Close()
			break
		}
	}
	total := len(b.subscribers)
	b.mu.Unlock()

	b.logger.Debug().Int("total_subscribers", total).Msg("Subscriber unregistered")
}

// SubscriberCount returns the current number of subscribers.
func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
