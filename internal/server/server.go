// Package server provides the HTTP API for a wardrobe, with real-time change
// streams over WebSocket and Server-Sent Events.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/agentstation/wardrobe"
	"github.com/agentstation/wardrobe/internal/server/cache"
	"github.com/agentstation/wardrobe/internal/server/events"
	"github.com/agentstation/wardrobe/internal/server/events/adapters"
	"github.com/agentstation/wardrobe/internal/server/metrics"
	"github.com/agentstation/wardrobe/internal/server/sse"
	ws "github.com/agentstation/wardrobe/internal/server/websocket"
	"github.com/agentstation/wardrobe/pkg/catalogs"
	"github.com/agentstation/wardrobe/pkg/errors"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	wardrobe       wardrobe.Wardrobe
	cache          *cache.Cache
	metrics        *metrics.Collector
	broker         *events.Broker
	wsHub          *ws.Hub
	sseBroadcaster *sse.Broadcaster
	upgrader       websocket.Upgrader
	logger         *zerolog.Logger
	config         Config

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startTime time.Time
}

// New creates a server for w. Changes to w are published to every
// connected stream once Start is called.
func New(w wardrobe.Wardrobe, logger *zerolog.Logger, cfg Config) (*Server, error) {
	if w == nil {
		return nil, errors.NewConfigError("server", "wardrobe is required", nil)
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if cfg.PathPrefix == "" {
		cfg.PathPrefix = DefaultConfig().PathPrefix
	}

	logger.Debug().Msg("Creating new server instance")

	broker := events.NewBroker(logger)
	wsHub := ws.NewHub(logger)
	sseBroadcaster := sse.NewBroadcaster(logger)

	broker.Subscribe(adapters.NewWebSocketSubscriber(wsHub))
	broker.Subscribe(adapters.NewSSESubscriber(sseBroadcaster))

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		wardrobe:       w,
		broker:         broker,
		wsHub:          wsHub,
		sseBroadcaster: sseBroadcaster,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		logger:    logger,
		config:    cfg,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}

	if cfg.CacheTTL > 0 {
		s.cache = cache.New(cfg.CacheTTL, cfg.CacheTTL*2)
	}

	if cfg.MetricsEnabled {
		s.metrics = metrics.New()
		broker.OnPublish(func(t events.EventType) {
			s.metrics.Events.WithLabelValues(string(t)).Inc()
		})
		if s.cache != nil {
			s.cache.OnLookup(func(hit bool) {
				if hit {
					s.metrics.CacheHits.Inc()
				} else {
					s.metrics.CacheMisses.Inc()
				}
			})
		}
		s.observeCatalog()
	}

	s.connectHooks()

	logger.Debug().Msg("Server instance created successfully")
	return s, nil
}

// connectHooks publishes wardrobe changes to the broker and invalidates
// everything derived from the catalog.
func (s *Server) connectHooks() {
	s.wardrobe.OnItemAdded(func(item *catalogs.Item) {
		s.changed()
		s.broker.Publish(events.ItemAdded, item.Record())
		s.logger.Debug().Str("item_id", item.ID()).Msg("Item added event published")
	})

	s.wardrobe.OnItemRemoved(func(id string, count int) {
		s.changed()
		s.broker.Publish(events.ItemRemoved, map[string]any{
			"id":    id,
			"count": count,
		})
		s.logger.Debug().Str("item_id", id).Int("count", count).Msg("Item removed event published")
	})

	s.wardrobe.OnCatalogLoaded(func(c *catalogs.Catalog) {
		s.changed()
		s.broker.Publish(events.CatalogLoaded, map[string]any{
			"items": c.Len(),
		})
		s.logger.Debug().Int("items", c.Len()).Msg("Catalog loaded event published")
	})

	s.logger.Info().Msg("Wardrobe hooks connected to event broker")
}

// changed runs after every catalog mutation.
func (s *Server) changed() {
	if s.cache != nil {
		s.cache.Clear()
	}
	s.observeCatalog()
}

func (s *Server) observeCatalog() {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveCatalog(s.wardrobe.Counts(), len(s.wardrobe.Uncategorized()))
}

// Start starts background services (broker, WebSocket hub, SSE broadcaster).
func (s *Server) Start() {
	s.logger.Debug().Msg("Starting background services")

	s.wg.Add(3)
	go func() {
		defer s.wg.Done()
		s.broker.Run(s.ctx)
	}()
	go func() {
		defer s.wg.Done()
		s.wsHub.Run(s.ctx)
	}()
	go func() {
		defer s.wg.Done()
		s.sseBroadcaster.Run(s.ctx)
	}()
}

// Handler returns the configured http.Handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// HTTPServer returns an http.Server for the configured address and
// timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
}

// Shutdown stops background services, waiting until they exit or ctx is
// done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server background services")
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info().Msg("Background services shut down successfully")
		return nil
	case <-ctx.Done():
		s.logger.Warn().Msg("Background services shutdown timed out")
		return ctx.Err()
	}
}

// Cache returns the response cache, or nil when caching is disabled.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (s *Server) Metrics() *metrics.Collector {
	return s.metrics
}

// Broker returns the event broker.
func (s *Server) Broker() *events.Broker {
	return s.broker
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
