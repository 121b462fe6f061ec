// Package serve implements the serve command.
package serve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/wardrobe/internal/appcontext"
	"github.com/agentstation/wardrobe/internal/server"
	werrors "github.com/agentstation/wardrobe/pkg/errors"
)

// NewCommand creates the serve command.
func NewCommand(app appcontext.Interface) *cobra.Command {
	defaults := server.DefaultConfig()
	host, port := splitAddr(app.ServerAddr(), defaults)

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		GroupID: "management",
		Short:   "Serve the wardrobe over HTTP with live change streams",
		Long: `Serve exposes the wardrobe as a JSON API.

Features:
  - Item, filter, outfit and count endpoints under the API prefix
  - Snapshot save and reload endpoints
  - WebSocket (/events/ws) and Server-Sent Events (/events/stream) change feeds
  - Read response caching, cleared on every change
  - Prometheus metrics on /metrics
  - Graceful shutdown on SIGINT or SIGTERM`,
		Example: `  wardrobe serve
  wardrobe serve --port 3000 --cors
  wardrobe serve --cors-origins "https://closet.example.com" --cache-ttl 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, app)
		},
	}

	cmd.Flags().Int("port", port, "Server port")
	cmd.Flags().String("host", host, "Bind address")

	cmd.Flags().Bool("cors", false, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")

	cmd.Flags().Duration("cache-ttl", defaults.CacheTTL, "Response cache TTL (0 to disable)")

	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "HTTP idle timeout")
	cmd.Flags().Duration("shutdown-timeout", defaults.ShutdownTimeout, "Time allowed to drain connections on shutdown")

	cmd.Flags().Bool("metrics", true, "Enable metrics endpoint")
	cmd.Flags().String("prefix", defaults.PathPrefix, "API path prefix")

	return cmd
}

func runServer(cmd *cobra.Command, app appcontext.Interface) error {
	cfg := parseConfig(cmd)
	logger := app.Logger()

	w, err := app.Wardrobe()
	if err != nil {
		return err
	}
	if w == nil {
		return werrors.NewConfigError("serve", "no wardrobe available", nil)
	}

	logger.Info().
		Int("port", cfg.Port).
		Str("host", cfg.Host).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Dur("cache_ttl", cfg.CacheTTL).
		Str("store", w.StorePath()).
		Msg("Starting API server")

	srv, err := server.New(w, logger, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	srv.Start()

	listener, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		_ = srv.Shutdown(context.Background())
		return fmt.Errorf("listening on %s: %w", cfg.Addr(), err)
	}

	return serveUntilDone(cmd, listener, srv, cfg, logger)
}

// serveUntilDone serves on listener until the command context ends, then
// drains connections and stops the background services.
func serveUntilDone(cmd *cobra.Command, listener net.Listener, srv *server.Server, cfg server.Config, logger *zerolog.Logger) error {
	httpServer := srv.HTTPServer()
	out := cmd.ErrOrStderr()

	logger.Info().Str("addr", listener.Addr().String()).Msg("HTTP server listening")
	fmt.Fprintf(out, "API server listening on %s\n", listener.Addr())
	fmt.Fprintln(out, "   Press Ctrl+C to stop")

	serverErr := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		_ = srv.Shutdown(context.Background())
		return err
	case <-cmd.Context().Done():
		logger.Info().Msg("Shutdown signal received")
		fmt.Fprintln(out, "\nShutting down API server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Background services shutdown had issues")
		}

		logger.Info().Msg("Server stopped gracefully")
		fmt.Fprintln(out, "API server stopped")
		return nil
	}
}

// parseConfig reads the flags into a server configuration. HTTP_HOST and
// HTTP_PORT override flags that were left at their defaults.
func parseConfig(cmd *cobra.Command) server.Config {
	cfg := server.DefaultConfig()
	cfg.Port = mustGetInt(cmd, "port")
	cfg.Host = mustGetString(cmd, "host")
	cfg.CORSEnabled = mustGetBool(cmd, "cors")
	cfg.CORSOrigins = mustGetStringSlice(cmd, "cors-origins")
	cfg.CacheTTL = mustGetDuration(cmd, "cache-ttl")
	cfg.ReadTimeout = mustGetDuration(cmd, "read-timeout")
	cfg.WriteTimeout = mustGetDuration(cmd, "write-timeout")
	cfg.IdleTimeout = mustGetDuration(cmd, "idle-timeout")
	cfg.ShutdownTimeout = mustGetDuration(cmd, "shutdown-timeout")
	cfg.MetricsEnabled = mustGetBool(cmd, "metrics")
	cfg.PathPrefix = mustGetString(cmd, "prefix")

	if len(cfg.CORSOrigins) > 0 {
		cfg.CORSEnabled = true
	}

	if env := os.Getenv("HTTP_PORT"); env != "" && !cmd.Flags().Changed("port") {
		if p, err := parsePort(env); err == nil {
			cfg.Port = p
		}
	}
	if env := os.Getenv("HTTP_HOST"); env != "" && !cmd.Flags().Changed("host") {
		cfg.Host = env
	}

	return cfg
}

// splitAddr turns the configured host:port into flag defaults.
func splitAddr(addr string, defaults server.Config) (string, int) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return defaults.Host, defaults.Port
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return host, defaults.Port
	}
	return host, port
}

// parsePort parses a port number, rejecting values outside 1-65535.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number: %s", portStr)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port out of range: %d", port)
	}
	return port, nil
}
