package server

import (
	"net"
	"strconv"
	"time"

	"github.com/agentstation/wardrobe/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	Host string
	Port int

	// PathPrefix is where the API routes are mounted.
	PathPrefix string

	CORSEnabled bool
	CORSOrigins []string

	// CacheTTL bounds how long read responses are reused. Zero disables
	// the response cache.
	CacheTTL time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	MetricsEnabled bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:            constants.DefaultServerHost,
		Port:            constants.DefaultServerPort,
		PathPrefix:      constants.APIPrefix,
		CORSOrigins:     []string{},
		CacheTTL:        5 * time.Minute,
		ReadTimeout:     constants.ReadTimeout,
		WriteTimeout:    constants.WriteTimeout,
		IdleTimeout:     constants.IdleTimeout,
		ShutdownTimeout: constants.ShutdownTimeout,
		MetricsEnabled:  true,
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
