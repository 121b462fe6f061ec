// Package constants provides shared constants used throughout the wardrobe codebase.
// This includes file permissions, storage defaults, server timeouts, and the
// names used for configuration and environment lookups.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Storage constants describe where and how the wardrobe is persisted
const (
	// DefaultStoreDir is the directory under the user's home holding wardrobe data
	DefaultStoreDir = ".wardrobe"

	// DefaultStoreFile is the snapshot file name inside DefaultStoreDir
	DefaultStoreFile = "wardrobe.json"

	// JSONIndent is the indentation used when writing snapshots
	JSONIndent = "    "

	// TempFilePattern names the scratch file used for atomic snapshot writes
	TempFilePattern = ".wardrobe-*.tmp"
)

// Configuration constants
const (
	// AppName is the name of the application
	AppName = "wardrobe"

	// ConfigFileName is the config file name searched for in the home directory
	ConfigFileName = ".wardrobe"

	// EnvPrefix is the prefix for environment variables read by the CLI
	EnvPrefix = "WARDROBE"
)

// Server constants
const (
	// DefaultServerHost is the address the HTTP API binds to by default
	DefaultServerHost = "localhost"

	// DefaultServerPort is the port the HTTP API listens on by default
	DefaultServerPort = 8080

	// APIPrefix is the path prefix of every versioned API route
	APIPrefix = "/api/v1"

	// ReadTimeout bounds how long the server reads a request
	ReadTimeout = 10 * time.Second

	// WriteTimeout bounds how long the server writes a response
	WriteTimeout = 10 * time.Second

	// IdleTimeout bounds keep-alive connections
	IdleTimeout = 60 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests on shutdown
	ShutdownTimeout = 5 * time.Second

	// MaxRequestBodySize caps request bodies accepted by the API in bytes
	MaxRequestBodySize = 1 << 20
)
