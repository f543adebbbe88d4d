package server

import (
	"time"

	"github.com/pagescout/pagescout/pkg/constants"
)

// Config holds the catalog server configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// ManifestPath is the generated manifest on disk. It is read per
	// request so a regeneration is picked up without a restart.
	ManifestPath string

	// AssetsDir optionally serves browser assets from a directory instead
	// of the embedded copies, for live editing.
	AssetsDir string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Port:            constants.DefaultServePort,
		ManifestPath:    constants.DefaultManifestPath,
		ShutdownTimeout: constants.DefaultShutdownTimeout,
	}
}
