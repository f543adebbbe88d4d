// Package constants provides shared constants used throughout the pagescout system.
package constants

import "time"

// Network timeouts.
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the GitHub API.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultShutdownTimeout is how long the HTTP server waits for in-flight
	// requests during graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second
)

// File system permissions.
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x).
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--).
	FilePermissions = 0644
)

// Manifest defaults.
const (
	// DefaultManifestPath is where the generator writes the manifest relative
	// to the working directory, and where the web assets expect to fetch it.
	DefaultManifestPath = "web/projects.json"

	// DefaultServePort is the default port for the local catalog server.
	DefaultServePort = 8080

	// RepositoryPageSize is how many repositories are requested per GitHub
	// API page when enumerating an owner's repositories.
	RepositoryPageSize = 100
)
