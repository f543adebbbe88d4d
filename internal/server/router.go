package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pagescout/pagescout/internal/server/middleware"
	"github.com/pagescout/pagescout/web"
)

// Handler builds the server's router: JSON API, manifest, and static assets.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.Logger(s.logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", s.handleProjects)
		r.Get("/tags", s.handleTags)
	})
	r.Get("/healthz", s.handleHealth)

	// The generated manifest is served from disk, not from the embedded
	// assets, so a fresh generate run is visible immediately.
	r.Get("/projects.json", s.handleManifest)

	r.Handle("/*", http.FileServer(s.assets()))

	return r
}

// assets returns the static asset filesystem: an on-disk directory when
// configured, the embedded copies otherwise.
func (s *Server) assets() http.FileSystem {
	if s.config.AssetsDir != "" {
		return http.Dir(s.config.AssetsDir)
	}
	return http.FS(web.Assets)
}
