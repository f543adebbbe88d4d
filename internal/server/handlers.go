package server

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/pagescout/pagescout/pkg/view"
)

// handleProjects applies the catalog's filter and sort contract server-side:
// ?q= free text, ?tag= topic (or "all"), ?sort=asc|desc.
func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state := view.State{
		Query: query.Get("q"),
		Tag:   query.Get("tag"),
		Order: view.ParseOrder(query.Get("sort")),
	}

	visible := view.Apply(s.loadManifest(), state)
	s.respondJSON(w, http.StatusOK, visible)
}

// handleTags returns the filter vocabulary: every distinct topic, sorted.
func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, view.Vocabulary(s.loadManifest()))
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleManifest serves the generated manifest file from disk.
func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(s.config.ManifestPath); err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, s.config.ManifestPath)
}

// respondJSON writes a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write JSON response")
	}
}
