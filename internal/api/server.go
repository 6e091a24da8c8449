// Package api provides the HTTP API for generating and querying maps.
// GET endpoints are public (read-only observation).
// POST/DELETE endpoints require a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/talgya/hexlands/internal/entropy"
	"github.com/talgya/hexlands/internal/persistence"
	"github.com/talgya/hexlands/internal/world"
)

const defaultListLimit = 50

// Server serves stored maps over HTTP and generates new ones on demand.
type Server struct {
	DB       *persistence.DB
	Entropy  *entropy.Client
	Port     int
	AdminKey string // Bearer token for POST/DELETE endpoints. Empty = disabled.
}

// Router builds the chi router with all routes configured.
func (s *Server) Router() http.Handler {
	genLimiter := NewRateLimiter(30, time.Hour)

	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints (read-only observation).
		r.Get("/status", s.handleStatus)
		r.Get("/maps", s.handleListMaps)
		r.Get("/maps/{id}", s.handleMapDetail)
		r.Get("/maps/{id}/plan", s.handleRenderPlan)

		// Admin endpoints.
		r.Post("/maps", s.adminOnly(RateLimitMiddleware(genLimiter, s.handleGenerate)))
		r.Delete("/maps/{id}", s.adminOnly(s.handleDeleteMap))
	})

	return r
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(addr, s.Router()); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// adminOnly wraps a handler to require bearer token auth.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.AdminKey == "" {
			http.Error(w, "admin endpoints disabled (no HEXLANDS_ADMIN_KEY set)", http.StatusForbidden)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.AdminKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	maps, err := s.DB.ListMaps(defaultListLimit)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{
		"service": "hexlands",
		"maps":    len(maps),
	})
}

func (s *Server) handleListMaps(w http.ResponseWriter, r *http.Request) {
	maps, err := s.DB.ListMaps(defaultListLimit)
	if err != nil {
		slog.Error("list maps failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"maps": maps})
}

func (s *Server) handleMapDetail(w http.ResponseWriter, r *http.Request) {
	m, ok := s.loadMap(w, r)
	if !ok {
		return
	}
	writeJSON(w, m)
}

// handleRenderPlan returns the tile-draw instruction list for a stored map,
// including the border overdraw bands.
func (s *Server) handleRenderPlan(w http.ResponseWriter, r *http.Request) {
	m, ok := s.loadMap(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]any{
		"grid": m.Grid,
		"plan": world.RenderPlan(m),
	})
}

func (s *Server) loadMap(w http.ResponseWriter, r *http.Request) (*world.MapData, bool) {
	id := chi.URLParam(r, "id")
	m, err := s.DB.LoadMap(id)
	if errors.Is(err, persistence.ErrNotFound) {
		http.Error(w, "map not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		slog.Error("load map failed", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	return m, true
}

// handleGenerate creates a new map from the posted parameters, stores it, and
// returns the id. Zero or omitted fields fall back to the defaults; a zero
// seed draws one from the entropy source.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Width      int   `json:"width"`
		Height     int   `json:"height"`
		NumRegions int   `json:"num_regions"`
		Seed       int64 `json:"seed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cfg := world.DefaultGenConfig()
	if req.Width > 0 {
		cfg.Width = req.Width
	}
	if req.Height > 0 {
		cfg.Height = req.Height
	}
	if req.NumRegions > 0 {
		cfg.NumRegions = req.NumRegions
	}
	cfg.Seed = req.Seed
	if cfg.Seed == 0 {
		cfg.Seed = entropy.SeedFromSource(s.Entropy)
	}

	m, err := world.Generate(cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.DB.SaveMap(m)
	if err != nil {
		slog.Error("save map failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("map generated", "id", id, "seed", m.Seed,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	writeJSON(w, map[string]any{"id": id, "seed": m.Seed})
}

func (s *Server) handleDeleteMap(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.DB.DeleteMap(id); err != nil {
		slog.Error("delete map failed", "id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"deleted": id})
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
