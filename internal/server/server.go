// Package server provides the HTTP surfaces of the tracker and the scene client.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ayusman/holoblocks/internal/scene"
	"github.com/ayusman/holoblocks/internal/store"
)

// Scene is the read side of a running scene session.
type Scene interface {
	SessionID() string
	Snapshot() *scene.Snapshot
	Image() string
}

// Config holds the server configuration. Routes are only mounted for the
// parts that are set.
type Config struct {
	StaticDir string
	Scene     Scene        // /api/scene, /api/image
	SceneFeed http.Handler // /api/scene/ws
	Store     *store.Store // /api/events
	Frames    FrameSource  // /api/stream
	Feed      http.Handler // tracker frames at /ws, and / without a static dir
}

// Server represents the HTTP server.
type Server struct {
	config Config
	router *chi.Mux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		router: chi.NewRouter(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.router
	r.Use(middleware.Recoverer)

	r.Get("/api/health", s.handleHealth)

	if s.config.Scene != nil {
		r.Get("/api/scene", s.handleScene)
		r.Get("/api/image", s.handleImage)
	}
	if s.config.SceneFeed != nil {
		r.Get("/api/scene/ws", s.config.SceneFeed.ServeHTTP)
	}
	if s.config.Store != nil {
		r.Get("/api/events", s.handleEvents)
	}
	if s.config.Frames != nil {
		r.Get("/api/stream", NewStreamHandler(s.config.Frames).ServeHTTP)
	}
	if s.config.Feed != nil {
		r.Get("/ws", s.config.Feed.ServeHTTP)
		if s.config.StaticDir == "" {
			r.Get("/", s.config.Feed.ServeHTTP)
		}
	}

	if s.config.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.config.StaticDir)))
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	})
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.config.Scene.Snapshot())
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	img := s.config.Scene.Image()
	if img == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image": img})
}

// writeJSON writes data as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response as JSON.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
