package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/mkoster/go-whitted-raytracer/pkg/renderer"
	"github.com/mkoster/go-whitted-raytracer/pkg/scene"
)

const (
	minResolution = 16
	maxResolution = 2048
	maxDepth      = 64
)

// Server handles web requests for the raytracer
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// Handler returns the server's route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"scenes": {"default"}})
}

// handleRender renders a built-in scene and responds with a PNG.
// Query parameters: scene (built-in name), res, reflections.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sc, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	img, stats := renderer.RenderParallel(sc, 0)
	log.Printf("Rendered %dx%d: %d/%d pixels hit geometry, %d bounces",
		sc.Config.Resolution, sc.Config.Resolution,
		stats.HitPixels, stats.TotalPixels, stats.ReflectionBounces)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}

// parseRenderRequest builds a configured scene from query parameters
func (s *Server) parseRenderRequest(r *http.Request) (*scene.Scene, error) {
	query := r.URL.Query()

	sceneName := query.Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}
	if sceneName != "default" {
		return nil, fmt.Errorf("unknown scene %q", sceneName)
	}
	sc := scene.NewDefaultScene()

	if raw := query.Get("res"); raw != "" {
		res, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("res: %w", err)
		}
		if res < minResolution || res > maxResolution {
			return nil, fmt.Errorf("res must be in [%d, %d], got %d", minResolution, maxResolution, res)
		}
		sc.Config.Resolution = res
	}

	if raw := query.Get("reflections"); raw != "" {
		depth, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("reflections: %w", err)
		}
		if depth < 0 || depth > maxDepth {
			return nil, fmt.Errorf("reflections must be in [0, %d], got %d", maxDepth, depth)
		}
		sc.Config.ReflectionDepth = depth
	}

	return sc, nil
}
