package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AmineEl59/ProjetRayTracer/pkg/config"
	"github.com/AmineEl59/ProjetRayTracer/pkg/loaders"
	"github.com/AmineEl59/ProjetRayTracer/pkg/scene"
)

var errUnknownScene = errors.New("unknown scene")

// Server serves scene listings, pixel inspection and live tile-streamed renders
type Server struct {
	addr      string
	scenesDir string
	workers   int
	tileSize  int
	maxDepth  int // Overrides the scene's maxdepth when > 0
}

// NewServer creates a new web server from the loaded configuration
func NewServer(cfg *config.Config) *Server {
	return &Server{
		addr:      cfg.Server.Addr,
		scenesDir: cfg.Server.ScenesDir,
		workers:   cfg.Workers,
		tileSize:  cfg.TileSize,
		maxDepth:  cfg.MaxDepthOverride,
	}
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	log.Info().Str("addr", s.addr).Str("scenes_dir", s.scenesDir).Msg("starting web server")
	return http.ListenAndServe(s.addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the scene files found in the scenes directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		log.Error().Err(err).Str("dir", s.scenesDir).Msg("listing scenes failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// loadScene builds a built-in scene or parses a scene file from the scenes directory.
// File scenes may be named by their listing ID (file:<name>) or by their file name.
func (s *Server) loadScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: scene parameter is required", errUnknownScene)
	}
	if sceneObj, ok := scene.NewBuiltinScene(name); ok {
		return sceneObj, nil
	}

	path, err := s.resolveSceneFile(name)
	if err != nil {
		return nil, err
	}
	sceneObj, err := loaders.LoadScene(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errUnknownScene, name)
		}
		return nil, err
	}
	return sceneObj, nil
}

func (s *Server) resolveSceneFile(name string) (string, error) {
	base, ok := strings.CutPrefix(name, scene.TypeFile+":")
	if !ok {
		return loaders.ResolveScenePath(s.scenesDir, name)
	}

	for _, ext := range scene.SceneExtensions {
		path, err := loaders.ResolveScenePath(s.scenesDir, base+ext)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", errUnknownScene, name)
}

// sceneErrorStatus maps a scene loading error to an HTTP status
func sceneErrorStatus(err error) int {
	if errors.Is(err, errUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("writing response failed")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
