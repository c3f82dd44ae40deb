package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gores.dev/internal/config"
	"gores.dev/internal/middleware"
	"gores.dev/internal/preview"
	"gores.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize services
	levelService := services.NewLevelService(cfg)

	// Initialize handlers
	levelHandler := NewLevelHandler(levelService, preview.DefaultPalette(), cfg.Preview.Scale)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/generators", levelHandler.ListGenerators)

		r.Route("/levels/{generator}/{seed}", func(r chi.Router) {
			r.Get("/", levelHandler.GetLevel)
			r.Get("/map", levelHandler.GetMap)
			r.Get("/preview.png", levelHandler.GetPreview)
			r.Get("/ascii", levelHandler.GetASCII)
		})

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
