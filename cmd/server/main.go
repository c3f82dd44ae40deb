package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"gores.dev/internal/config"
	"gores.dev/internal/handlers"
)

func main() {
	configPath := flag.String("config", "gores.json", "configuration file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("Serving %s levels (%s rng) on %s", cfg.Generator.Name, cfg.Generator.RNG, cfg.ServerAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
