package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gores.dev/internal/generation"
	"gores.dev/internal/models"
	"gores.dev/internal/preview"
	"gores.dev/internal/services"
)

// maxPreviewScale bounds the pixels per tile of preview images
const maxPreviewScale = 16

// LevelHandler handles level generation endpoints
type LevelHandler struct {
	levelService *services.LevelService
	palette      *preview.Palette
	scale        int
}

// NewLevelHandler creates a new LevelHandler
func NewLevelHandler(ls *services.LevelService, palette *preview.Palette, scale int) *LevelHandler {
	return &LevelHandler{levelService: ls, palette: palette, scale: scale}
}

// ListGenerators handles GET /api/generators
func (h *LevelHandler) ListGenerators(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.GeneratorsResponse{
		Generators: h.levelService.Generators(),
		RNGs:       []string{generation.SourceLCG, generation.SourcePCG},
	})
}

// GetLevel handles GET /api/levels/{generator}/{seed} - returns the level summary
func (h *LevelHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	level, ok := h.level(w, r)
	if !ok {
		return
	}

	base := fmt.Sprintf("/api/levels/%s/%d", level.Generator, level.Seed)
	query := "?rng=" + level.RNG
	resp := models.LevelResponse{
		Generator: level.Generator,
		RNG:       level.RNG,
		Seed:      level.Seed,
		Height:    level.Summary.Height,
		Width:     level.Summary.Width,
		Tiles:     level.Summary.Tiles,
		Links: models.LevelLinks{
			Map:     base + "/map" + query,
			Preview: base + "/preview.png" + query,
			ASCII:   base + "/ascii" + query,
		},
	}
	if sp := level.Summary.Spawn; sp != nil {
		resp.Spawn = &models.Position{X: sp.X, Y: sp.Y}
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetMap handles GET /api/levels/{generator}/{seed}/map - returns the full map container
func (h *LevelHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	level, ok := h.level(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := level.Map.Encode(w); err != nil {
		log.Printf("Error encoding map: %v", err)
	}
}

// GetPreview handles GET /api/levels/{generator}/{seed}/preview.png
func (h *LevelHandler) GetPreview(w http.ResponseWriter, r *http.Request) {
	scale := clamp(parseIntParam(r, "scale", h.scale), 1, maxPreviewScale)

	level, ok := h.level(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := h.palette.WritePNG(w, level.Map, scale); err != nil {
		log.Printf("Error writing preview: %v", err)
	}
}

// GetASCII handles GET /api/levels/{generator}/{seed}/ascii
func (h *LevelHandler) GetASCII(w http.ResponseWriter, r *http.Request) {
	level, ok := h.level(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := h.palette.WriteASCII(w, level.Map); err != nil {
		log.Printf("Error writing ascii: %v", err)
	}
}

// level resolves the route's level, writing the error response when it cannot
func (h *LevelHandler) level(w http.ResponseWriter, r *http.Request) (*services.Level, bool) {
	generator := chi.URLParam(r, "generator")
	seed, err := strconv.ParseUint(chi.URLParam(r, "seed"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid seed")
		return nil, false
	}

	level, err := h.levelService.GetLevel(generator, r.URL.Query().Get("rng"), seed)
	switch {
	case errors.Is(err, generation.ErrUnknownGenerator):
		respondError(w, http.StatusNotFound, err.Error())
		return nil, false
	case errors.Is(err, generation.ErrUnknownSource):
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	case err != nil:
		log.Printf("Error generating level: %v", err)
		respondError(w, http.StatusInternalServerError, "Generation failed")
		return nil, false
	}
	return level, true
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
