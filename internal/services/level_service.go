package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gores.dev/internal/config"
	"gores.dev/internal/generation"
	"gores.dev/internal/twmap"
)

// Level is a generated map with the inputs that reproduce it
type Level struct {
	Generator string
	RNG       string
	Seed      uint64
	Map       *twmap.Map
	Summary   generation.Summary
}

// LevelService generates levels on demand and caches them by (generator, rng, seed)
type LevelService struct {
	opts      generation.Options
	rng       string
	cacheSize int

	mu     sync.Mutex
	levels map[string]*Level // cached levels
	order  []string          // insertion order, oldest first
}

// NewLevelService creates a LevelService from the configuration
func NewLevelService(cfg *config.Config) *LevelService {
	return &LevelService{
		opts:      cfg.GenerationOptions(),
		rng:       cfg.Generator.RNG,
		cacheSize: cfg.CacheSize,
		levels:    make(map[string]*Level),
	}
}

func levelKey(generator, rng string, seed uint64) string {
	return fmt.Sprintf("%s/%s/%d", generator, rng, seed)
}

// Generators returns the names accepted by GetLevel
func (s *LevelService) Generators() []string {
	return generation.Names()
}

// GetLevel returns the level for a generator and seed, generating it on a cache miss.
// An empty rng uses the configured source.
func (s *LevelService) GetLevel(generator, rng string, seed uint64) (*Level, error) {
	if rng == "" {
		rng = s.rng
	}
	key := levelKey(generator, rng, seed)

	s.mu.Lock()
	if level, cached := s.levels[key]; cached {
		s.mu.Unlock()
		return level, nil
	}
	s.mu.Unlock()

	gen, err := generation.Lookup(generator, s.opts)
	if err != nil {
		return nil, err
	}
	src, err := generation.NewSource(rng, seed)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	m, err := gen.Generate(src)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", key, err)
	}
	level := &Level{
		Generator: generator,
		RNG:       rng,
		Seed:      seed,
		Map:       m,
		Summary:   generation.Summarize(m),
	}
	log.Printf("Generated %s in %v (%s)", key, time.Since(start), level.Summary)

	s.store(key, level)
	return level, nil
}

func (s *LevelService) store(key string, level *Level) {
	if s.cacheSize == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.levels[key]; exists {
		return
	}
	for len(s.order) >= s.cacheSize {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.levels, oldest)
	}
	s.levels[key] = level
	s.order = append(s.order, key)
}

// Cached reports how many levels are held
func (s *LevelService) Cached() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.levels)
}
