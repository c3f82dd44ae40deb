package services

import (
	"errors"
	"testing"

	"gores.dev/internal/config"
	"gores.dev/internal/generation"
)

func smallConfig(cacheSize int) *config.Config {
	cfg := config.Default()
	cfg.Generator.Gore = generation.GoreParams{
		Height: 20, Width: 80, StartBuffer: 10, FinishBuffer: 10,
		Voids: 10, VerticalBlocks: 3, HorizontalBlocks: 3,
	}
	cfg.CacheSize = cacheSize
	return cfg
}

func TestGetLevelCaches(t *testing.T) {
	s := NewLevelService(smallConfig(4))

	a, err := s.GetLevel(generation.GeneratorGore, "", 42)
	if err != nil {
		t.Fatalf("GetLevel: %v", err)
	}
	b, err := s.GetLevel(generation.GeneratorGore, generation.SourceLCG, 42)
	if err != nil {
		t.Fatalf("GetLevel: %v", err)
	}
	if a != b {
		t.Error("second request was not served from the cache")
	}
	if a.Summary.Width != 80 || a.RNG != generation.SourceLCG {
		t.Errorf("level = %+v", a)
	}

	c, err := s.GetLevel(generation.GeneratorGore, generation.SourcePCG, 42)
	if err != nil {
		t.Fatalf("GetLevel: %v", err)
	}
	if c == a {
		t.Error("different rng shared a cache entry")
	}
}

func TestGetLevelEvictsOldest(t *testing.T) {
	s := NewLevelService(smallConfig(2))
	first, _ := s.GetLevel(generation.GeneratorGore, "", 1)
	s.GetLevel(generation.GeneratorGore, "", 2)
	s.GetLevel(generation.GeneratorGore, "", 3)

	if n := s.Cached(); n != 2 {
		t.Fatalf("cached = %d, want 2", n)
	}
	again, err := s.GetLevel(generation.GeneratorGore, "", 1)
	if err != nil {
		t.Fatalf("GetLevel: %v", err)
	}
	if again == first {
		t.Error("evicted level was served from the cache")
	}
	if !sameTiles(again, first) {
		t.Error("regenerated level differs from the first generation")
	}
}

func TestGetLevelNoCache(t *testing.T) {
	s := NewLevelService(smallConfig(0))
	if _, err := s.GetLevel(generation.GeneratorGore, "", 5); err != nil {
		t.Fatalf("GetLevel: %v", err)
	}
	if n := s.Cached(); n != 0 {
		t.Errorf("cached = %d with caching disabled", n)
	}
}

func TestGetLevelErrors(t *testing.T) {
	s := NewLevelService(smallConfig(2))
	if _, err := s.GetLevel("maze", "", 1); !errors.Is(err, generation.ErrUnknownGenerator) {
		t.Errorf("err = %v, want ErrUnknownGenerator", err)
	}
	if _, err := s.GetLevel(generation.GeneratorGore, "dice", 1); !errors.Is(err, generation.ErrUnknownSource) {
		t.Errorf("err = %v, want ErrUnknownSource", err)
	}
}

func sameTiles(a, b *Level) bool {
	ta, tb := a.Map.GameLayer().Tiles, b.Map.GameLayer().Tiles
	for row := range ta {
		for col := range ta[row] {
			if ta[row][col] != tb[row][col] {
				return false
			}
		}
	}
	return true
}
