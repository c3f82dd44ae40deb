package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gores.dev/internal/generation"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Generator.Gore != generation.DefaultGoreParams() {
		t.Errorf("gore params = %+v", cfg.Generator.Gore)
	}
	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gores.json")
	body := `{"output_dir": "out", "generator": {"rng": "pcg", "gore": {"height": 40}}, "cache_size": 3}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SERVER_ADDR", ":9999")
	t.Setenv("GORES_CACHE", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "out" || cfg.Generator.RNG != "pcg" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Generator.Gore.Height != 40 || cfg.Generator.Gore.Width != 350 {
		t.Errorf("gore params = %+v, want height override only", cfg.Generator.Gore)
	}
	if cfg.ServerAddr != ":9999" || cfg.CacheSize != 7 {
		t.Errorf("env values not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown generator", `{"generator": {"name": "maze"}}`, generation.ErrUnknownGenerator},
		{"unknown rng", `{"generator": {"rng": "dice"}}`, generation.ErrUnknownSource},
		{"bad params", `{"generator": {"gore": {"width": 4}}}`, generation.ErrInvalidParams},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name+".json")
		if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}

	bad := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected a parse error")
	}

	t.Setenv("GORES_CACHE", "lots")
	if _, err := Load(""); err == nil {
		t.Error("expected an error for a non-numeric GORES_CACHE")
	}
}
