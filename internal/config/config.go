package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gores.dev/internal/generation"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string          `json:"server_addr"`
	OutputDir  string          `json:"output_dir"`
	Generator  GeneratorConfig `json:"generator"`
	Preview    PreviewConfig   `json:"preview"`
	CacheSize  int             `json:"cache_size"`
}

// GeneratorConfig selects and tunes the level generator
type GeneratorConfig struct {
	Name       string                `json:"name"`
	RNG        string                `json:"rng"`
	SkyVariant int64                 `json:"sky_variant"`
	Gore       generation.GoreParams `json:"gore"`
}

// PreviewConfig holds rendering settings for image previews
type PreviewConfig struct {
	Scale int `json:"scale"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ServerAddr: ":8080",
		OutputDir:  "levels",
		Generator: GeneratorConfig{
			Name: generation.GeneratorGore,
			RNG:  generation.SourceLCG,
			Gore: generation.DefaultGoreParams(),
		},
		Preview:   PreviewConfig{Scale: 4},
		CacheSize: 64,
	}
}

// Load reads the configuration: defaults, then the JSON file at path (skipped when path is empty
// or the file does not exist), then environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		default:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		c.ServerAddr = addr
	}
	if dir := os.Getenv("GORES_OUTPUT"); dir != "" {
		c.OutputDir = dir
	}
	if rng := os.Getenv("GORES_RNG"); rng != "" {
		c.Generator.RNG = rng
	}
	if size := os.Getenv("GORES_CACHE"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return fmt.Errorf("invalid GORES_CACHE %q: %w", size, err)
		}
		c.CacheSize = n
	}
	return nil
}

// Validate checks the settings generation depends on
func (c *Config) Validate() error {
	if _, err := generation.Lookup(c.Generator.Name, c.GenerationOptions()); err != nil {
		return err
	}
	if _, err := generation.NewSource(c.Generator.RNG, 0); err != nil {
		return err
	}
	if err := c.Generator.Gore.Validate(); err != nil {
		return err
	}
	if c.Preview.Scale < 1 {
		return fmt.Errorf("preview scale %d must be positive", c.Preview.Scale)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size %d must not be negative", c.CacheSize)
	}
	return nil
}

// GenerationOptions converts the generator settings for generation.Lookup
func (c *Config) GenerationOptions() generation.Options {
	return generation.Options{
		Gore:       c.Generator.Gore,
		SkyVariant: c.Generator.SkyVariant,
	}
}
