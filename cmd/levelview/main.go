package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"gores.dev/internal/config"
	"gores.dev/internal/generation"
	"gores.dev/internal/preview"
	"gores.dev/internal/twmap"
)

func main() {
	configPath := flag.String("config", "gores.json", "configuration file (optional)")
	seed := flag.Uint64("seed", 1, "seed to generate when no map file is given")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: levelview [flags] [map.json]")
		flag.PrintDefaults()
	}
	flag.Parse()

	m, title, err := loadMap(*configPath, *seed, flag.Arg(0))
	if err != nil {
		log.Fatalf("%v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	preview.NewViewer(screen, preview.DefaultPalette(), m, title).Run()
}

// loadMap decodes path, or generates a level from the configuration when path is empty
func loadMap(configPath string, seed uint64, path string) (*twmap.Map, string, error) {
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		m, err := twmap.Decode(f)
		return m, path, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	gen, err := generation.Lookup(cfg.Generator.Name, cfg.GenerationOptions())
	if err != nil {
		return nil, "", err
	}
	src, err := generation.NewSource(cfg.Generator.RNG, seed)
	if err != nil {
		return nil, "", err
	}
	m, err := gen.Generate(src)
	return m, fmt.Sprintf("%s/%s/%d", gen.Name(), cfg.Generator.RNG, seed), err
}
