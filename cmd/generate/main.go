package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"gores.dev/internal/config"
	"gores.dev/internal/generation"
	"gores.dev/internal/preview"
)

var minimum, maximum uint64 = 10000, 99999

func main() {
	configPath := flag.String("config", "gores.json", "configuration file (optional)")
	generator := flag.String("generator", "", "generator name (default from config)")
	rngName := flag.String("rng", "", "random source: lcg or pcg (default from config)")
	seed := flag.Uint64("seed", 0, "seed of the first level, 0 picks one at random")
	count := flag.Int("count", 1, "number of levels, seeds counting up from -seed")
	writePNG := flag.Bool("png", false, "also write a PNG preview")
	writeASCII := flag.Bool("ascii", false, "also write an ASCII preview")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: generate [flags] [output-dir]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *generator != "" {
		cfg.Generator.Name = *generator
	}
	if *rngName != "" {
		cfg.Generator.RNG = *rngName
	}
	if flag.NArg() > 0 {
		cfg.OutputDir = flag.Arg(0)
	}
	if *seed == 0 {
		*seed = rand.Uint64N(maximum-minimum+1) + minimum
	}

	gen, err := generation.Lookup(cfg.Generator.Name, cfg.GenerationOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v (available: %v)\n", err, generation.Names())
		os.Exit(1)
	}

	// Ensure output directory exists
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	palette := preview.DefaultPalette()
	failed := 0
	for i := 0; i < *count; i++ {
		s := *seed + uint64(i)
		fmt.Printf("Generating %s level, %s seed %d...\n", gen.Name(), cfg.Generator.RNG, s)

		src, err := generation.NewSource(cfg.Generator.RNG, s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
			os.Exit(1)
		}
		m, err := gen.Generate(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
			failed++
			continue
		}

		base := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s_%d", gen.Name(), s))
		if err := writeFile(base+".json", func(f *os.File) error { return m.Encode(f) }); err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR writing map: %v\n", err)
			failed++
			continue
		}
		if *writePNG {
			if err := writeFile(base+".png", func(f *os.File) error {
				return palette.WritePNG(f, m, cfg.Preview.Scale)
			}); err != nil {
				fmt.Fprintf(os.Stderr, "  ERROR writing preview: %v\n", err)
			}
		}
		if *writeASCII {
			if err := writeFile(base+".txt", func(f *os.File) error {
				return palette.WriteASCII(f, m)
			}); err != nil {
				fmt.Fprintf(os.Stderr, "  ERROR writing ascii: %v\n", err)
			}
		}

		fmt.Printf("  Created %s.json (%s)\n", base, generation.Summarize(m))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d levels failed\n", failed, *count)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

// writeFile creates path and hands it to write, closing it afterwards
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
