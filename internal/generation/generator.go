package generation

import (
	"errors"
	"fmt"
	"sort"

	"gores.dev/internal/twmap"
)

// ErrUnknownGenerator is returned by Lookup for an unregistered name
var ErrUnknownGenerator = errors.New("unknown generator")

// Registered generator names
const (
	GeneratorGore = "gore"
)

// Generator turns a random stream into a map
type Generator interface {
	Name() string
	Generate(src Source) (*twmap.Map, error)
}

// Options configure the generators built by Lookup
type Options struct {
	Gore       GoreParams
	SkyVariant int64
}

// DefaultOptions returns the options of the stock levels
func DefaultOptions() Options {
	return Options{Gore: DefaultGoreParams()}
}

var registry = map[string]func(Options) Generator{
	GeneratorGore: func(o Options) Generator {
		g := NewGoreGenerator(o.Gore)
		g.SkyVariant = o.SkyVariant
		return g
	},
}

// Lookup returns the generator registered under name
func Lookup(name string, opts Options) (Generator, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return build(opts), nil
}

// Names lists the registered generators, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Summary describes the game layer of a generated map
type Summary struct {
	Height int            `json:"height"`
	Width  int            `json:"width"`
	Spawn  *Point         `json:"spawn,omitempty"`
	Counts map[Kind]int   `json:"-"`
	Tiles  map[string]int `json:"tiles"`
}

// Summarize counts the tile kinds on the map's game layer
func Summarize(m *twmap.Map) Summary {
	s := Summary{Counts: make(map[Kind]int), Tiles: make(map[string]int)}
	gl := m.GameLayer()
	if gl == nil {
		return s
	}
	s.Height, s.Width = m.Size()
	for row, tiles := range gl.Tiles {
		for col, t := range tiles {
			k, ok := IDToKind(t.ID)
			if !ok {
				continue
			}
			s.Counts[k]++
			if k == KindSpawn && s.Spawn == nil {
				s.Spawn = &Point{X: col, Y: row}
			}
		}
	}
	for k, n := range s.Counts {
		s.Tiles[k.String()] = n
	}
	return s
}

// String formats the summary for log lines
func (s Summary) String() string {
	return fmt.Sprintf("%dx%d hookable=%d freeze=%d empty=%d",
		s.Width, s.Height, s.Counts[KindHookable], s.Counts[KindFreeze], s.Counts[KindEmpty])
}
