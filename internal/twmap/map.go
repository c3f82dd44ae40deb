package twmap

import (
	"errors"
	"fmt"
)

// ErrInvalidImage is returned when a map is constructed with a bad image table
var ErrInvalidImage = errors.New("twmap: invalid image")

// Version is the map format revision written into every map
const Version = 4

// Image is an entry of the map's image table
type Image struct {
	Name     string `json:"name"`
	External bool   `json:"external"`
}

// Info holds the map's descriptive metadata
type Info struct {
	Author   string   `json:"author,omitempty"`
	Version  string   `json:"version,omitempty"`
	Credits  string   `json:"credits,omitempty"`
	License  string   `json:"license,omitempty"`
	Settings []string `json:"settings,omitempty"`
}

// Group is an ordered list of layers sharing offset and parallax
type Group struct {
	Name      string
	OffsetX   int32
	OffsetY   int32
	ParallaxX int32
	ParallaxY int32
	Layers    []Layer
}

// NewGroup creates an empty group with neutral parallax
func NewGroup(name string) *Group {
	return &Group{Name: name, ParallaxX: 100, ParallaxY: 100}
}

// Physics creates the group that carries the gameplay layers
func Physics() *Group {
	return NewGroup("Game")
}

// IsPhysics reports whether the group carries a game layer
func (g *Group) IsPhysics() bool {
	for _, l := range g.Layers {
		if l.Kind() == LayerGame {
			return true
		}
	}
	return false
}

// Map is the container generators fill
type Map struct {
	Version int
	Info    Info
	Images  []Image
	Groups  []*Group
}

// NewMap creates an empty map with the given image table
func NewMap(images ...Image) (*Map, error) {
	seen := make(map[string]bool, len(images))
	for i, img := range images {
		if img.Name == "" {
			return nil, fmt.Errorf("%w: image %d has no name", ErrInvalidImage, i)
		}
		if seen[img.Name] {
			return nil, fmt.Errorf("%w: duplicate image %q", ErrInvalidImage, img.Name)
		}
		seen[img.Name] = true
	}

	return &Map{
		Version: Version,
		Info:    Info{Author: "gores.dev", Version: "1"},
		Images:  images,
		Groups:  make([]*Group, 0, 2),
	}, nil
}

// CreateInitial creates the standard empty map: image 0 textures hookables, image 1 textures freeze
func CreateInitial() (*Map, error) {
	return NewMap(
		Image{Name: "generic_unhookable", External: true},
		Image{Name: "bg_cloud1", External: true},
	)
}

// PhysicsGroup returns the first group carrying a game layer, or nil
func (m *Map) PhysicsGroup() *Group {
	for _, g := range m.Groups {
		if g.IsPhysics() {
			return g
		}
	}
	return nil
}

// GameLayer returns the map's game layer, or nil
func (m *Map) GameLayer() *GameLayer {
	g := m.PhysicsGroup()
	if g == nil {
		return nil
	}
	for _, l := range g.Layers {
		if gl, ok := l.(*GameLayer); ok {
			return gl
		}
	}
	return nil
}

// FrontLayer returns the map's front layer, or nil
func (m *Map) FrontLayer() *FrontLayer {
	g := m.PhysicsGroup()
	if g == nil {
		return nil
	}
	for _, l := range g.Layers {
		if fl, ok := l.(*FrontLayer); ok {
			return fl
		}
	}
	return nil
}

// Size returns the height and width of the game layer
func (m *Map) Size() (height, width int) {
	gl := m.GameLayer()
	if gl == nil || len(gl.Tiles) == 0 {
		return 0, 0
	}
	return len(gl.Tiles), len(gl.Tiles[0])
}
