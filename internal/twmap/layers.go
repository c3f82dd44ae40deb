package twmap

// LayerKind identifies a layer variant
type LayerKind string

const (
	LayerGame  LayerKind = "game"
	LayerFront LayerKind = "front"
	LayerTiles LayerKind = "tiles"
	LayerQuads LayerKind = "quads"
)

// Layer is implemented by every layer variant a group can hold
type Layer interface {
	Kind() LayerKind
	Name() string
}

// GameLayer holds the primary gameplay grid
type GameLayer struct {
	Tiles [][]GameTile
}

func (l *GameLayer) Kind() LayerKind { return LayerGame }
func (l *GameLayer) Name() string    { return "Game" }

// FrontLayer holds the secondary gameplay grid (start/finish lines)
type FrontLayer struct {
	Tiles [][]GameTile
}

func (l *FrontLayer) Kind() LayerKind { return LayerFront }
func (l *FrontLayer) Name() string    { return "Front" }

// TilesLayer is a design layer rendered from an image
type TilesLayer struct {
	LayerName string
	Image     *int // index into Map.Images, nil for untextured
	Color     Color
	Tiles     [][]Tile
}

// NewTilesLayer creates an untextured, white-tinted layer of the given shape
func NewTilesLayer(height, width int) *TilesLayer {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}
	return &TilesLayer{Color: White, Tiles: tiles}
}

func (l *TilesLayer) Kind() LayerKind { return LayerTiles }
func (l *TilesLayer) Name() string    { return l.LayerName }

// Point is a quad corner position in map units
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Quad is a four-cornered shape with per-corner colors
type Quad struct {
	Corners [4]Point `json:"corners"`
	Colors  [4]Color `json:"colors"`
}

// QuadsLayer holds free-form quads, used for backgrounds
type QuadsLayer struct {
	LayerName string
	Image     *int
	Quads     []Quad
}

func (l *QuadsLayer) Kind() LayerKind { return LayerQuads }
func (l *QuadsLayer) Name() string    { return l.LayerName }

// ImageRef returns a pointer suitable for the Image fields
func ImageRef(index int) *int {
	return &index
}
