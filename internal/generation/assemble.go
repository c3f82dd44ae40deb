package generation

import "gores.dev/internal/twmap"

// Numeric tile IDs of each kind. This is the only place kinds meet the map encoding.
var kindIDs = [...]uint8{
	KindEmpty:    twmap.TileEmpty,
	KindHookable: twmap.TileHookable,
	KindFreeze:   twmap.TileFreeze,
	KindSpawn:    twmap.TileSpawn,
	KindStart:    twmap.TileStart,
	KindFinish:   twmap.TileFinish,
}

// Overlay presentation
const (
	hookableImage = 0
	freezeImage   = 1
)

var freezeTint = twmap.Color{R: 0, G: 0, B: 0, A: 200}

// KindToID returns the map tile ID of a kind
func KindToID(k Kind) uint8 {
	if int(k) < len(kindIDs) {
		return kindIDs[k]
	}
	return twmap.TileEmpty
}

// IDToKind maps a tile ID back to its kind; unknown IDs report ok=false
func IDToKind(id uint8) (Kind, bool) {
	for k, v := range kindIDs {
		if v == id {
			return Kind(k), true
		}
	}
	return KindEmpty, false
}

func gameTiles(g *Grid) [][]twmap.GameTile {
	tiles := make([][]twmap.GameTile, g.Height())
	for row := range tiles {
		tiles[row] = make([]twmap.GameTile, g.Width())
		for col := range tiles[row] {
			c := g.Get(row, col)
			tiles[row][col] = twmap.GameTile{ID: KindToID(c.Kind), Flags: c.Flags}
		}
	}
	return tiles
}

// overlayTiles converts a marker grid. Overlays carry raw image tile indexes, so the kind value is the index.
func overlayTiles(g *Grid) [][]twmap.Tile {
	tiles := make([][]twmap.Tile, g.Height())
	for row := range tiles {
		tiles[row] = make([]twmap.Tile, g.Width())
		for col := range tiles[row] {
			c := g.Get(row, col)
			tiles[row][col] = twmap.Tile{ID: uint8(c.Kind), Flags: c.Flags}
		}
	}
	return tiles
}

// Assemble moves the context's grids into layers and appends the sky and physics groups to m.
// The context gives up its grids.
func (c *Context) Assemble(m *twmap.Map, skyVariant int64) {
	game := &twmap.GameLayer{Tiles: gameTiles(c.Terrain)}
	front := &twmap.FrontLayer{Tiles: gameTiles(c.Front)}

	hookables := twmap.NewTilesLayer(c.Params.Height, c.Params.Width)
	hookables.LayerName = "Hookables"
	hookables.Image = twmap.ImageRef(hookableImage)
	hookables.Tiles = overlayTiles(c.Hookables)

	freezes := twmap.NewTilesLayer(c.Params.Height, c.Params.Width)
	freezes.LayerName = "Freezes"
	freezes.Image = twmap.ImageRef(freezeImage)
	freezes.Tiles = overlayTiles(c.Freezes)
	freezes.Color = freezeTint

	physics := twmap.Physics()
	physics.Layers = append(physics.Layers, game, front, hookables, freezes)

	m.Groups = append(m.Groups, twmap.QuadsSky(skyVariant), physics)

	c.Terrain, c.Front, c.Hookables, c.Freezes = nil, nil, nil, nil
}
