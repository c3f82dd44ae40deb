package twmap

// Game tile IDs, DDNet numbering
const (
	TileEmpty    uint8 = 0
	TileHookable uint8 = 1
	TileFreeze   uint8 = 9
	TileStart    uint8 = 33
	TileFinish   uint8 = 34
	TileSpawn    uint8 = 192
)

// TileFlags holds per-tile modifier bits (flip/rotate). Generators currently leave them empty.
type TileFlags uint8

const (
	FlagVFlip TileFlags = 1 << iota
	FlagHFlip
	FlagOpaque
	FlagRotate
)

// GameTile is a tile of a physics layer (game, front)
type GameTile struct {
	ID    uint8     `json:"id"`
	Flags TileFlags `json:"flags,omitempty"`
}

// Tile is a tile of a design layer drawn from an image
type Tile struct {
	ID     uint8     `json:"id"`
	Flags  TileFlags `json:"flags,omitempty"`
	Skip   uint8     `json:"skip,omitempty"`
	Unused uint8     `json:"unused,omitempty"`
}

// Color is an RGBA tint
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// White is the neutral tint
var White = Color{255, 255, 255, 255}
