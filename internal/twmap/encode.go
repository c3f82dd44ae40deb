package twmap

import (
	"encoding/json"
	"fmt"
	"io"
)

// Wire types. Tile grids are written as rows of numeric IDs; flags are dropped when a layer has none.

type mapJSON struct {
	Version int         `json:"version"`
	Info    Info        `json:"info"`
	Images  []Image     `json:"images"`
	Groups  []groupJSON `json:"groups"`
}

type groupJSON struct {
	Name     string      `json:"name"`
	Offset   [2]int32    `json:"offset"`
	Parallax [2]int32    `json:"parallax"`
	Layers   []layerJSON `json:"layers"`
}

type layerJSON struct {
	Type  LayerKind `json:"type"`
	Name  string    `json:"name"`
	Image *int      `json:"image,omitempty"`
	Color *Color    `json:"color,omitempty"`
	Tiles [][]int   `json:"tiles,omitempty"`
	Flags [][]int   `json:"flags,omitempty"`
	Quads []Quad    `json:"quads,omitempty"`
}

// Encode writes the map as indented JSON
func (m *Map) Encode(w io.Writer) error {
	out := mapJSON{
		Version: m.Version,
		Info:    m.Info,
		Images:  m.Images,
		Groups:  make([]groupJSON, 0, len(m.Groups)),
	}
	for _, g := range m.Groups {
		gj := groupJSON{
			Name:     g.Name,
			Offset:   [2]int32{g.OffsetX, g.OffsetY},
			Parallax: [2]int32{g.ParallaxX, g.ParallaxY},
			Layers:   make([]layerJSON, 0, len(g.Layers)),
		}
		for _, l := range g.Layers {
			lj, err := encodeLayer(l)
			if err != nil {
				return err
			}
			gj.Layers = append(gj.Layers, lj)
		}
		out.Groups = append(out.Groups, gj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding map: %w", err)
	}
	return nil
}

func encodeLayer(l Layer) (layerJSON, error) {
	lj := layerJSON{Type: l.Kind(), Name: l.Name()}
	switch v := l.(type) {
	case *GameLayer:
		lj.Tiles, lj.Flags = gameTileIDs(v.Tiles)
	case *FrontLayer:
		lj.Tiles, lj.Flags = gameTileIDs(v.Tiles)
	case *TilesLayer:
		color := v.Color
		lj.Image, lj.Color = v.Image, &color
		lj.Tiles, lj.Flags = tileIDs(v.Tiles)
	case *QuadsLayer:
		lj.Image, lj.Quads = v.Image, v.Quads
	default:
		return lj, fmt.Errorf("encoding map: unsupported layer %T", l)
	}
	return lj, nil
}

func gameTileIDs(tiles [][]GameTile) (ids, flags [][]int) {
	ids = make([][]int, len(tiles))
	flags = make([][]int, len(tiles))
	anyFlags := false
	for y, row := range tiles {
		ids[y] = make([]int, len(row))
		flags[y] = make([]int, len(row))
		for x, t := range row {
			ids[y][x] = int(t.ID)
			flags[y][x] = int(t.Flags)
			anyFlags = anyFlags || t.Flags != 0
		}
	}
	if !anyFlags {
		flags = nil
	}
	return ids, flags
}

func tileIDs(tiles [][]Tile) (ids, flags [][]int) {
	ids = make([][]int, len(tiles))
	flags = make([][]int, len(tiles))
	anyFlags := false
	for y, row := range tiles {
		ids[y] = make([]int, len(row))
		flags[y] = make([]int, len(row))
		for x, t := range row {
			ids[y][x] = int(t.ID)
			flags[y][x] = int(t.Flags)
			anyFlags = anyFlags || t.Flags != 0
		}
	}
	if !anyFlags {
		flags = nil
	}
	return ids, flags
}

// Decode reads a map written by Encode
func Decode(r io.Reader) (*Map, error) {
	var in mapJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding map: %w", err)
	}

	m, err := NewMap(in.Images...)
	if err != nil {
		return nil, fmt.Errorf("decoding map: %w", err)
	}
	m.Version = in.Version
	m.Info = in.Info

	for _, gj := range in.Groups {
		g := &Group{
			Name:      gj.Name,
			OffsetX:   gj.Offset[0],
			OffsetY:   gj.Offset[1],
			ParallaxX: gj.Parallax[0],
			ParallaxY: gj.Parallax[1],
		}
		for _, lj := range gj.Layers {
			l, err := decodeLayer(lj)
			if err != nil {
				return nil, err
			}
			g.Layers = append(g.Layers, l)
		}
		m.Groups = append(m.Groups, g)
	}
	return m, nil
}

func decodeLayer(lj layerJSON) (Layer, error) {
	switch lj.Type {
	case LayerGame:
		return &GameLayer{Tiles: toGameTiles(lj.Tiles, lj.Flags)}, nil
	case LayerFront:
		return &FrontLayer{Tiles: toGameTiles(lj.Tiles, lj.Flags)}, nil
	case LayerTiles:
		l := &TilesLayer{LayerName: lj.Name, Image: lj.Image, Color: White}
		if lj.Color != nil {
			l.Color = *lj.Color
		}
		l.Tiles = make([][]Tile, len(lj.Tiles))
		for y, row := range lj.Tiles {
			l.Tiles[y] = make([]Tile, len(row))
			for x, id := range row {
				l.Tiles[y][x] = Tile{ID: uint8(id), Flags: flagAt(lj.Flags, y, x)}
			}
		}
		return l, nil
	case LayerQuads:
		return &QuadsLayer{LayerName: lj.Name, Image: lj.Image, Quads: lj.Quads}, nil
	}
	return nil, fmt.Errorf("decoding map: unknown layer type %q", lj.Type)
}

func toGameTiles(ids, flags [][]int) [][]GameTile {
	tiles := make([][]GameTile, len(ids))
	for y, row := range ids {
		tiles[y] = make([]GameTile, len(row))
		for x, id := range row {
			tiles[y][x] = GameTile{ID: uint8(id), Flags: flagAt(flags, y, x)}
		}
	}
	return tiles
}

func flagAt(flags [][]int, y, x int) TileFlags {
	if y < len(flags) && x < len(flags[y]) {
		return TileFlags(flags[y][x])
	}
	return 0
}
