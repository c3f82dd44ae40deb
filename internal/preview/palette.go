package preview

import (
	"image/color"

	"gores.dev/internal/generation"
	"gores.dev/internal/twmap"
)

// Glyph is how one tile kind is drawn
type Glyph struct {
	Rune  rune
	Color color.RGBA
}

// Palette defines the glyph of every tile kind
type Palette struct {
	Empty    Glyph
	Hookable Glyph
	Freeze   Glyph
	Spawn    Glyph
	Start    Glyph
	Finish   Glyph

	// Void is drawn outside the map
	Void Glyph
}

// DefaultPalette returns the standard preview palette
func DefaultPalette() *Palette {
	return &Palette{
		Empty:    Glyph{' ', color.RGBA{204, 232, 255, 255}},
		Hookable: Glyph{'#', color.RGBA{150, 110, 70, 255}},
		Freeze:   Glyph{'~', color.RGBA{40, 40, 64, 255}},
		Spawn:    Glyph{'@', color.RGBA{255, 80, 80, 255}},
		Start:    Glyph{'[', color.RGBA{80, 200, 80, 255}},
		Finish:   Glyph{']', color.RGBA{200, 80, 200, 255}},
		Void:     Glyph{'?', color.RGBA{42, 42, 42, 255}},
	}
}

// For returns the glyph of a kind
func (p *Palette) For(k generation.Kind) Glyph {
	switch k {
	case generation.KindHookable:
		return p.Hookable
	case generation.KindFreeze:
		return p.Freeze
	case generation.KindSpawn:
		return p.Spawn
	case generation.KindStart:
		return p.Start
	case generation.KindFinish:
		return p.Finish
	}
	return p.Empty
}

// KindAt resolves what a player sees at (row, col): front markers over empty game tiles.
// ok is false outside the map.
func KindAt(m *twmap.Map, row, col int) (k generation.Kind, ok bool) {
	game := m.GameLayer()
	if game == nil || row < 0 || row >= len(game.Tiles) || col < 0 || col >= len(game.Tiles[row]) {
		return generation.KindEmpty, false
	}

	k, _ = generation.IDToKind(game.Tiles[row][col].ID)
	if k != generation.KindEmpty {
		return k, true
	}
	if front := m.FrontLayer(); front != nil && row < len(front.Tiles) && col < len(front.Tiles[row]) {
		if fk, known := generation.IDToKind(front.Tiles[row][col].ID); known {
			return fk, true
		}
	}
	return k, true
}
