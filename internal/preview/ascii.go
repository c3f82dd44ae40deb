package preview

import (
	"bufio"
	"io"

	"gores.dev/internal/twmap"
)

// Viewport is a window onto a map, in glyphs
type Viewport struct {
	Row, Col int // top-left map position
	Glyphs   [][]Glyph
}

// ViewportAt returns the height x width window whose top-left is (row, col).
// Positions outside the map use the void glyph.
func (p *Palette) ViewportAt(m *twmap.Map, row, col, height, width int) *Viewport {
	vp := &Viewport{Row: row, Col: col, Glyphs: make([][]Glyph, height)}
	for y := 0; y < height; y++ {
		vp.Glyphs[y] = make([]Glyph, width)
		for x := 0; x < width; x++ {
			k, ok := KindAt(m, row+y, col+x)
			if !ok {
				vp.Glyphs[y][x] = p.Void
				continue
			}
			vp.Glyphs[y][x] = p.For(k)
		}
	}
	return vp
}

// WriteASCII writes the whole map, one text line per row
func (p *Palette) WriteASCII(w io.Writer, m *twmap.Map) error {
	height, width := m.Size()
	vp := p.ViewportAt(m, 0, 0, height, width)

	bw := bufio.NewWriter(w)
	for _, row := range vp.Glyphs {
		for _, g := range row {
			bw.WriteRune(g.Rune)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
