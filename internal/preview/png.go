package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"gores.dev/internal/twmap"
)

// Image renders the map at one pixel per tile, scaled up by scale with nearest-neighbour sampling
func (p *Palette) Image(m *twmap.Map, scale int) image.Image {
	height, width := m.Size()
	src := image.NewRGBA(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			k, _ := KindAt(m, row, col)
			src.SetRGBA(col, row, p.For(k).Color)
		}
	}
	if scale <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes the scaled preview as PNG
func (p *Palette) WritePNG(w io.Writer, m *twmap.Map, scale int) error {
	if h, _ := m.Size(); h == 0 {
		return fmt.Errorf("preview: map has no game layer")
	}
	if err := png.Encode(w, p.Image(m, scale)); err != nil {
		return fmt.Errorf("preview: encoding png: %w", err)
	}
	return nil
}
