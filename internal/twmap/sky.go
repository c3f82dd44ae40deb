package twmap

import (
	"github.com/aquilax/go-perlin"
)

// Default sky gradient, top and bottom
var (
	skyTop    = Color{R: 94, G: 132, B: 174, A: 255}
	skyBottom = Color{R: 204, G: 232, B: 255, A: 255}
)

// skyExtent is half the side of the background quad in map units
const skyExtent = 800 * 32

// QuadsSky creates the cosmetic background group: one screen-filling quad with a vertical gradient.
// A non-zero variant shifts the corner colors with low-frequency noise seeded by the variant.
func QuadsSky(variant int64) *Group {
	top, bottom := skyTop, skyBottom
	if variant != 0 {
		p := perlin.NewPerlin(2, 2, 3, variant)
		top = shade(top, p.Noise1D(0.25))
		bottom = shade(bottom, p.Noise1D(0.75))
	}

	quad := Quad{
		Corners: [4]Point{
			{-skyExtent, -skyExtent},
			{skyExtent, -skyExtent},
			{-skyExtent, skyExtent},
			{skyExtent, skyExtent},
		},
		Colors: [4]Color{top, top, bottom, bottom},
	}

	g := NewGroup("Sky")
	g.ParallaxX, g.ParallaxY = 0, 0
	g.Layers = append(g.Layers, &QuadsLayer{LayerName: "Quads", Quads: []Quad{quad}})
	return g
}

// shade moves each channel by up to 48 in the direction of n (noise in roughly [-1, 1])
func shade(c Color, n float64) Color {
	delta := int(n * 48)
	return Color{R: clampByte(int(c.R) + delta), G: clampByte(int(c.G) + delta), B: clampByte(int(c.B) + delta/2), A: c.A}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
