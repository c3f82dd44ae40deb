package preview

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"gores.dev/internal/generation"
	"gores.dev/internal/twmap"
)

func testMap(t *testing.T) *twmap.Map {
	t.Helper()
	p := generation.GoreParams{
		Height: 20, Width: 60, StartBuffer: 8, FinishBuffer: 8,
		Voids: 6, VerticalBlocks: 2, HorizontalBlocks: 2,
	}
	m, err := generation.NewGoreGenerator(p).Generate(generation.NewRNG(11))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return m
}

func TestKindAtPrefersGameTiles(t *testing.T) {
	m := testMap(t)

	if k, ok := KindAt(m, 17, 5); !ok || k != generation.KindSpawn {
		t.Errorf("KindAt spawn = %v, %v", k, ok)
	}
	// border row 0 is hookable even on the start line
	if k, _ := KindAt(m, 0, 8); k != generation.KindHookable {
		t.Errorf("KindAt(0, 8) = %v, want hookable", k)
	}
	if k, _ := KindAt(m, 10, 8); k != generation.KindStart && k != generation.KindFreeze && k != generation.KindHookable {
		t.Errorf("KindAt(10, 8) = %v", k)
	}
	if _, ok := KindAt(m, -1, 0); ok {
		t.Error("KindAt outside map reported ok")
	}
}

func TestWriteASCII(t *testing.T) {
	m := testMap(t)
	var buf bytes.Buffer
	if err := DefaultPalette().WriteASCII(&buf, m); err != nil {
		t.Fatalf("WriteASCII: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("lines = %d, want 20", len(lines))
	}
	if lines[0] != strings.Repeat("#", 60) {
		t.Errorf("top border = %q", lines[0])
	}
	if []rune(lines[17])[5] != '@' {
		t.Errorf("spawn row = %q", lines[17])
	}
}

func TestViewportPadsWithVoid(t *testing.T) {
	m := testMap(t)
	pal := DefaultPalette()
	vp := pal.ViewportAt(m, -2, 55, 4, 10)

	if vp.Glyphs[0][0] != pal.Void {
		t.Error("row above the map should be void")
	}
	if vp.Glyphs[2][9] != pal.Void {
		t.Error("column right of the map should be void")
	}
	if vp.Glyphs[2][0] != pal.Hookable {
		t.Errorf("map corner glyph = %+v, want hookable", vp.Glyphs[2][0])
	}
}

func TestWritePNGScales(t *testing.T) {
	m := testMap(t)
	var buf bytes.Buffer
	if err := DefaultPalette().WritePNG(&buf, m, 3); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 180 || b.Dy() != 60 {
		t.Fatalf("image = %v, want 180x60", b)
	}

	r, g, b, _ := img.At(1, 1).RGBA()
	want := DefaultPalette().Hookable.Color
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("corner pixel = %d,%d,%d, want hookable", r>>8, g>>8, b>>8)
	}

	if err := DefaultPalette().WritePNG(&buf, &twmap.Map{}, 1); err == nil {
		t.Error("expected an error for a map without a game layer")
	}
}

func TestViewerScrollAndDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(30, 11)

	m := testMap(t)
	v := NewViewer(screen, DefaultPalette(), m, "test")
	if row, col := v.Position(); row != 10 || col != 0 {
		t.Fatalf("start position = %d,%d, want 10,0", row, col)
	}

	v.Scroll(100, 100)
	if row, col := v.Position(); row != 10 || col != 30 {
		t.Errorf("clamped position = %d,%d, want 10,30", row, col)
	}
	v.Scroll(-100, -100)
	if row, col := v.Position(); row != 0 || col != 0 {
		t.Errorf("clamped position = %d,%d, want 0,0", row, col)
	}

	v.Draw()
	if r, _, _, _ := screen.GetContent(0, 0); r != '#' {
		t.Errorf("top-left rune = %q, want '#'", r)
	}
	if r, _, _, _ := screen.GetContent(1, 10); r != 't' {
		t.Errorf("status line starts with %q", r)
	}
}
