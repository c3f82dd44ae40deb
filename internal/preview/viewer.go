package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gores.dev/internal/twmap"
)

// Viewer scrolls a map in the terminal
type Viewer struct {
	screen  tcell.Screen
	palette *Palette
	m       *twmap.Map
	title   string

	row, col int // top-left of the view
}

// NewViewer creates a viewer starting at the spawn end of the map
func NewViewer(screen tcell.Screen, palette *Palette, m *twmap.Map, title string) *Viewer {
	v := &Viewer{screen: screen, palette: palette, m: m, title: title}
	height, _ := m.Size()
	_, h := screen.Size()
	v.row = max(height-(h-1), 0)
	return v
}

// Position returns the top-left map position of the view
func (v *Viewer) Position() (row, col int) {
	return v.row, v.col
}

// Scroll moves the view, clamped to the map
func (v *Viewer) Scroll(dRow, dCol int) {
	height, width := v.m.Size()
	w, h := v.screen.Size()
	v.row = clamp(v.row+dRow, 0, max(height-(h-1), 0))
	v.col = clamp(v.col+dCol, 0, max(width-w, 0))
}

// Draw renders the visible part of the map plus a status line
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	vp := v.palette.ViewportAt(v.m, v.row, v.col, h-1, w)
	for y, row := range vp.Glyphs {
		for x, g := range row {
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(g.Color.R), int32(g.Color.G), int32(g.Color.B)))
			if g.Rune == ' ' {
				style = style.Background(tcell.NewRGBColor(int32(g.Color.R), int32(g.Color.G), int32(g.Color.B)))
			}
			v.screen.SetContent(x, y, g.Rune, nil, style)
		}
	}

	status := fmt.Sprintf(" %s  row %d col %d  arrows/hjkl scroll, q quit", v.title, v.row, v.col)
	statusStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		v.screen.SetContent(x, h-1, r, nil, statusStyle)
	}
	v.screen.Show()
}

// HandleEvent applies one terminal event, returning false when the viewer should exit
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.Scroll(0, -1)
		case tcell.KeyRight:
			v.Scroll(0, 1)
		case tcell.KeyUp:
			v.Scroll(-1, 0)
		case tcell.KeyDown:
			v.Scroll(1, 0)
		case tcell.KeyPgDn:
			w, _ := v.screen.Size()
			v.Scroll(0, w)
		case tcell.KeyPgUp:
			w, _ := v.screen.Size()
			v.Scroll(0, -w)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				v.Scroll(0, -8)
			case 'l':
				v.Scroll(0, 8)
			case 'k':
				v.Scroll(-4, 0)
			case 'j':
				v.Scroll(4, 0)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.Scroll(0, 0)
	}
	return true
}

// Run draws and handles events until the user quits
func (v *Viewer) Run() {
	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if !v.HandleEvent(ev) {
			return
		}
		v.Draw()
	}
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
