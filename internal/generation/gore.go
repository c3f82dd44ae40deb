package generation

import (
	"errors"
	"fmt"

	"gores.dev/internal/twmap"
)

// ErrInvalidParams is returned when GoreParams cannot describe a level
var ErrInvalidParams = errors.New("invalid generator params")

// GoreParams are the fixed dimensions and iteration counts of a gore level
type GoreParams struct {
	Height       int `json:"height"`
	Width        int `json:"width"`
	StartBuffer  int `json:"start_buffer"`
	FinishBuffer int `json:"finish_buffer"`

	Voids            int `json:"voids"`
	VerticalBlocks   int `json:"vertical_blocks"`
	HorizontalBlocks int `json:"horizontal_blocks"`
}

// DefaultGoreParams returns the standard 60x350 level
func DefaultGoreParams() GoreParams {
	return GoreParams{
		Height:           60,
		Width:            350,
		StartBuffer:      10,
		FinishBuffer:     10,
		Voids:            100,
		VerticalBlocks:   30,
		HorizontalBlocks: 45,
	}
}

// Validate checks the params describe a level with a playable interior
func (p GoreParams) Validate() error {
	switch {
	case p.Height < 3:
		return fmt.Errorf("%w: height %d, need at least 3", ErrInvalidParams, p.Height)
	case p.Width < 7:
		return fmt.Errorf("%w: width %d, need at least 7", ErrInvalidParams, p.Width)
	case p.StartBuffer < 1:
		return fmt.Errorf("%w: start buffer %d, need at least 1", ErrInvalidParams, p.StartBuffer)
	case p.FinishBuffer < 1:
		return fmt.Errorf("%w: finish buffer %d, need at least 1", ErrInvalidParams, p.FinishBuffer)
	case p.StartBuffer >= p.Width-p.FinishBuffer:
		return fmt.Errorf("%w: buffers %d+%d leave no interior in width %d",
			ErrInvalidParams, p.StartBuffer, p.FinishBuffer, p.Width)
	case p.Voids < 0 || p.VerticalBlocks < 0 || p.HorizontalBlocks < 0:
		return fmt.Errorf("%w: negative iteration count", ErrInvalidParams)
	}
	return nil
}

// Draws returns how many values one generation run takes from its Source
func (p GoreParams) Draws() int {
	return 4 * (p.Voids + p.VerticalBlocks + p.HorizontalBlocks)
}

// Carving geometry
const (
	voidBorder  = 3
	blockMargin = 7
)

// Context is the state of one generation run. It owns its grids until assembly.
type Context struct {
	Params GoreParams

	Terrain   *Grid // game layer
	Front     *Grid // start/finish lines
	Hookables *Grid // overlay drawn with image 0
	Freezes   *Grid // overlay drawn with image 1
}

// NewContext allocates the four grids of a run
func NewContext(p GoreParams) *Context {
	return &Context{
		Params:    p,
		Terrain:   NewGrid(p.Height, p.Width, Cell{Kind: KindEmpty}),
		Front:     NewGrid(p.Height, p.Width, Cell{Kind: KindEmpty}),
		Hookables: NewGrid(p.Height, p.Width, Cell{}),
		Freezes:   NewGrid(p.Height, p.Width, Cell{}),
	}
}

// interiorEnd is the first column of the finish buffer
func (c *Context) interiorEnd() int {
	return c.Params.Width - c.Params.FinishBuffer
}

// SpawnPoint is where the spawn tile goes: near the bottom-left, inside the start buffer
func (c *Context) SpawnPoint() Point {
	return Point{X: 5, Y: c.Params.Height - 3}
}

func (c *Context) placeSpawn() {
	sp := c.SpawnPoint()
	c.Terrain.SetKind(sp.Y, sp.X, KindSpawn)
}

func (c *Context) placeStartFinish() {
	for row := 0; row < c.Params.Height; row++ {
		c.Front.SetKind(row, c.Params.StartBuffer, KindStart)
		c.Front.SetKind(row, c.interiorEnd(), KindFinish)
	}
}

func (c *Context) fillInterior() {
	c.Terrain.FillColumns(c.Params.StartBuffer+1, c.interiorEnd(), KindHookable)
}

// randomCenter draws a column then a row
func (c *Context) randomCenter(src Source) (x, y int) {
	x = src.Range(c.Params.StartBuffer, c.interiorEnd())
	y = src.Range(0, c.Params.Height)
	return x, y
}

// carveVoids empties hollow rectangular shells, leaving their cores as floating obstacles
func (c *Context) carveVoids(src Source) {
	for i := 0; i < c.Params.Voids; i++ {
		x, y := c.randomCenter(src)
		width := src.Range(6, 30)
		height := src.Range(3, 15)
		c.Terrain.PaintRectBorderCentered(x, y, width, height, voidBorder, KindEmpty)
	}
}

// placeBlocks clears a rectangle then fills a smaller concentric one, so each block keeps an empty margin
func (c *Context) placeBlocks(src Source, count, minW, maxW, minH, maxH int) {
	for i := 0; i < count; i++ {
		x, y := c.randomCenter(src)
		width := src.Range(minW, maxW)
		height := src.Range(minH, maxH)
		c.Terrain.PaintRectCentered(x, y, width, height, KindEmpty)

		width = max(width-blockMargin, 0)
		height = max(height-blockMargin, 0)
		c.Terrain.PaintRectCentered(x, y, width, height, KindHookable)
	}
}

func (c *Context) placeVerticalBlocks(src Source) {
	c.placeBlocks(src, c.Params.VerticalBlocks, 11, 14, 17, 28)
}

func (c *Context) placeHorizontalBlocks(src Source) {
	c.placeBlocks(src, c.Params.HorizontalBlocks, 17, 28, 11, 14)
}

func (c *Context) frameBorder() {
	c.Terrain.Frame(KindHookable)
}

// spreadFreeze turns empty cells touching hookable terrain into freeze. Freeze never counts as a
// trigger, so a single in-place pass yields a one-cell skin.
func (c *Context) spreadFreeze() {
	t := c.Terrain
	for row := 1; row < c.Params.Height-1; row++ {
		for col := c.Params.StartBuffer; col < c.interiorEnd(); col++ {
			if t.KindAt(row, col) != KindEmpty {
				continue
			}
			for _, n := range (Point{X: col, Y: row}).Neighbors() {
				if t.KindAt(n.Y, n.X) == KindHookable {
					t.SetKind(row, col, KindFreeze)
					break
				}
			}
		}
	}
}

// Run executes stages 1-9 against src. The grids are left on the context.
func (c *Context) Run(src Source) {
	// 1. Grids are allocated by NewContext

	// 2. Spawn
	c.placeSpawn()

	// 3. Start and finish lines
	c.placeStartFinish()

	// 4. Solid interior the carving stages subtract from
	c.fillInterior()

	// 5. Hollow voids
	c.carveVoids(src)

	// 6. Vertical blocks with clearance
	c.placeVerticalBlocks(src)

	// 7. Horizontal blocks with clearance
	c.placeHorizontalBlocks(src)

	// 8. Enclose the level. Carving reaches into the start buffer, so the spawn is stamped again.
	c.frameBorder()
	c.placeSpawn()

	// 9. Freeze skin
	c.spreadFreeze()
}

// GoreGenerator builds levels of chunky floating obstacles wrapped in freeze
type GoreGenerator struct {
	Params GoreParams

	// NewMap constructs the empty container; defaults to twmap.CreateInitial
	NewMap func() (*twmap.Map, error)

	// SkyVariant seeds the background colors, 0 for the stock sky
	SkyVariant int64
}

// NewGoreGenerator creates a generator with the given params
func NewGoreGenerator(p GoreParams) *GoreGenerator {
	return &GoreGenerator{Params: p, NewMap: twmap.CreateInitial}
}

// Name implements Generator
func (g *GoreGenerator) Name() string { return GeneratorGore }

// Generate produces a complete map from src
func (g *GoreGenerator) Generate(src Source) (*twmap.Map, error) {
	if err := g.Params.Validate(); err != nil {
		return nil, err
	}

	newMap := g.NewMap
	if newMap == nil {
		newMap = twmap.CreateInitial
	}
	m, err := newMap()
	if err != nil {
		return nil, err
	}

	ctx := NewContext(g.Params)
	ctx.Run(src)

	// 10. Assemble
	ctx.Assemble(m, g.SkyVariant)
	return m, nil
}
