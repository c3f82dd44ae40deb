package generation

// Rectangle painting. x is the column and y the row of the top-left corner; the painted area is the
// half-open [x, x+width) × [y, y+height). Cells outside the grid are skipped.

// PaintRect fills a rectangular area with a kind
func (g *Grid) PaintRect(x, y, width, height int, kind Kind) {
	minCol, maxCol := max(x, 0), min(x+width, g.width)
	minRow, maxRow := max(y, 0), min(y+height, g.height)

	for row := minRow; row < maxRow; row++ {
		for col := minCol; col < maxCol; col++ {
			g.SetKind(row, col, kind)
		}
	}
}

// PaintRectCentered fills a rectangle whose top-left is (cx - width/2, cy - height/2)
func (g *Grid) PaintRectCentered(cx, cy, width, height int, kind Kind) {
	g.PaintRect(cx-width/2, cy-height/2, width, height, kind)
}

// PaintRectBorder paints the cells within border of the rectangle's edge and leaves the interior alone.
// When 2*border >= min(width, height) there is no interior and the whole rectangle is painted.
// A border of zero or less paints the whole rectangle as well.
func (g *Grid) PaintRectBorder(x, y, width, height, border int, kind Kind) {
	if border <= 0 {
		g.PaintRect(x, y, width, height, kind)
		return
	}

	minCol, maxCol := max(x, 0), min(x+width, g.width)
	minRow, maxRow := max(y, 0), min(y+height, g.height)

	for row := minRow; row < maxRow; row++ {
		for col := minCol; col < maxCol; col++ {
			if col >= x+border && row >= y+border && col < x+width-border && row < y+height-border {
				continue
			}
			g.SetKind(row, col, kind)
		}
	}
}

// PaintRectBorderCentered paints a border with the same centering rule as PaintRectCentered
func (g *Grid) PaintRectBorderCentered(cx, cy, width, height, border int, kind Kind) {
	g.PaintRectBorder(cx-width/2, cy-height/2, width, height, border, kind)
}

// FillColumns sets every cell of columns [fromCol, toCol) to kind
func (g *Grid) FillColumns(fromCol, toCol int, kind Kind) {
	g.PaintRect(fromCol, 0, toCol-fromCol, g.height, kind)
}

// Frame forces the outermost ring of the grid to kind
func (g *Grid) Frame(kind Kind) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if row == 0 || row == g.height-1 || col == 0 || col == g.width-1 {
				g.SetKind(row, col, kind)
			}
		}
	}
}
