// Package draw renders frames to a terminal: a coloured cell canvas, the
// world-to-cell projection, and chunked output suited to SSH links.
package draw

import "math"

// Shade characters from lightest to darkest.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	idx := int(intensity * float64(len(Shades)-1))
	return Shades[idx]
}

// Glyphs.
const (
	GlyphPlayer    = '@'
	GlyphShot      = '•'
	GlyphEnemyShot = '*'
	GlyphFire      = '░'
	GlyphHeart     = '♥'
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// DirectionGlyphs are the arrows drawn next to the bound movement keys,
// in up, down, left, right order.
var DirectionGlyphs = [4]rune{'↑', '↓', '←', '→'}

// World units covered by one terminal cell. Rows are twice as tall as
// columns are wide, so the aspect ratio stays square.
const (
	UnitsPerCol = 12.0
	UnitsPerRow = 24.0
)

// Projection maps world coordinates into canvas cells.
type Projection struct {
	CamX, CamY float64 // top-left corner of the view in world units
	OriginCol  int     // canvas column of the view's left edge
	OriginRow  int     // canvas row of the view's top edge
}

// ToCell returns the canvas cell holding world point (x, y).
func (p Projection) ToCell(x, y float64) (col, row int) {
	col = p.OriginCol + int(math.Floor((x-p.CamX)/UnitsPerCol))
	row = p.OriginRow + int(math.Floor((y-p.CamY)/UnitsPerRow))
	return col, row
}

// CellCenter returns the world point at the centre of a canvas cell.
func (p Projection) CellCenter(col, row int) (x, y float64) {
	x = p.CamX + (float64(col-p.OriginCol)+0.5)*UnitsPerCol
	y = p.CamY + (float64(row-p.OriginRow)+0.5)*UnitsPerRow
	return x, y
}

// ViewSize returns the world-unit size of a cols x rows view.
func ViewSize(cols, rows int) (width, height float64) {
	return float64(cols) * UnitsPerCol, float64(rows) * UnitsPerRow
}
