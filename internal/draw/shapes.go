package draw

import "math"

// Disc fills every cell whose centre lies within radius of world point
// (x, y).
func (c *Canvas) Disc(p Projection, x, y, radius float64, ch rune, color string) {
	c.circle(p, x, y, radius, 0, ch, color)
}

// Ring draws the cells whose centre lies within half a cell of the circle
// of the given radius.
func (c *Canvas) Ring(p Projection, x, y, radius float64, ch rune, color string) {
	c.circle(p, x, y, radius, UnitsPerCol/2, ch, color)
}

// circle visits the bounding box of the circle in cell space. band == 0
// fills the disc, otherwise only cells within band of the edge are set.
func (c *Canvas) circle(p Projection, x, y, radius, band float64, ch rune, color string) {
	if radius <= 0 {
		return
	}
	col0, row0 := p.ToCell(x-radius, y-radius)
	col1, row1 := p.ToCell(x+radius, y+radius)
	col0, row0 = max(col0, 0), max(row0, 0)
	col1, row1 = min(col1, c.cols-1), min(row1, c.rows-1)

	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			cx, cy := p.CellCenter(col, row)
			d := math.Hypot(cx-x, cy-y)
			if band == 0 {
				if d <= radius {
					c.Set(col, row, ch, color)
				}
				continue
			}
			if math.Abs(d-radius) <= band {
				c.Set(col, row, ch, color)
			}
		}
	}
}
