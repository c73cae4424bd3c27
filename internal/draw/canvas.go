package draw

import (
	"unicode/utf8"
)

// Cell is one terminal character with its foreground colour.
type Cell struct {
	Ch    rune
	Color string // hex colour, empty for the default foreground
	Bold  bool
}

// Canvas is a grid of coloured cells that is rendered as a whole frame.
type Canvas struct {
	cols, rows int
	cells      []Cell
	run        []rune // scratch for Render
}

// NewCanvas creates a canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the canvas size, discarding its content when it changes.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == c.cols && rows == c.rows {
		return
	}
	c.cols, c.rows = cols, rows
	c.cells = make([]Cell, cols*rows)
	c.Clear()
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Clear fills the canvas with blanks.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Ch: ' '}
	}
}

// Set writes one cell. Out-of-range positions are ignored.
func (c *Canvas) Set(col, row int, ch rune, color string) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = Cell{Ch: ch, Color: color}
}

// SetBold writes one bold cell.
func (c *Canvas) SetBold(col, row int, ch rune, color string) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = Cell{Ch: ch, Color: color, Bold: true}
}

// At returns the cell at (col, row), or a blank outside the canvas.
func (c *Canvas) At(col, row int) Cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return Cell{Ch: ' '}
	}
	return c.cells[row*c.cols+col]
}

// Text writes s starting at (col, row), clipped to the canvas.
// Returns the column after the last rune.
func (c *Canvas) Text(col, row int, s, color string) int {
	for _, r := range s {
		c.Set(col, row, r, color)
		col++
	}
	return col
}

// TextCentered writes s centred on col.
func (c *Canvas) TextCentered(col, row int, s, color string) {
	c.Text(col-utf8.RuneCountInString(s)/2, row, s, color)
}

// Fill sets a rectangle of cells to ch.
func (c *Canvas) Fill(col, row, width, height int, ch rune, color string) {
	for r := row; r < row+height; r++ {
		for x := col; x < col+width; x++ {
			c.Set(x, r, ch, color)
		}
	}
}

// Render writes every row of the canvas, grouping runs of equal style so
// each run costs one escape sequence.
func (c *Canvas) Render(cw *ChunkWriter, pal *Palette) {
	for row := 0; row < c.rows; row++ {
		cw.MoveCursor(1, row+1)
		line := c.cells[row*c.cols : (row+1)*c.cols]

		start := 0
		for start < len(line) {
			end := start + 1
			for end < len(line) && line[end].Color == line[start].Color && line[end].Bold == line[start].Bold {
				end++
			}

			c.run = c.run[:0]
			for _, cell := range line[start:end] {
				c.run = append(c.run, cell.Ch)
			}
			cw.WriteString(pal.Paint(string(c.run), line[start].Color, line[start].Bold))
			start = end
		}
	}
}
