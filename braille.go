package contour

import "strings"

// brailleDots maps a dot position inside a braille cell, [row][column],
// to its bit in the U+2800 block.
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// dotCanvas is a raster of braille cells. Each cell holds 2x4 dots.
type dotCanvas struct {
	cols, rows int
	cells      []uint8
}

func newDotCanvas(cols, rows int) *dotCanvas {
	return &dotCanvas{cols: cols, rows: rows, cells: make([]uint8, cols*rows)}
}

// set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (c *dotCanvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.cols || row >= c.rows {
		return
	}
	c.cells[col+row*c.cols] |= brailleDots[y%4][x%2]
}

// line plots the dots between two points with Bresenham's algorithm.
func (c *dotCanvas) line(x0, y0, x1, y1 int) {
	dx, sx := Max(x1-x0, x0-x1), 1
	if x1 < x0 {
		sx = -1
	}
	dy, sy := -Max(y1-y0, y0-y1), 1
	if y1 < y0 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := e * 2
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// String renders the canvas one text line per cell row. Empty cells are
// blanks rather than the empty braille pattern.
func (c *dotCanvas) String() string {
	var sb strings.Builder
	sb.Grow(c.cols*c.rows*3 + c.rows)
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, mask := range c.cells[row*c.cols : (row+1)*c.cols] {
			if mask == 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteRune(rune(0x2800 + int(mask)))
		}
	}
	return sb.String()
}
