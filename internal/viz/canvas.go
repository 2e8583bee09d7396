package viz

import "strings"

// Braille patterns pack 2x4 dots per terminal cell (unicode offset 0x2800):
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot-matrix of Width x Height cells, addressable as
// (Width*2) x (Height*4) sub-pixels.
type Canvas struct {
	Width, Height int
	grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, grid: make([][]rune, h)}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for _, row := range c.grid {
		for j := range row {
			row[j] = 0x2800
		}
	}
}

// Set turns on the sub-pixel at (x, y). Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= pixelMap[y%4][x%2]
}

// Disc fills a rough circle of sub-pixel radius r around (x, y).
func (c *Canvas) Disc(x, y, r int) {
	if r < 1 {
		c.Set(x, y)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(x+dx, y+dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.Height * (c.Width + 1))
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
