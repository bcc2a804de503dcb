package viz

import "strings"

// Braille patterns: each character cell is a 2x4 dot grid, unicode offset
// 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille dot canvas with a fixed world-coordinate window.
// World points are mapped into sub-pixel coordinates of (Width*2)x(Height*4).
type Canvas struct {
	Width, Height          int
	XMin, XMax, YMin, YMax float64
	Grid                   [][]rune
}

func NewCanvas(w, h int, xMin, xMax, yMin, yMax float64) *Canvas {
	c := &Canvas{
		Width: w, Height: h,
		XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax,
		Grid: make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Mark plots a world-coordinate point. Points outside the window are
// dropped.
func (c *Canvas) Mark(x, y float64) {
	if x < c.XMin || x > c.XMax || y < c.YMin || y > c.YMax {
		return
	}
	px := int((x - c.XMin) / (c.XMax - c.XMin) * float64(c.Width*2-1))
	py := int((c.YMax - y) / (c.YMax - c.YMin) * float64(c.Height*4-1))
	c.set(px, py)
}

func (c *Canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteRune('\n')
	}
	return b.String()
}
