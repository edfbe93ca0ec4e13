package viz

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	brailleBlank = 0x2800
	brailleLast  = 0x28FF
)

var (
	// ErrNonFinite is reported when a vertex has a NaN or infinite coordinate.
	ErrNonFinite = errors.New("viz: non-finite vertex")
	// ErrOffscreen is reported when a whole strip falls outside the view box.
	ErrOffscreen = errors.New("viz: strip entirely clipped")
)

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]lipgloss.Color

	pen   lipgloss.Color
	fault error
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]lipgloss.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]lipgloss.Color, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// PixelSize is the canvas size in braille dots.
func (c *Canvas) PixelSize() (int, int) {
	return c.Width * 2, c.Height * 4
}

// SetPen selects the colour used by subsequent drawing calls. An empty colour
// means the terminal default.
func (c *Canvas) SetPen(color lipgloss.Color) {
	c.pen = color
}

// Set lights the dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
// Cells holding a label are left alone.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	if !isBraille(c.Grid[row][col]) {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
	c.Colors[row][col] = c.pen
}

// Label writes text starting at the cell containing dot (x, y). Text that
// runs past the right edge is cut.
func (c *Canvas) Label(x, y int, text string) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if row >= c.Height {
		return
	}
	for _, r := range text {
		if col >= c.Width {
			return
		}
		c.Grid[row][col] = r
		c.Colors[row][col] = c.pen
		col++
	}
}

// Clear resets the canvas and any recorded fault.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Colors[i][j] = ""
		}
	}
	c.fault = nil
}

// Err returns the first fault recorded since the last call and clears it.
func (c *Canvas) Err() error {
	err := c.fault
	c.fault = nil
	return err
}

func (c *Canvas) record(err error) {
	if c.fault == nil {
		c.fault = err
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// String returns the canvas without colour.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas with each run of same-coloured cells styled.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j] == c.Colors[i][start] {
				continue
			}
			b.WriteString(paint(c.Colors[i][start], string(row[start:j])))
			start = j
		}
		b.WriteString("\n")
	}
	return b.String()
}

func paint(color lipgloss.Color, s string) string {
	if color == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(color).Render(s)
}

func isBraille(r rune) bool {
	return r >= brailleBlank && r <= brailleLast
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
