package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const blank = ' '

type cell struct {
	r     rune
	style *lipgloss.Style
}

// Canvas is a fixed grid of styled runes addressed by terminal column and
// row.
type Canvas struct {
	Width, Height int
	grid          [][]cell
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		grid:   make([][]cell, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]cell, w)
	}
	c.Clear()
	return c
}

// Set places r at (x, y). Out-of-bounds writes are dropped.
func (c *Canvas) Set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.grid[y][x] = cell{r: r, style: style}
}

func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return 0
	}
	return c.grid[y][x].r
}

func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = cell{r: blank}
		}
	}
}

// String renders the canvas, one line per row, without a trailing newline.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range row {
			if cl.style == nil {
				b.WriteRune(cl.r)
				continue
			}
			b.WriteString(cl.style.Render(string(cl.r)))
		}
	}
	return b.String()
}

// Plain renders the canvas without styles.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for i, row := range c.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
	}
	return b.String()
}
