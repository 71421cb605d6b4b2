// Package render implements core.Renderer on top of a terminal cell buffer.
//
// The game draws in play-field pixels. The canvas keeps a pixel framebuffer
// so erasing one sprite never damages a neighbour that shares a cell, and
// rasterises it into a core.Screen only when a frontend presents a frame.
package render

import (
	"sync"

	"github.com/vovakirdan/chicken-invaders/internal/core"
)

const (
	glyphFull  = '█'
	glyphUpper = '▀'
	glyphLower = '▄'
)

type textCell struct {
	r rune
	c core.Color
}

// Canvas is a thread-safe core.Renderer. The game loop draws on it from its
// own goroutine while a frontend presents it with View.
type Canvas struct {
	mu sync.Mutex

	width, height int // Play field in pixels
	cellW, cellH  int

	pixels []core.Color
	text   map[int]textCell // Keyed by cell index row*cols+col
	screen *core.Screen
	frame  uint64
}

// NewCanvas creates a canvas for a width x height pixel field presented with
// cells of cellW x cellH pixels.
func NewCanvas(width, height, cellW, cellH int) *Canvas {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Canvas{
		width:  width,
		height: height,
		cellW:  cellW,
		cellH:  cellH,
		pixels: make([]core.Color, width*height),
		text:   make(map[int]textCell),
		screen: core.NewScreen(core.CeilDiv(width, cellW), core.CeilDiv(height, cellH)),
	}
}

// Columns returns the presented width in cells.
func (c *Canvas) Columns() int { return c.screen.Width() }

// Rows returns the presented height in cells.
func (c *Canvas) Rows() int { return c.screen.Height() }

// Frame returns a counter bumped by every draw call.
func (c *Canvas) Frame() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// DrawRect implements core.Renderer. The span is inclusive: (x1, y1) is the
// last pixel painted, so erasing (x, y, x+w, y+h) clears the same closed box
// entities collide with. A filled rectangle removes any text whose cell it
// covers completely.
func (c *Canvas) DrawRect(x0, y0, x1, y1 int, col core.Color, filled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frame++

	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}

	if filled {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				c.setPixel(x, y, col)
			}
		}
		c.clearTextCovered(x0, y0, x1+1, y1+1)
		return
	}

	for x := x0; x <= x1; x++ {
		c.setPixel(x, y0, col)
		c.setPixel(x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		c.setPixel(x0, y, col)
		c.setPixel(x1, y, col)
	}
}

// DrawCircle implements core.Renderer.
func (c *Canvas) DrawCircle(cx, cy, r int, col core.Color, filled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frame++

	outer := r * r
	inner := (r - 1) * (r - 1)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d > outer {
				continue
			}
			if !filled && r > 1 && d < inner {
				continue
			}
			c.setPixel(cx+dx, cy+dy, col)
		}
	}
}

// DrawString implements core.Renderer. Terminal text is always one cell per
// glyph; scale is accepted and ignored.
func (c *Canvas) DrawString(x, y int, text string, col core.Color, _ int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frame++

	cx, cy := c.cellOf(x, y)
	for _, r := range text {
		c.setText(cx, cy, r, col)
		cx++
	}
}

// DrawChar implements core.Renderer.
func (c *Canvas) DrawChar(ch rune, x, y int, col core.Color, _ int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frame++

	cx, cy := c.cellOf(x, y)
	c.setText(cx, cy, ch, col)
}

// ClearScreen implements core.Renderer.
func (c *Canvas) ClearScreen(w, h int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frame++

	w = core.Min(w, c.width)
	h = core.Min(h, c.height)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.pixels[y*c.width+x] = core.ColorBackground
		}
	}
	c.clearTextCovered(0, 0, w, h)
}

// View rasterises the canvas and calls fn with the result while holding the
// lock. fn must not retain the screen.
func (c *Canvas) View(fn func(*core.Screen)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rasterise()
	fn(c.screen)
}

// Snapshot returns a rasterised copy of the canvas.
func (c *Canvas) Snapshot() *core.Screen {
	out := core.NewScreen(0, 0)
	c.View(func(s *core.Screen) { out.CopyFrom(s) })
	return out
}

// PixelAt returns the colour of a single play-field pixel.
func (c *Canvas) PixelAt(x, y int) core.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return core.ColorBackground
	}
	return c.pixels[y*c.width+x]
}

func (c *Canvas) setPixel(x, y int, col core.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

func (c *Canvas) cellOf(x, y int) (int, int) {
	return x / c.cellW, y / c.cellH
}

func (c *Canvas) setText(cx, cy int, r rune, col core.Color) {
	cols := c.screen.Width()
	if cx < 0 || cx >= cols || cy < 0 || cy >= c.screen.Height() {
		return
	}
	c.text[cy*cols+cx] = textCell{r: r, c: col}
}

// clearTextCovered removes text from every cell lying entirely inside the
// half-open pixel span.
func (c *Canvas) clearTextCovered(x0, y0, x1, y1 int) {
	if len(c.text) == 0 {
		return
	}
	cols := c.screen.Width()
	for key := range c.text {
		cx, cy := key%cols, key/cols
		px, py := cx*c.cellW, cy*c.cellH
		if px >= x0 && py >= y0 && px+c.cellW <= x1 && py+c.cellH <= y1 {
			delete(c.text, key)
		}
	}
}

// rasterise renders the framebuffer into the cell screen. Each cell shows
// the colour covering most of its pixels, as a full or half block depending
// on which halves are painted. Text cells win over pixels.
func (c *Canvas) rasterise() {
	cols, rows := c.screen.Width(), c.screen.Height()
	half := c.cellH / 2
	var counts [256]int

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			if t, ok := c.text[cy*cols+cx]; ok {
				c.screen.SetCell(cx, cy, t.r, t.c)
				continue
			}

			for i := range counts {
				counts[i] = 0
			}
			top, bottom := false, false
			for py := cy * c.cellH; py < (cy+1)*c.cellH && py < c.height; py++ {
				for px := cx * c.cellW; px < (cx+1)*c.cellW && px < c.width; px++ {
					col := c.pixels[py*c.width+px]
					if col == core.ColorBackground {
						continue
					}
					counts[col]++
					if py-cy*c.cellH < half {
						top = true
					} else {
						bottom = true
					}
				}
			}

			if !top && !bottom {
				c.screen.SetCell(cx, cy, ' ', core.ColorBackground)
				continue
			}

			best := core.ColorBackground
			for i, n := range counts {
				if n > counts[best] {
					best = core.Color(i)
				}
			}

			glyph := glyphFull
			switch {
			case top && !bottom:
				glyph = glyphUpper
			case bottom && !top:
				glyph = glyphLower
			}
			c.screen.SetCell(cx, cy, glyph, best)
		}
	}
}
