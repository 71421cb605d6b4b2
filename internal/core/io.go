package core

import "time"

//go:generate go tool mockgen -destination=./mocks/core_mock.go -package=mocks . Renderer,InputSource

// Renderer is the drawing surface the game core emits side effects to.
// Coordinates are play-field pixels; the core never reads anything back.
type Renderer interface {
	// DrawRect draws the rectangle spanning (x0, y0) to (x1, y1) inclusive.
	DrawRect(x0, y0, x1, y1 int, c Color, filled bool)

	// DrawCircle draws a circle of radius r centered on (cx, cy).
	DrawCircle(cx, cy, r int, c Color, filled bool)

	// DrawString draws text with its top-left corner at (x, y).
	// Scale is the bitmap-font multiplier.
	DrawString(x, y int, text string, c Color, scale int)

	// DrawChar draws a single glyph with its top-left corner at (x, y).
	DrawChar(ch rune, x, y int, c Color, scale int)

	// ClearScreen paints the whole w x h field with the background colour.
	ClearScreen(w, h int)
}

// InputSource delivers key presses to the game loop.
type InputSource interface {
	// PollChar returns the most recent unconsumed character without blocking.
	// ok is false when nothing was pressed since the last poll.
	PollChar() (ch rune, ok bool)
}

// Clock paces the game loop.
type Clock interface {
	Sleep(d time.Duration)
}

// RealClock sleeps on the wall clock.
type RealClock struct{}

// Sleep blocks for d. Non-positive durations return immediately.
func (RealClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
