// Package hud draws the score line at the top of the play field.
package hud

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/chicken-invaders/internal/core"
)

// Colour of the HUD text.
const ColorText = core.ColorBrightWhite

// Stats are the counters the HUD displays.
type Stats struct {
	Score      int
	Lives      int
	Best       int
	BossHealth int
	ShowBoss   bool
}

// Line formats the stats as the HUD text, e.g.
// "SCORE 15  LIVES 2  BEST 30  BOSS 17".
func (s Stats) Line() string {
	parts := []string{
		fmt.Sprintf("SCORE %d", s.Score),
		fmt.Sprintf("LIVES %d", s.Lives),
		fmt.Sprintf("BEST %d", s.Best),
	}
	if s.ShowBoss {
		parts = append(parts, fmt.Sprintf("BOSS %d", s.BossHealth))
	}
	return strings.Join(parts, "  ")
}

// HUD owns the strip above the play field's top margin.
type HUD struct {
	r      core.Renderer
	width  int
	margin int
	last   string
}

// New creates a HUD drawing into the top margin band of a field width wide.
func New(r core.Renderer, width, margin int) *HUD {
	return &HUD{r: r, width: width, margin: margin}
}

// Refresh erases the strip and draws the current stats.
func (h *HUD) Refresh(s Stats) {
	h.last = s.Line()
	h.r.DrawRect(0, 0, h.width, h.margin-1, core.ColorBackground, true)
	h.r.DrawString(h.margin, 0, h.last, ColorText, 1)
}

// Last returns the most recently drawn line.
func (h *HUD) Last() string {
	return h.last
}
