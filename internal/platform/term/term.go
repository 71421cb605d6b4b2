// Package term is the tcell frontend: it blits the canvas straight onto a
// tcell screen and forwards key events to the game.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/render"
)

var palette = map[core.Color]tcell.Color{
	core.ColorDefault:       tcell.ColorDefault,
	core.ColorRed:           tcell.ColorMaroon,
	core.ColorGreen:         tcell.ColorGreen,
	core.ColorYellow:        tcell.ColorOlive,
	core.ColorBlue:          tcell.ColorNavy,
	core.ColorMagenta:       tcell.ColorPurple,
	core.ColorCyan:          tcell.ColorTeal,
	core.ColorWhite:         tcell.ColorSilver,
	core.ColorBrightRed:     tcell.ColorRed,
	core.ColorBrightGreen:   tcell.ColorLime,
	core.ColorBrightYellow:  tcell.ColorYellow,
	core.ColorBrightBlue:    tcell.ColorBlue,
	core.ColorBrightMagenta: tcell.ColorFuchsia,
	core.ColorBrightCyan:    tcell.ColorAqua,
	core.ColorBrightWhite:   tcell.ColorWhite,
	core.ColorOrange:        tcell.ColorOrange,
	core.ColorGray:          tcell.ColorGray,
}

// Style returns the tcell style for a palette colour.
func Style(c core.Color) tcell.Style {
	fg, ok := palette[c]
	if !ok {
		fg = tcell.ColorDefault
	}
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorDefault)
}

// Frontend presents a canvas on a tcell screen.
type Frontend struct {
	screen tcell.Screen
	canvas *render.Canvas
	keys   *core.KeyBuffer
	fps    int

	lastFrame uint64
	drawn     bool
}

// New creates a frontend on an initialised screen.
func New(screen tcell.Screen, canvas *render.Canvas, keys *core.KeyBuffer, fps int) *Frontend {
	if fps <= 0 {
		fps = 60
	}
	return &Frontend{screen: screen, canvas: canvas, keys: keys, fps: fps}
}

// Run opens the terminal and presents canvas until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, canvas *render.Canvas, keys *core.KeyBuffer, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	return New(screen, canvas, keys, fps).Loop(ctx)
}

// Loop polls events and blits new frames. It returns nil when the player
// quits or ctx is cancelled.
func (f *Frontend) Loop(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(f.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if f.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				f.screen.Sync()
				f.drawn = false
			}

		case <-ticker.C:
			f.Blit()
		}
	}
}

// HandleKey forwards ev to the game and reports whether it asks to quit.
func (f *Frontend) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		f.keys.Push('w')
	case tcell.KeyDown:
		f.keys.Push('s')
	case tcell.KeyLeft:
		f.keys.Push('a')
	case tcell.KeyRight:
		f.keys.Push('d')
	case tcell.KeyEnter:
		f.keys.Push('\r')
	case tcell.KeyRune:
		if ev.Rune() == 'q' || ev.Rune() == 'Q' {
			return true
		}
		f.keys.Push(ev.Rune())
	}
	return false
}

// Blit copies the canvas onto the screen when it changed since the last call.
func (f *Frontend) Blit() {
	frame := f.canvas.Frame()
	if f.drawn && frame == f.lastFrame {
		return
	}
	f.lastFrame, f.drawn = frame, true

	f.canvas.View(func(s *core.Screen) {
		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				f.screen.SetContent(x, y, cell.Rune, nil, Style(cell.Color))
			}
		}
	})
	f.screen.Show()
}
