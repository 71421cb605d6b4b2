package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/render"
)

// Model is the Bubble Tea model presenting a running game.
// It never touches game state: the game loop draws on the canvas from its
// own goroutine and reads the keys pushed into the buffer.
type Model struct {
	canvas *render.Canvas
	keys   *core.KeyBuffer
	mapper *KeyMapper
	fps    int

	width, height int // Terminal size, zero until the first WindowSizeMsg
	lastFrame     uint64
	view          string
	quitting      bool
}

// NewModel creates a model presenting canvas and feeding keys.
func NewModel(canvas *render.Canvas, keys *core.KeyBuffer, fps int) Model {
	m := Model{
		canvas: canvas,
		keys:   keys,
		mapper: NewKeyMapper(),
		fps:    fps,
	}
	m.redraw()
	return m
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.redraw()
		return m, nil

	case TickMsg:
		if f := m.canvas.Frame(); f != m.lastFrame {
			m.lastFrame = f
			m.redraw()
		}
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	r, ok, quit := m.mapper.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if ok {
		m.keys.Push(r)
	}
	return m, nil
}

// redraw rasterises the canvas into the cached view.
func (m *Model) redraw() {
	framed := m.width >= m.canvas.Columns()+2 && m.height >= m.canvas.Rows()+2
	m.canvas.View(func(s *core.Screen) {
		if framed {
			m.view = RenderField(s)
		} else {
			m.view = RenderScreen(s)
		}
	})
}

// saveScreenshot writes the current field as plain text under ~/.chickens.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".chickens", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("chickens_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.canvas.Snapshot().String()), 0o600)
}

// View returns the last rendered frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.view
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run presents canvas until the player quits or ctx is cancelled.
// Both are a normal exit and return nil.
func Run(ctx context.Context, canvas *render.Canvas, keys *core.KeyBuffer, fps int) error {
	p := tea.NewProgram(
		NewModel(canvas, keys, fps),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
