package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/render"
)

func newTestModel() (Model, *render.Canvas, *core.KeyBuffer) {
	canvas := render.NewCanvas(640, 384, 8, 16)
	keys := core.NewKeyBuffer(8)
	return NewModel(canvas, keys, 60), canvas, keys
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		r      rune
		ok     bool
		isQuit bool
	}{
		{"letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, 'd', true, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, 'w', true, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, 's', true, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, 'a', true, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, 'd', true, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, '\r', true, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, ' ', true, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, 0, false, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, 0, false, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, 0, false, true},
		{"tab ignored", tea.KeyMsg{Type: tea.KeyTab}, 0, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, ok, quit := km.MapKey(tc.msg)
			if r != tc.r || ok != tc.ok || quit != tc.isQuit {
				t.Errorf("MapKey() = (%q, %v, %v), expected (%q, %v, %v)", r, ok, quit, tc.r, tc.ok, tc.isQuit)
			}
		})
	}
}

func TestModelPushesKeys(t *testing.T) {
	m, _, keys := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	r, ok := keys.PollChar()
	if !ok || r != 'a' {
		t.Errorf("PollChar() = (%q, %v), expected ('a', true)", r, ok)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if _, ok := keys.PollChar(); ok {
		t.Error("unmapped keys should not reach the game")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, keys := newTestModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if !next.(Model).Quitting() {
		t.Error("model should be quitting")
	}
	if next.View() != "" {
		t.Error("a quitting model renders nothing")
	}
	if _, ok := keys.PollChar(); ok {
		t.Error("quit key should not reach the game")
	}
}

func TestModelRedrawsOnNewFrame(t *testing.T) {
	m, canvas, _ := newTestModel()
	if strings.Contains(m.View(), "HELLO") {
		t.Fatal("fresh view should be blank")
	}

	canvas.DrawString(8, 16, "HELLO", core.ColorWhite, 1)
	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !strings.Contains(next.View(), "HELLO") {
		t.Error("tick should present the new frame")
	}
}

func TestModelFramesLargeTerminals(t *testing.T) {
	m, _, _ := newTestModel()

	small, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if strings.Contains(small.View(), "╭") {
		t.Error("an 80x24 terminal has no room for the border")
	}

	large, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(large.View(), "╭") {
		t.Error("a large terminal should frame the field")
	}
}
