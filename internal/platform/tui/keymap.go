package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages into the characters the game
// polls. Arrows are folded onto WASD so both layouts drive the ship.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the character for msg and whether it is a quit request.
// ok is false for keys the game has no use for.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (r rune, ok bool, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return 0, false, true
	case "up":
		return 'w', true, false
	case "down":
		return 's', true, false
	case "left":
		return 'a', true, false
	case "right":
		return 'd', true, false
	case "enter":
		return '\r', true, false
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return msg.Runes[0], true, false
	}
	if msg.Type == tea.KeySpace {
		return ' ', true, false
	}
	return 0, false, false
}
