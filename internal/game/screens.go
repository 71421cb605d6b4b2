package game

import (
	"context"
	"fmt"

	"github.com/vovakirdan/chicken-invaders/internal/core"
	"github.com/vovakirdan/chicken-invaders/internal/session"
)

type menuItem int

const (
	menuStart menuItem = iota
	menuTutorial
)

// Screen colours.
const (
	colorTitle    = core.ColorBrightYellow
	colorText     = core.ColorWhite
	colorSelected = core.ColorBrightCyan
	colorHint     = core.ColorGray
	colorWin      = core.ColorBrightGreen
	colorLose     = core.ColorBrightRed
)

// Text rows, in cells from the top.
const (
	rowTitle   = 6
	rowStart   = 10
	rowTut     = 12
	rowHint    = 16
	rowBanner  = 11
	rowMessage = 13
)

// runMenu shows the main menu until a choice is confirmed.
// Entering the menu starts a new run.
func (m *Machine) runMenu(ctx context.Context) error {
	m.env.Session.Reset()
	m.drawMenu()

	for {
		key, err := m.waitKey(ctx)
		if err != nil {
			return err
		}

		switch core.ActionForKey(key) {
		case core.ActionUp, core.ActionDown:
			if m.menu == menuStart {
				m.menu = menuTutorial
			} else {
				m.menu = menuStart
			}
			m.drawMenu()
		case core.ActionConfirm:
			if m.menu == menuTutorial {
				m.env.Session.State = session.StateTutorial
			} else {
				m.env.Session.State = session.StateLevelOne
			}
			return nil
		}
	}
}

// runTutorial shows the instructions until any key is pressed.
func (m *Machine) runTutorial(ctx context.Context) error {
	m.drawTutorial()
	if _, err := m.waitKey(ctx); err != nil {
		return err
	}
	m.env.Session.State = session.StateMenu
	return nil
}

func (m *Machine) drawMenu() {
	cfg := m.env.Config
	m.r.ClearScreen(cfg.Screen.Width, cfg.Screen.Height)

	m.centerText(rowTitle, "CHICKEN INVADERS", colorTitle)
	m.menuLine(rowStart, "START GAME", m.menu == menuStart)
	m.menuLine(rowTut, "TUTORIAL", m.menu == menuTutorial)
	m.centerText(rowHint, "W/S: CHOOSE   ENTER: SELECT", colorHint)
}

func (m *Machine) menuLine(row int, label string, selected bool) {
	if selected {
		m.centerText(row, "> "+label+" <", colorSelected)
		return
	}
	m.centerText(row, "  "+label+"  ", colorText)
}

func (m *Machine) drawTutorial() {
	cfg := m.env.Config
	m.r.ClearScreen(cfg.Screen.Width, cfg.Screen.Height)

	lines := []string{
		"W A S D: MOVE THE SHIP",
		"YOUR GUN FIRES ON ITS OWN",
		"",
		"LEVEL 1: SHOOT DOWN EVERY CHICKEN",
		fmt.Sprintf("LEVEL 2: HIT THE BOSS %d TIMES", cfg.Boss.Health),
		"",
		fmt.Sprintf("EACH HIT SCORES %d, YOU HAVE %d LIVES", cfg.Scoring.HitPoints, m.env.Session.InitialLives()),
		"DODGE THE FALLING EGGS",
	}

	m.centerText(3, "HOW TO PLAY", colorTitle)
	for i, line := range lines {
		if line != "" {
			m.centerText(6+i, line, colorText)
		}
	}
	m.centerText(rowHint+2, "PRESS ANY KEY", colorHint)
}

// drawBanner shows a title and a prompt in the middle of the field.
func (m *Machine) drawBanner(title, prompt string) {
	m.showBanner(title, colorTitle, prompt)
}

// clearBanner erases the text the last banner drew. The rest of the
// banner rows is left alone.
func (m *Machine) clearBanner() {
	m.clearText(rowBanner, m.banner[0])
	m.clearText(rowMessage, m.banner[1])
	m.banner = [2]string{}
}

// drawResult shows the win or lose message and the keys that are accepted.
func (m *Machine) drawResult(state session.State, outcome core.Outcome) {
	if outcome == core.OutcomeWon {
		m.showBanner("Well done!", colorWin, Prompt(state, outcome))
	} else {
		m.showBanner("Game over!", colorLose, Prompt(state, outcome))
	}
}

func (m *Machine) showBanner(title string, c core.Color, prompt string) {
	m.centerText(rowBanner, title, c)
	m.centerText(rowMessage, prompt, colorHint)
	m.banner = [2]string{title, prompt}
}

// centerText draws text centred horizontally on a cell row.
func (m *Machine) centerText(row int, text string, c core.Color) {
	x, _ := m.textSpan(text)
	m.r.DrawString(x, row*m.env.Config.Render.CellHeight, text, c, 1)
}

// clearText erases the cells centerText covers for text on row.
func (m *Machine) clearText(row int, text string) {
	x, w := m.textSpan(text)
	if w == 0 {
		return
	}
	h := m.env.Config.Render.CellHeight
	m.env.Entities.Erase(core.NewRect(x, row*h, w-1, h-1))
}

// textSpan returns the left edge and width in pixels of text centred on
// the field, aligned to the cell grid.
func (m *Machine) textSpan(text string) (x, w int) {
	cfg := m.env.Config
	w = len([]rune(text)) * cfg.Render.CellWidth
	x = (cfg.Screen.Width - w) / 2
	x -= x % cfg.Render.CellWidth
	return x, w
}
