package entity

import "github.com/vovakirdan/chicken-invaders/internal/core"

// Sprite colours.
const (
	ColorShipBase     = core.ColorCyan
	ColorShipHead     = core.ColorBrightCyan
	ColorPlayerBullet = core.ColorBrightYellow
	ColorChicken      = core.ColorWhite
	ColorBeak         = core.ColorOrange
	ColorEnemyBullet  = core.ColorBrightRed
	ColorBoss         = core.ColorMagenta
	ColorBossOutline  = core.ColorBrightMagenta
	ColorBossEyes     = core.ColorBrightYellow
)

// drawSprite draws e with its kind's look. Every sprite stays inside the
// entity's bounding box, which is what collisions are tested against.
func drawSprite(r core.Renderer, e *Entity) {
	x, y, w, h := e.X, e.Y, e.w, e.h

	switch e.Kind {
	case KindPlayerShip:
		baseH := h * 4 / 7
		headW := w / 2
		wedgeW := w / 6
		headX := x + (w-headW)/2
		wedgeX := x + (w-wedgeW)/2
		r.DrawRect(x, y+h-baseH, x+w, y+h, ColorShipBase, true)
		r.DrawRect(headX, y, headX+headW, y+h-baseH-1, ColorShipHead, true)
		r.DrawRect(wedgeX, y, wedgeX+wedgeW, y+(h-baseH)/2, core.ColorBackground, true)

	case KindEnemy:
		eye := core.Max(1, w/10)
		beakW := core.Max(1, w/5)
		r.DrawRect(x, y, x+w, y+h, ColorChicken, true)
		r.DrawRect(x+w/4, y+h/4, x+w/4+eye, y+h/4+eye, core.ColorBackground, true)
		r.DrawRect(x+w*3/4-eye, y+h/4, x+w*3/4, y+h/4+eye, core.ColorBackground, true)
		r.DrawRect(x+(w-beakW)/2, y+h*2/3, x+(w+beakW)/2, y+h, ColorBeak, true)

	case KindBoss:
		eye := core.Max(1, w/12)
		r.DrawRect(x, y, x+w, y+h, ColorBoss, true)
		r.DrawRect(x, y, x+w, y+h, ColorBossOutline, false)
		r.DrawRect(x+w/3-eye, y+h/3, x+w/3, y+h/3+eye, ColorBossEyes, true)
		r.DrawRect(x+w*2/3, y+h/3, x+w*2/3+eye, y+h/3+eye, ColorBossEyes, true)

	case KindBullet:
		c := ColorEnemyBullet
		if e.Owner == KindPlayerShip {
			c = ColorPlayerBullet
		}
		r.DrawCircle(x+w/2, y+h/2, w/2, c, true)

	default:
		r.DrawRect(x, y, x+w, y+h, core.ColorGray, false)
	}
}

// erase paints the entity's bounding box with the background colour.
func erase(r core.Renderer, e *Entity) {
	r.DrawRect(e.X, e.Y, e.X+e.w, e.Y+e.h, core.ColorBackground, true)
}
