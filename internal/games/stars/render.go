package stars

import (
	"math"

	"github.com/vovakirdan/starcatch/internal/arcade"
	"github.com/vovakirdan/starcatch/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '█'
	StarChar     = '*'
	BombChar     = '●'
	PlayerLeft   = '◄'
	PlayerFront  = '☻'
	PlayerRight  = '►'
)

// Sprite colors
const (
	PlatformColor = core.ColorGreen
	StarColor     = core.ColorBrightYellow
	BombColor     = core.ColorMagenta
	PlayerColor   = core.ColorBrightCyan
	TextColor     = core.ColorBrightWhite
)

// frameGlyph maps a spritesheet frame to the glyph drawn for it.
// Frames 0-3 run left, 4 faces the camera, 5-8 run right.
func frameGlyph(frame int) rune {
	switch {
	case frame >= 0 && frame < 4:
		return PlayerLeft
	case frame > 4:
		return PlayerRight
	default:
		return PlayerFront
	}
}

// projector maps world units onto screen cells.
type projector struct {
	sx, sy float64
}

func newProjector(worldW, worldH float64, dst *core.Screen) projector {
	return projector{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

// rect returns the cells covered by a world box, at least one cell wide and tall.
func (p projector) rect(box core.RectF) core.Rect {
	x0 := int(math.Floor(box.X * p.sx))
	y0 := int(math.Floor(box.Y * p.sy))
	x1 := int(math.Ceil(box.Right() * p.sx))
	y1 := int(math.Ceil(box.Bottom() * p.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// point returns the cell containing a world position.
func (p projector) point(x, y float64) (int, int) {
	return int(math.Floor(x * p.sx)), int(math.Floor(y * p.sy))
}

// Draw renders ledges, stars, bombs, the player and both text lines.
func (s *GameplayScene) Draw(dst *core.Screen) {
	proj := newProjector(s.cfg.Arena.Width, s.cfg.Arena.Height, dst)

	dst.SetPen(PlatformColor)
	s.platforms.Each(func(b *arcade.Body) {
		dst.DrawRect(proj.rect(b.Bounds()), PlatformChar)
	})

	s.stars.Each(func(b *arcade.Body) {
		if !b.Visible {
			return
		}
		x, y := proj.point(b.X, b.Y)
		dst.SetCell(x, y, core.Cell{Rune: StarChar, Color: StarColor})
	})

	s.bombs.Each(func(b *arcade.Body) {
		if !b.Visible {
			return
		}
		x, y := proj.point(b.X, b.Y)
		dst.SetCell(x, y, core.Cell{Rune: BombChar, Color: BombColor})
	})

	dst.SetPen(s.playerColor())
	dst.DrawRect(proj.rect(s.player.Bounds()), frameGlyph(s.playerAnim.Frame()))
	dst.SetPen(core.ColorDefault)

	tx, ty := proj.point(16, 16)
	dst.DrawTextColor(tx, ty, s.scoreText, TextColor)
	dx, dy := proj.point(16, 48)
	dst.DrawTextColor(dx, dy, s.debugText, core.ColorGray)
}

func (s *GameplayScene) playerColor() core.Color {
	if s.player.Tint != core.ColorDefault {
		return s.player.Tint
	}
	return PlayerColor
}

// sprites lists every visible drawable in world units, back to front.
func (s *GameplayScene) sprites() []core.Sprite {
	out := make([]core.Sprite, 0, s.platforms.Len()+s.stars.Len()+s.bombs.Len()+3)

	add := func(c core.Color) func(*arcade.Body) {
		return func(b *arcade.Body) {
			if b.Visible {
				out = append(out, core.Sprite{Box: b.Bounds(), Color: c})
			}
		}
	}
	s.platforms.Each(add(PlatformColor))
	s.stars.Each(add(StarColor))
	s.bombs.Each(add(BombColor))

	out = append(out,
		core.Sprite{Box: s.player.Bounds(), Color: s.playerColor()},
		core.Sprite{Box: core.RectF{X: 16, Y: 16, W: 160, H: 16}, Color: TextColor, Label: s.scoreText},
		core.Sprite{Box: core.RectF{X: 16, Y: 48, W: 160, H: 16}, Color: core.ColorGray, Label: s.debugText},
	)
	return out
}
