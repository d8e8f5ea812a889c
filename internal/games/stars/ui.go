package stars

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/starcatch/internal/core"
)

const (
	pulseDuration = 0.4 // seconds the score badge stays highlighted after a change
	controlsHelp  = "←/→ move  ↑ jump  P pause  R restart  Q quit"
)

// UIScene is the overlay launched by the gameplay scene. It shows the
// controls line and a score badge that pulses whenever the score changes.
type UIScene struct {
	state func() core.GameState

	lastScore int
	pulse     *gween.Tween
	glow      float32 // 1 right after a score change, eases to 0
}

// NewUIScene creates the overlay. state is polled once per update.
func NewUIScene(state func() core.GameState) *UIScene {
	return &UIScene{state: state}
}

// Create resets the pulse and remembers the starting score.
func (u *UIScene) Create() error {
	u.lastScore = u.state().Score
	u.pulse = nil
	u.glow = 0
	return nil
}

// Update advances the pulse tween, restarting it on a score change.
func (u *UIScene) Update(dt float64) {
	if score := u.state().Score; score != u.lastScore {
		u.lastScore = score
		u.pulse = gween.New(1, 0, pulseDuration, ease.OutQuad)
		u.glow = 1
	}
	if u.pulse == nil {
		return
	}

	v, done := u.pulse.Update(float32(dt))
	u.glow = v
	if done {
		u.pulse = nil
		u.glow = 0
	}
}

// Glow returns the current pulse intensity in [0, 1].
func (u *UIScene) Glow() float32 {
	return u.glow
}

// Badge returns the score badge text.
func (u *UIScene) Badge() string {
	return fmt.Sprintf("★ %d", u.lastScore)
}

func (u *UIScene) badgeColor() core.Color {
	if u.glow > 0.5 {
		return core.ColorBrightWhite
	}
	if u.glow > 0 {
		return core.ColorBrightYellow
	}
	return core.ColorYellow
}

// Draw renders the badge in the top-right corner and the controls line
// along the bottom row.
func (u *UIScene) Draw(dst *core.Screen) {
	badge := u.Badge()
	x := dst.Width() - len([]rune(badge)) - 2
	dst.DrawTextColor(x, 0, badge, u.badgeColor())

	help := controlsHelp
	if len([]rune(help)) > dst.Width() {
		help = "←/→ ↑  P R Q"
	}
	dst.DrawTextCentered(dst.Height()-1, help)
}

// labels returns the overlay text as sprites in world units.
func (u *UIScene) labels(worldW, worldH float64) []core.Sprite {
	return []core.Sprite{
		{Box: core.RectF{X: worldW - 96, Y: 16, W: 80, H: 16}, Color: u.badgeColor(), Label: u.Badge()},
		{Box: core.RectF{X: 16, Y: worldH - 20, W: worldW - 32, H: 16}, Color: core.ColorGray, Label: controlsHelp},
	}
}
