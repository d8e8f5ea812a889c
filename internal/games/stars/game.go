// Package stars implements a star-collecting platformer.
// The player runs and jumps across four ledges collecting a row of stars;
// every time the row is emptied it respawns and a bouncing bomb joins the
// arena. Touching a bomb freezes the world and ends the game.
package stars

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/anim"
	"github.com/vovakirdan/starcatch/internal/arcade"
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/registry"
	"github.com/vovakirdan/starcatch/internal/scene"
)

var (
	pkgMu      sync.RWMutex
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML file consulted by the next Reset.
func SetConfigPath(path string) {
	pkgMu.Lock()
	defer pkgMu.Unlock()
	configPath = path
}

// SetLogger routes game events to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	pkgMu.Lock()
	defer pkgMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func currentSettings() (string, *log.Logger) {
	pkgMu.RLock()
	defer pkgMu.RUnlock()
	return configPath, logger
}

// Game adapts the gameplay and UI scenes to the arcade registry.
type Game struct {
	fixed *config.StarsConfig // set by NewWithConfig; skips file loading

	runtime  core.RuntimeConfig
	cfg      config.StarsConfig
	world    *arcade.World
	scenes   *scene.Manager
	gameplay *GameplayScene
	ui       *UIScene

	paused    bool
	tickCount int
	err       error // set when the scenes failed to start
}

// New creates a game that loads its tuning from the config search path.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.StarsConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "stars"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Catcher"
}

// Reset rebuilds the world from scratch with a fresh RNG.
func (g *Game) Reset(rt core.RuntimeConfig) {
	path, lg := currentSettings()

	g.runtime = rt
	g.paused = false
	g.tickCount = 0
	g.err = nil

	if g.fixed != nil {
		g.cfg = *g.fixed
	} else {
		cfg, err := config.LoadStars(path)
		if err != nil {
			lg.Warn("using default stars config", "path", path, "error", err)
			cfg = config.DefaultStarsConfig()
		}
		g.cfg = cfg
	}

	g.world = arcade.NewWorld(g.cfg.Arena.Width, g.cfg.Arena.Height, g.cfg.Arena.Gravity)
	g.scenes = scene.NewManager()
	g.gameplay = NewGameplayScene(g.cfg, Host{
		World:  g.world,
		Anims:  anim.NewLibrary(),
		Scenes: g.scenes,
		Rand:   rand.New(rand.NewSource(rt.Seed)),
		Logger: lg,
	})
	g.ui = NewUIScene(g.State)

	// Keys are fresh on a new manager, so Add cannot fail here.
	_ = g.scenes.Add(KeyGameplay, g.gameplay)
	_ = g.scenes.Add(KeyUI, g.ui)

	if err := g.scenes.Start(KeyGameplay); err != nil {
		g.err = fmt.Errorf("stars: start: %w", err)
		lg.Error("start scenes", "error", err)
	}
}

// Step advances the game by one tick: scene logic first, then physics,
// whose callbacks handle collection and bomb hits.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.err != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameplay.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.TickDuration()

	g.gameplay.SetCursors(CursorsFrom(in))
	g.scenes.Update(dt)
	g.world.Step(dt)

	return core.StepResult{State: g.State()}
}

// Render draws every active scene and any status message.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.drawCenteredMessage(dst, "ERROR", g.err.Error())
		return
	}

	g.scenes.Draw(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameplay.GameOver() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.gameplay.Score()))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.SetPen(core.ColorDefault)
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.gameplay == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.gameplay.Score(),
		Waves:    g.gameplay.Waves(),
		GameOver: g.gameplay.GameOver(),
		Paused:   g.paused,
	}
}

// WorldSize returns the arena dimensions in world units.
func (g *Game) WorldSize() (w, h float64) {
	return g.cfg.Arena.Width, g.cfg.Arena.Height
}

// Sprites returns the arena contents followed by the overlay labels.
func (g *Game) Sprites() []core.Sprite {
	if g.err != nil || g.gameplay == nil {
		return nil
	}
	out := g.gameplay.sprites()
	if g.scenes.IsActive(KeyUI) {
		out = append(out, g.ui.labels(g.cfg.Arena.Width, g.cfg.Arena.Height)...)
	}
	return out
}

// Scene returns the gameplay scene.
func (g *Game) Scene() *GameplayScene {
	return g.gameplay
}

// Register the game with the registry
func init() {
	registry.Register("stars", func() registry.Game {
		return New()
	})
}
