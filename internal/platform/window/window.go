// Package window runs games in a desktop window with Ebitengine.
// Unlike a terminal it sees real key-up events, so held keys need no
// latching, and the world is drawn as colored rectangles.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/registry"
	"github.com/vovakirdan/starcatch/internal/storage"
)

// ErrNotDrawable is returned for games that cannot describe themselves as sprites.
var ErrNotDrawable = errors.New("window: game has no sprite view")

var sky = color.RGBA{R: 92, G: 148, B: 252, A: 255}

// ScoreSaver persists finished runs.
type ScoreSaver interface {
	SaveRun(r storage.Run) (int64, error)
}

// Options configures the window runtime.
type Options struct {
	Scale    float64 // window pixels per world unit
	TickRate int
	Seed     int64 // 0 picks a time-based seed
	Store    ScoreSaver
	Logger   *log.Logger
}

type runner struct {
	game    registry.Game
	sprites registry.SpriteSource
	rt      core.RuntimeConfig
	opts    Options
	logger  *log.Logger

	state core.GameState
	ticks int
	saved bool
}

// Run opens a window and plays game until the window closes or Q is pressed.
func Run(game registry.Game, opts Options) error {
	src, ok := game.(registry.SpriteSource)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotDrawable, game.ID())
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &runner{
		game:    game,
		sprites: src,
		opts:    opts,
		logger:  logger,
		rt: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: opts.TickRate,
			Seed:     opts.Seed,
		},
	}
	r.reset()

	w, h := src.WorldSize()
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(w*opts.Scale), int(h*opts.Scale))
	ebiten.SetTPS(opts.TickRate)

	logger.Info("window started", "game", game.ID(), "seed", opts.Seed, "tps", opts.TickRate)
	err := ebiten.RunGame(r)
	logger.Info("window closed", "game", game.ID(), "score", r.state.Score)

	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (r *runner) reset() {
	r.game.Reset(r.rt)
	r.state = r.game.State()
	r.ticks = 0
	r.saved = false
}

// Update polls the keyboard and advances the game one tick.
func (r *runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if r.state.GameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		r.rt.Seed = time.Now().UnixNano()
		r.reset()
		return nil
	}

	r.state = r.game.Step(readInput()).State
	if !r.state.Paused && !r.state.GameOver {
		r.ticks++
	}

	if r.state.GameOver && !r.saved {
		r.saved = true
		r.saveRun()
	}
	return nil
}

func (r *runner) saveRun() {
	if r.opts.Store == nil || r.state.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID: r.game.ID(),
		Score:  r.state.Score,
		Waves:  r.state.Waves,
		Ticks:  r.ticks,
		Seed:   r.rt.Seed,
	}
	if _, err := r.opts.Store.SaveRun(run); err != nil {
		r.logger.Warn("save score", "game", run.GameID, "error", err)
	}
}

// readInput maps held and just-pressed keys to one input frame.
func readInput() core.InputFrame {
	in := core.NewInputFrame()

	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	if held(ebiten.KeyArrowLeft, ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if held(ebiten.KeyArrowRight, ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if held(ebiten.KeyArrowUp, ebiten.KeyW) {
		in.Set(core.ActionUp)
	}
	if held(ebiten.KeyArrowDown, ebiten.KeyS) {
		in.Set(core.ActionDown)
	}
	if held(ebiten.KeySpace) {
		in.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}
	return in
}

// Draw paints the sky, every sprite and any status line.
func (r *runner) Draw(screen *ebiten.Image) {
	screen.Fill(sky)

	for _, s := range r.sprites.Sprites() {
		if s.Label != "" {
			ebitenutil.DebugPrintAt(screen, s.Label, int(s.Box.X), int(s.Box.Y))
			continue
		}
		vector.DrawFilledRect(screen,
			float32(s.Box.X), float32(s.Box.Y), float32(s.Box.W), float32(s.Box.H),
			rgba(s.Color), false)
	}

	w, h := r.sprites.WorldSize()
	switch {
	case r.state.GameOver:
		msg := fmt.Sprintf("GAME OVER  score %d  |  R restart  Q quit", r.state.Score)
		ebitenutil.DebugPrintAt(screen, msg, int(w/2)-len(msg)*3, int(h/2))
	case r.state.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED  |  P resume", int(w/2)-54, int(h/2))
	}
}

// Layout keeps the logical screen at world size; Ebitengine scales it.
func (r *runner) Layout(_, _ int) (int, int) {
	w, h := r.sprites.WorldSize()
	return int(w), int(h)
}
