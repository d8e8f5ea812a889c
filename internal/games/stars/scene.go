package stars

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/anim"
	"github.com/vovakirdan/starcatch/internal/arcade"
	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// Scene keys used with the scene manager.
const (
	KeyGameplay = "tutorial"
	KeyUI       = "ui"
)

// Animation clip keys for the player sprite.
const (
	ClipLeft  = "left"
	ClipTurn  = "turn"
	ClipRight = "right"
)

// Body kinds, used by rendering.
const (
	KindPlatform = "platform"
	KindPlayer   = "player"
	KindStar     = "star"
	KindBomb     = "bomb"
)

// Cursors is the held state of the four arrow keys for one tick.
type Cursors struct {
	Left, Right, Up, Down bool
}

// CursorsFrom reads held movement actions from an input frame.
// Jump is accepted as Up.
func CursorsFrom(in core.InputFrame) Cursors {
	return Cursors{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp) || in.Has(core.ActionJump),
		Down:  in.Has(core.ActionDown),
	}
}

// Launcher starts a companion scene alongside the caller.
type Launcher interface {
	Launch(key string) error
}

// Host is the set of engine facilities the gameplay scene is built on.
type Host struct {
	World  *arcade.World
	Anims  *anim.Library
	Scenes Launcher    // may be nil; then no companion scene is started
	Rand   *rand.Rand  // drives star bounce and bomb spawns
	Logger *log.Logger // may be nil; then events are discarded
}

// GameplayScene is the star-collecting level: one player, four ledges,
// a row of stars that respawns when emptied, and a growing set of bombs.
type GameplayScene struct {
	host Host
	cfg  config.StarsConfig

	cursors Cursors

	platforms  *arcade.Group
	player     *arcade.Body
	playerAnim *anim.Player
	stars      *arcade.Group
	starHomes  []float64 // x each star respawns at
	bombs      *arcade.Group

	score     int
	scoreText string
	debugText string
	gameOver  bool
	waves     int // completed depletion-and-respawn waves
}

// NewGameplayScene creates the scene; nothing is built until Create.
func NewGameplayScene(cfg config.StarsConfig, host Host) *GameplayScene {
	if host.Logger == nil {
		host.Logger = log.New(io.Discard)
	}
	return &GameplayScene{host: host, cfg: cfg}
}

// Create builds the world: ledges, player, clips, stars, the empty bomb
// group and every collider, then launches the UI scene.
func (s *GameplayScene) Create() error {
	cfg := s.cfg
	world := s.host.World

	s.score = 0
	s.gameOver = false
	s.waves = 0
	s.cursors = Cursors{}

	s.platforms = world.AddStaticGroup()
	for _, p := range cfg.Platforms {
		b := s.platforms.Create(p.X, p.Y, cfg.Animations.PlatformWidth, cfg.Animations.PlatformHeight)
		b.Kind = KindPlatform
		if p.Scale > 0 && p.Scale != 1 {
			b.SetScale(p.Scale).RefreshBody()
		}
	}

	s.player = world.AddSprite(cfg.Player.X, cfg.Player.Y, cfg.Player.Width, cfg.Player.Height)
	s.player.Kind = KindPlayer
	s.player.SetBounce(cfg.Player.Bounce).
		SetCollideWorldBounds(true).
		SetGravityY(cfg.Player.GravityY)

	if err := s.createClips(); err != nil {
		return err
	}
	s.playerAnim = anim.NewPlayer(s.host.Anims)

	world.Collide(s.player, s.platforms, nil)

	s.stars = world.AddGroup()
	s.starHomes = s.starHomes[:0]
	for i := 0; i < cfg.Stars.Count; i++ {
		x := cfg.Stars.StartX + cfg.Stars.StepX*float64(i)
		star := s.stars.Create(x, cfg.Stars.Y, cfg.Stars.Width, cfg.Stars.Height)
		star.Kind = KindStar
		star.SetBounceY(floatBetween(s.host.Rand, cfg.Stars.BounceMin, cfg.Stars.BounceMax))
		s.starHomes = append(s.starHomes, x)
	}

	world.Collide(s.stars, s.platforms, nil)
	world.Overlap(s.player, s.stars, func(_, star *arcade.Body) {
		s.onCollect(star)
	})

	s.scoreText = "score: 0"
	s.debugText = "test"

	s.bombs = world.AddGroup()
	world.Collide(s.bombs, s.platforms, nil)
	world.Collide(s.player, s.bombs, func(_, bomb *arcade.Body) {
		s.onHazardHit(bomb)
	})

	if s.host.Scenes != nil {
		if err := s.host.Scenes.Launch(KeyUI); err != nil {
			return fmt.Errorf("stars: launch ui: %w", err)
		}
	}
	return nil
}

// createClips registers the three player clips unless a previous Create did.
func (s *GameplayScene) createClips() error {
	a := s.cfg.Animations
	clips := []anim.Clip{
		{Key: ClipLeft, Frames: anim.FrameRange(a.Left.Start, a.Left.End), FrameRate: a.Left.FrameRate, Repeat: a.Left.Repeat},
		{Key: ClipTurn, Frames: anim.FrameRange(a.Turn.Start, a.Turn.End), FrameRate: a.Turn.FrameRate, Repeat: a.Turn.Repeat},
		{Key: ClipRight, Frames: anim.FrameRange(a.Right.Start, a.Right.End), FrameRate: a.Right.FrameRate, Repeat: a.Right.Repeat},
	}
	for _, c := range clips {
		if _, ok := s.host.Anims.Get(c.Key); ok {
			continue
		}
		if err := s.host.Anims.Create(c); err != nil {
			return fmt.Errorf("stars: %w", err)
		}
	}
	return nil
}

// SetCursors stores the input the next Update will read.
func (s *GameplayScene) SetCursors(c Cursors) {
	s.cursors = c
}

// Update runs one tick of scene logic and advances the player animation.
// Physics is stepped by the owner of the world afterwards.
func (s *GameplayScene) Update(dt float64) {
	s.tick(s.cursors)
	s.playerAnim.Update(dt)
}

// tick applies held input to the player. Movement is level-triggered:
// the current keys alone decide velocity and clip.
func (s *GameplayScene) tick(c Cursors) {
	speed := s.cfg.Player.RunSpeed

	switch {
	case c.Left:
		s.player.SetVelocityX(-speed)
		s.play(ClipLeft, true)
	case c.Right:
		s.player.SetVelocityX(speed)
		s.play(ClipRight, true)
	default:
		s.player.SetVelocityX(0)
		s.play(ClipTurn, false)
	}

	grounded := s.player.Touching.Down
	s.debugText = fmt.Sprintf("down: %t", grounded)

	// Re-applies every tick up is held while grounded.
	if c.Up && grounded {
		s.player.SetVelocityY(s.cfg.Player.JumpImpulse)
	}
}

// play switches the player clip. Clips are registered in Create, so a
// failure here means the library was replaced underneath the scene.
func (s *GameplayScene) play(key string, ignoreIfPlaying bool) {
	if err := s.playerAnim.Play(key, ignoreIfPlaying); err != nil {
		s.host.Logger.Error("play clip", "clip", key, "error", err)
	}
}

// onCollect handles the player touching an active star.
func (s *GameplayScene) onCollect(star *arcade.Body) {
	star.DisableBody(true)

	s.score += s.cfg.Stars.Points
	s.scoreText = fmt.Sprintf("Score: %d", s.score)

	if s.stars.CountActive() != 0 {
		return
	}

	for i, child := range s.stars.Children() {
		child.EnableBody(s.starHomes[i], s.cfg.Stars.Y, true)
	}
	s.waves++
	s.host.Logger.Debug("wave respawned", "wave", s.waves, "score", s.score)

	s.spawnBomb()
}

// spawnBomb drops one bomb into the half of the arena away from the player.
func (s *GameplayScene) spawnBomb() {
	cfg := s.cfg
	split := int(cfg.Arena.SplitX)
	width := int(cfg.Arena.Width)

	var x int
	if s.player.X < cfg.Arena.SplitX {
		x = betweenHalfOpen(s.host.Rand, split, width)
	} else {
		x = betweenHalfOpen(s.host.Rand, 0, split)
	}

	bomb := s.bombs.Create(float64(x), cfg.Bombs.SpawnY, cfg.Bombs.Width, cfg.Bombs.Height)
	bomb.Kind = KindBomb
	bomb.SetBounce(cfg.Bombs.Bounce).SetCollideWorldBounds(true)

	vx := float64(between(s.host.Rand, cfg.Bombs.VelocityXMin, cfg.Bombs.VelocityXMax))
	bomb.SetVelocity(vx, cfg.Bombs.VelocityY)

	s.host.Logger.Debug("hazard spawned", "x", x, "vx", vx, "vy", cfg.Bombs.VelocityY, "hazards", s.bombs.Len())
}

// onHazardHit ends the game: the world freezes and the player turns red.
func (s *GameplayScene) onHazardHit(_ *arcade.Body) {
	s.host.World.Pause()
	s.player.SetTint(core.ColorRed)
	s.play(ClipTurn, false)

	if !s.gameOver {
		s.host.Logger.Debug("game over", "score", s.score, "waves", s.waves)
	}
	s.gameOver = true
}

// Score returns the current score.
func (s *GameplayScene) Score() int { return s.score }

// GameOver reports whether a bomb has hit the player.
func (s *GameplayScene) GameOver() bool { return s.gameOver }

// Waves returns how many times the star row has been emptied and respawned.
func (s *GameplayScene) Waves() int { return s.waves }

// ScoreText returns the score overlay string.
func (s *GameplayScene) ScoreText() string { return s.scoreText }

// DebugText returns the grounded-state diagnostic line.
func (s *GameplayScene) DebugText() string { return s.debugText }

// Player returns the player body.
func (s *GameplayScene) Player() *arcade.Body { return s.player }

// PlayerAnim returns the player's animation state.
func (s *GameplayScene) PlayerAnim() *anim.Player { return s.playerAnim }

// Stars returns the collectible group.
func (s *GameplayScene) Stars() *arcade.Group { return s.stars }

// Bombs returns the hazard group.
func (s *GameplayScene) Bombs() *arcade.Group { return s.bombs }

// Platforms returns the static ledges.
func (s *GameplayScene) Platforms() *arcade.Group { return s.platforms }

// floatBetween returns a value in [lo, hi).
func floatBetween(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// between returns an integer in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// betweenHalfOpen returns an integer in [lo, hi).
func betweenHalfOpen(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}
