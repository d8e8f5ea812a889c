// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("config: invalid config")

// StarsConfig contains all configuration for the Star Catcher scene.
type StarsConfig struct {
	Arena      StarsArena      `yaml:"arena"`
	Player     StarsPlayer     `yaml:"player"`
	Platforms  []StarsPlatform `yaml:"platforms"`
	Stars      StarsStars      `yaml:"stars"`
	Bombs      StarsBombs      `yaml:"bombs"`
	Animations StarsAnimations `yaml:"animations"`
}

// StarsArena defines the world box and its gravity.
type StarsArena struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"` // world gravity applied to every dynamic body
	SplitX  float64 `yaml:"split_x"` // divides the arena into left/right halves for bomb spawns
}

// StarsPlayer defines the player body and movement.
type StarsPlayer struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Bounce      float64 `yaml:"bounce"`
	GravityY    float64 `yaml:"gravity_y"` // added to arena gravity
	RunSpeed    float64 `yaml:"run_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative = up
}

// StarsPlatform places one static ledge. Scale multiplies the base texture size.
type StarsPlatform struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

// StarsStars defines the collectible row.
type StarsStars struct {
	Count     int     `yaml:"count"`
	StartX    float64 `yaml:"start_x"`
	StepX     float64 `yaml:"step_x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BounceMin float64 `yaml:"bounce_min"` // per-star vertical bounce drawn from [min, max)
	BounceMax float64 `yaml:"bounce_max"`
	Points    int     `yaml:"points"`
}

// StarsBombs defines hazard spawning.
type StarsBombs struct {
	SpawnY       float64 `yaml:"spawn_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Bounce       float64 `yaml:"bounce"`
	VelocityXMin int     `yaml:"velocity_x_min"` // inclusive integer range; equal bounds give a constant
	VelocityXMax int     `yaml:"velocity_x_max"`
	VelocityY    float64 `yaml:"velocity_y"`
}

// StarsAnimations holds the player's clips and the platform texture size.
type StarsAnimations struct {
	PlatformWidth  float64   `yaml:"platform_width"`
	PlatformHeight float64   `yaml:"platform_height"`
	Left           ClipRange `yaml:"left"`
	Turn           ClipRange `yaml:"turn"`
	Right          ClipRange `yaml:"right"`
}

// ClipRange is a contiguous run of sprite-sheet frames.
type ClipRange struct {
	Start     int     `yaml:"start"`
	End       int     `yaml:"end"`
	FrameRate float64 `yaml:"frame_rate"`
	Repeat    int     `yaml:"repeat"`
}

// Validate checks the config for values the scene cannot run with.
func (c StarsConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena size must be positive", ErrInvalidConfig)
	case c.Arena.SplitX <= 0 || c.Arena.SplitX >= c.Arena.Width:
		return fmt.Errorf("%w: arena split_x must lie inside the arena", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Stars.Count <= 0:
		return fmt.Errorf("%w: stars count must be positive", ErrInvalidConfig)
	case c.Stars.Width <= 0 || c.Stars.Height <= 0:
		return fmt.Errorf("%w: star size must be positive", ErrInvalidConfig)
	case c.Stars.BounceMin > c.Stars.BounceMax:
		return fmt.Errorf("%w: stars bounce_min exceeds bounce_max", ErrInvalidConfig)
	case c.Bombs.Width <= 0 || c.Bombs.Height <= 0:
		return fmt.Errorf("%w: bomb size must be positive", ErrInvalidConfig)
	case c.Bombs.VelocityXMin > c.Bombs.VelocityXMax:
		return fmt.Errorf("%w: bombs velocity_x_min exceeds velocity_x_max", ErrInvalidConfig)
	case c.Animations.PlatformWidth <= 0 || c.Animations.PlatformHeight <= 0:
		return fmt.Errorf("%w: platform texture size must be positive", ErrInvalidConfig)
	}

	for name, r := range map[string]ClipRange{
		"left":  c.Animations.Left,
		"turn":  c.Animations.Turn,
		"right": c.Animations.Right,
	} {
		if r.End < r.Start || r.FrameRate <= 0 {
			return fmt.Errorf("%w: animation %s needs start <= end and a positive frame_rate", ErrInvalidConfig, name)
		}
	}
	for i, p := range c.Platforms {
		if p.Scale < 0 {
			return fmt.Errorf("%w: platform %d has negative scale", ErrInvalidConfig, i)
		}
	}
	return nil
}
