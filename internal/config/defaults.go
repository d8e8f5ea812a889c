package config

import (
	_ "embed"
)

//go:embed defaults/stars.yaml
var defaultStarsYAML []byte

// DefaultStarsConfig returns the default Star Catcher configuration.
// It matches defaults/stars.yaml and is used when the embedded file is unreadable.
func DefaultStarsConfig() StarsConfig {
	return StarsConfig{
		Arena: StarsArena{
			Width:   800,
			Height:  600,
			Gravity: 300,
			SplitX:  400,
		},
		Player: StarsPlayer{
			X:           100,
			Y:           450,
			Width:       32,
			Height:      48,
			Bounce:      0.2,
			GravityY:    300,
			RunSpeed:    160,
			JumpImpulse: -600,
		},
		Platforms: []StarsPlatform{
			{X: 400, Y: 568, Scale: 2}, // ground
			{X: 600, Y: 400, Scale: 1},
			{X: 50, Y: 250, Scale: 1},
			{X: 750, Y: 220, Scale: 1},
		},
		Stars: StarsStars{
			Count:     12,
			StartX:    12,
			StepX:     70,
			Y:         0,
			Width:     24,
			Height:    22,
			BounceMin: 0.4,
			BounceMax: 0.8,
			Points:    10,
		},
		Bombs: StarsBombs{
			SpawnY:       16,
			Width:        14,
			Height:       14,
			Bounce:       1,
			VelocityXMin: 200,
			VelocityXMax: 200,
			VelocityY:    20,
		},
		Animations: StarsAnimations{
			PlatformWidth:  400,
			PlatformHeight: 32,
			Left:           ClipRange{Start: 0, End: 3, FrameRate: 10, Repeat: 1},
			Turn:           ClipRange{Start: 4, End: 4, FrameRate: 20, Repeat: 0},
			Right:          ClipRange{Start: 5, End: 8, FrameRate: 10, Repeat: 1},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "stars":
		return defaultStarsYAML
	default:
		return nil
	}
}
