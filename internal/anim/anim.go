// Package anim provides sprite-sheet animation: a library of named clips
// and per-sprite players that advance frames at the clip's frame rate.
package anim

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownClip is returned when playing a clip key that was never created.
	ErrUnknownClip = errors.New("anim: unknown clip")
	// ErrDuplicateClip is returned when a clip key is created twice.
	ErrDuplicateClip = errors.New("anim: duplicate clip")
	// ErrInvalidClip is returned for clips without frames or frame rate.
	ErrInvalidClip = errors.New("anim: invalid clip")
)

// RepeatForever makes a clip loop until another clip is played.
const RepeatForever = -1

// timeEpsilon absorbs float drift when fixed ticks sum to a frame boundary.
const timeEpsilon = 1e-9

// Clip is a named sequence of sprite-sheet frame indices.
type Clip struct {
	Key       string
	Frames    []int
	FrameRate float64 // frames per second
	Repeat    int     // extra plays after the first; RepeatForever loops
}

// FrameRange returns the frame indices start..end inclusive.
func FrameRange(start, end int) []int {
	if end < start {
		return nil
	}
	frames := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		frames = append(frames, i)
	}
	return frames
}

// Library holds every clip known to a scene.
type Library struct {
	clips map[string]Clip
}

// NewLibrary creates an empty clip library.
func NewLibrary() *Library {
	return &Library{clips: make(map[string]Clip)}
}

// Create validates and registers a clip.
func (l *Library) Create(c Clip) error {
	if c.Key == "" || len(c.Frames) == 0 || c.FrameRate <= 0 || c.Repeat < RepeatForever {
		return fmt.Errorf("%w: %q", ErrInvalidClip, c.Key)
	}
	if _, exists := l.clips[c.Key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateClip, c.Key)
	}
	c.Frames = append([]int(nil), c.Frames...)
	l.clips[c.Key] = c
	return nil
}

// Get returns the clip registered under key.
func (l *Library) Get(key string) (Clip, bool) {
	c, ok := l.clips[key]
	return c, ok
}

// Player plays clips from a library for one sprite.
type Player struct {
	lib     *Library
	clip    Clip
	index   int     // position in clip.Frames
	elapsed float64 // seconds accumulated toward the next frame
	played  int     // completed passes through the clip
	playing bool
}

// NewPlayer creates a player with nothing playing.
func NewPlayer(lib *Library) *Player {
	return &Player{lib: lib}
}

// Play starts the clip under key from its first frame. With ignoreIfPlaying
// set, asking for the clip that is already running leaves it untouched.
func (p *Player) Play(key string, ignoreIfPlaying bool) error {
	if ignoreIfPlaying && p.playing && p.clip.Key == key {
		return nil
	}

	c, ok := p.lib.Get(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownClip, key)
	}

	p.clip = c
	p.index = 0
	p.elapsed = 0
	p.played = 0
	p.playing = true
	return nil
}

// Update advances the current clip by dt seconds.
func (p *Player) Update(dt float64) {
	if !p.playing {
		return
	}

	frameTime := 1.0 / p.clip.FrameRate
	p.elapsed += dt
	for p.playing && p.elapsed+timeEpsilon >= frameTime {
		p.elapsed -= frameTime
		p.advance()
	}
}

func (p *Player) advance() {
	if p.index < len(p.clip.Frames)-1 {
		p.index++
		return
	}

	// End of a pass through the clip.
	p.played++
	if p.clip.Repeat == RepeatForever || p.played <= p.clip.Repeat {
		p.index = 0
		return
	}
	p.playing = false
}

// CurrentKey returns the key of the last clip played, or "" if none.
func (p *Player) CurrentKey() string {
	return p.clip.Key
}

// Frame returns the sprite-sheet frame currently shown, or -1 before the
// first Play.
func (p *Player) Frame() int {
	if len(p.clip.Frames) == 0 {
		return -1
	}
	return p.clip.Frames[p.index]
}

// IsPlaying reports whether a clip is still advancing. A clip that has
// finished its repeats holds its last frame and reports false.
func (p *Player) IsPlaying() bool {
	return p.playing
}
