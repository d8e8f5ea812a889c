// Package arcade provides arcade-style rigid-body physics for sprite games:
// axis-aligned bodies with gravity, bounce and world-bound clamping, static
// and dynamic groups, and pairwise colliders / overlap triggers that invoke
// callbacks. Coordinates are world units (pixels) with y growing downward,
// velocities are units per second. Each body is mirrored by a resolv
// rectangle in its world's space, which supplies contact depths.
package arcade

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Facing records which sides of a body are in contact with something.
type Facing struct {
	Up, Down, Left, Right bool
}

// Any reports whether any side is in contact.
func (f Facing) Any() bool {
	return f.Up || f.Down || f.Left || f.Right
}

// Body is a single physics object. X and Y are the center of the body,
// matching how sprites are placed.
type Body struct {
	ID   int
	Kind string // free-form tag set by the creator ("player", "star", ...)

	X, Y       float64
	W, H       float64 // current size, after scale
	baseW      float64
	baseH      float64
	ScaleX     float64
	ScaleY     float64
	VX, VY     float64
	BounceX    float64
	BounceY    float64
	GravityY   float64 // added on top of world gravity
	Immovable  bool    // static bodies never move and ignore gravity
	WorldBound bool    // clamp to world bounds when true

	Enabled bool // participates in integration and collisions
	Visible bool
	Tint    core.Color

	// Touching is set by colliders during the last step.
	Touching Facing
	// Blocked is set by world-bound clamping during the last step.
	Blocked Facing

	obj *resolv.Object // collision shape, top-left anchored
}

func newBody(id int, x, y, w, h float64) *Body {
	b := &Body{
		ID:      id,
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		baseW:   w,
		baseH:   h,
		ScaleX:  1,
		ScaleY:  1,
		Enabled: true,
		Visible: true,
	}
	b.obj = resolv.NewObject(x-w/2, y-h/2, w, h)
	b.obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	b.obj.Data = b
	return b
}

// sync moves the collision shape onto the body's current box, rebuilding
// it when RefreshBody changed the size.
func (b *Body) sync() {
	if b.obj.Size.X != b.W || b.obj.Size.Y != b.H {
		b.obj.Size = resolv.NewVector(b.W, b.H)
		b.obj.SetShape(resolv.NewRectangle(0, 0, b.W, b.H))
	}
	b.obj.Position = resolv.NewVector(b.X-b.W/2, b.Y-b.H/2)
	b.obj.Update()
}

// Bounds returns the body's box in world coordinates.
func (b *Body) Bounds() core.RectF {
	return core.RectF{X: b.X - b.W/2, Y: b.Y - b.H/2, W: b.W, H: b.H}
}

// SetBounce sets the restitution on both axes.
func (b *Body) SetBounce(v float64) *Body {
	b.BounceX, b.BounceY = v, v
	return b
}

// SetBounceY sets vertical restitution only.
func (b *Body) SetBounceY(v float64) *Body {
	b.BounceY = v
	return b
}

// SetGravityY sets the per-body gravity added to the world gravity.
func (b *Body) SetGravityY(g float64) *Body {
	b.GravityY = g
	return b
}

// SetCollideWorldBounds enables or disables world-bound clamping.
func (b *Body) SetCollideWorldBounds(on bool) *Body {
	b.WorldBound = on
	return b
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) *Body {
	b.VX, b.VY = vx, vy
	return b
}

// SetVelocityX sets horizontal velocity.
func (b *Body) SetVelocityX(vx float64) *Body {
	b.VX = vx
	return b
}

// SetVelocityY sets vertical velocity.
func (b *Body) SetVelocityY(vy float64) *Body {
	b.VY = vy
	return b
}

// SetScale sets a uniform display scale. Call RefreshBody to apply it to
// the collision box, which is what static bodies need after scaling.
func (b *Body) SetScale(s float64) *Body {
	b.ScaleX, b.ScaleY = s, s
	return b
}

// RefreshBody resizes the collision box to the current scale around the
// same center.
func (b *Body) RefreshBody() *Body {
	b.W = b.baseW * b.ScaleX
	b.H = b.baseH * b.ScaleY
	return b
}

// SetTint colors the body when drawn. ColorDefault clears the tint.
func (b *Body) SetTint(c core.Color) *Body {
	b.Tint = c
	return b
}

// DisableBody removes the body from the simulation. With hide set it also
// stops being drawn.
func (b *Body) DisableBody(hide bool) {
	b.Enabled = false
	b.VX, b.VY = 0, 0
	b.Touching = Facing{}
	b.Blocked = Facing{}
	if hide {
		b.Visible = false
	}
}

// EnableBody resets the body at (x, y) with zero velocity and returns it to
// the simulation. With show set it is drawn again.
func (b *Body) EnableBody(x, y float64, show bool) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
	b.Touching = Facing{}
	b.Blocked = Facing{}
	b.Enabled = true
	if show {
		b.Visible = true
	}
}

// members lets a single body be used wherever a collision target is expected.
func (b *Body) members() []*Body {
	return []*Body{b}
}
