package arcade

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/starcatch/internal/core"
)

// cellSize is the edge of a resolv space cell in world units.
const cellSize = 32

// Target is one side of a collider: a single *Body or a *Group.
type Target interface {
	members() []*Body
}

// CollideFunc is invoked for every colliding or overlapping pair.
// The first argument always comes from the collider's first target.
type CollideFunc func(a, b *Body)

// Collider is a registered pairwise check between two targets.
type Collider struct {
	world       *World
	a, b        Target
	overlapOnly bool
	callback    CollideFunc
	active      bool
}

// Remove unregisters the collider. It is safe to call more than once.
func (c *Collider) Remove() {
	if !c.active {
		return
	}
	c.active = false
	w := c.world
	kept := w.colliders[:0]
	for _, other := range w.colliders {
		if other != c {
			kept = append(kept, other)
		}
	}
	w.colliders = kept
}

// Active reports whether the collider is still registered.
func (c *Collider) Active() bool {
	return c.active
}

// World owns every body and collider and advances them in fixed steps.
type World struct {
	Bounds  core.RectF // bodies with WorldBound set are clamped to this box
	Gravity float64    // downward acceleration applied to dynamic bodies

	space     *resolv.Space
	bodies    []*Body
	colliders []*Collider
	nextID    int
	paused    bool
}

// NewWorld creates a world of the given size anchored at the origin.
func NewWorld(width, height, gravity float64) *World {
	return &World{
		Bounds:  core.RectF{X: 0, Y: 0, W: width, H: height},
		Gravity: gravity,
		space:   resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cellSize, cellSize),
	}
}

func (w *World) newBody(x, y, width, height float64) *Body {
	w.nextID++
	b := newBody(w.nextID, x, y, width, height)
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	return b
}

// AddSprite creates a standalone dynamic body centered at (x, y).
func (w *World) AddSprite(x, y, width, height float64) *Body {
	return w.newBody(x, y, width, height)
}

// AddGroup creates an empty group of dynamic bodies.
func (w *World) AddGroup() *Group {
	return &Group{world: w}
}

// AddStaticGroup creates an empty group whose bodies are immovable.
func (w *World) AddStaticGroup() *Group {
	return &Group{world: w, static: true}
}

// Bodies returns every body in creation order, including disabled ones.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Collide registers a collider: overlapping pairs are separated, their
// velocities reflected by bounce, and cb (may be nil) is called afterwards.
func (w *World) Collide(a, b Target, cb CollideFunc) *Collider {
	return w.addCollider(a, b, false, cb)
}

// Overlap registers a trigger: cb is called for overlapping pairs and
// nothing is separated.
func (w *World) Overlap(a, b Target, cb CollideFunc) *Collider {
	return w.addCollider(a, b, true, cb)
}

func (w *World) addCollider(a, b Target, overlapOnly bool, cb CollideFunc) *Collider {
	c := &Collider{
		world:       w,
		a:           a,
		b:           b,
		overlapOnly: overlapOnly,
		callback:    cb,
		active:      true,
	}
	w.colliders = append(w.colliders, c)
	return c
}

// Pause freezes the simulation: Step stops integrating and evaluating colliders.
func (w *World) Pause() {
	w.paused = true
}

// Resume undoes Pause.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether the world is frozen.
func (w *World) Paused() bool {
	return w.paused
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if w.paused || dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		if !b.Enabled {
			continue
		}
		b.Touching = Facing{}
		b.Blocked = Facing{}
		if b.Immovable {
			continue
		}
		w.integrate(b, dt)
	}

	// Snapshot so callbacks registering colliders take effect next step.
	colliders := append([]*Collider(nil), w.colliders...)
	for _, c := range colliders {
		if !c.active {
			continue
		}
		w.evaluate(c)
		if w.paused {
			// A callback froze the world; nothing else resolves this step.
			return
		}
	}
}

// integrate applies gravity and velocity, then world bounds.
func (w *World) integrate(b *Body, dt float64) {
	b.VY += (w.Gravity + b.GravityY) * dt
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.WorldBound {
		w.clampToBounds(b)
	}
}

// clampToBounds keeps the body inside the world and bounces it off the edges.
func (w *World) clampToBounds(b *Body) {
	halfW, halfH := b.W/2, b.H/2

	if b.X-halfW < w.Bounds.X {
		b.X = w.Bounds.X + halfW
		b.VX = -b.VX * b.BounceX
		b.Blocked.Left = true
	} else if b.X+halfW > w.Bounds.Right() {
		b.X = w.Bounds.Right() - halfW
		b.VX = -b.VX * b.BounceX
		b.Blocked.Right = true
	}

	if b.Y-halfH < w.Bounds.Y {
		b.Y = w.Bounds.Y + halfH
		b.VY = -b.VY * b.BounceY
		b.Blocked.Up = true
	} else if b.Y+halfH > w.Bounds.Bottom() {
		b.Y = w.Bounds.Bottom() - halfH
		b.VY = -b.VY * b.BounceY
		b.Blocked.Down = true
	}
}

// evaluate checks every pair of a collider in order.
func (w *World) evaluate(c *Collider) {
	as, bs := c.a.members(), c.b.members()
	for _, a := range as {
		for _, b := range bs {
			if a == b || !a.Enabled || !b.Enabled {
				continue
			}

			if c.overlapOnly {
				if dx, dy := penetration(a, b); dx == 0 && dy == 0 {
					continue
				}
			} else if !separate(a, b) {
				continue
			}

			if c.callback != nil {
				c.callback(a, b)
			}
			if w.paused {
				return
			}
		}
	}
}

// penetration returns how deep a sits in b along each axis. It is zero for
// boxes that are apart or only share an edge. Otherwise it is the minimum
// translation vector of the resolv shapes, which is non-zero on one axis.
func penetration(a, b *Body) (dx, dy float64) {
	ra, rb := a.Bounds(), b.Bounds()
	if !ra.Intersects(rb) {
		return 0, 0
	}

	a.sync()
	b.sync()
	contact := a.obj.Shape.Intersection(0, 0, b.obj.Shape)
	if contact == nil || (contact.MTV.X == 0 && contact.MTV.Y == 0) {
		// No edges cross when one box swallows the other.
		return ra.Overlap(rb)
	}
	return math.Abs(contact.MTV.X), math.Abs(contact.MTV.Y)
}

// separate pushes two overlapping bodies apart along the axis of least
// penetration. Returns false when they do not overlap or both are immovable.
func separate(a, b *Body) bool {
	if a.Immovable && b.Immovable {
		return false
	}

	dx, dy := penetration(a, b)
	if dx == 0 && dy == 0 {
		return false
	}

	if dy > 0 && (dx == 0 || dy <= dx) {
		separateY(a, b, dy)
	} else {
		separateX(a, b, dx)
	}
	return true
}

func separateY(a, b *Body, overlap float64) {
	aAbove := a.Y < b.Y
	if aAbove {
		a.Touching.Down = true
		b.Touching.Up = true
	} else {
		a.Touching.Up = true
		b.Touching.Down = true
	}

	// dir is the direction a must move along y to leave b.
	dir := 1.0
	if aAbove {
		dir = -1.0
	}

	rel := a.VY - b.VY
	approaching := (aAbove && rel > 0) || (!aAbove && rel < 0)

	switch {
	case b.Immovable:
		a.Y += dir * overlap
		if approaching {
			a.VY = b.VY - rel*a.BounceY
		}
	case a.Immovable:
		b.Y -= dir * overlap
		if approaching {
			b.VY = a.VY + rel*b.BounceY
		}
	default:
		a.Y += dir * overlap / 2
		b.Y -= dir * overlap / 2
		if approaching {
			va, vb := a.VY, b.VY
			a.VY = vb * a.BounceY
			b.VY = va * b.BounceY
		}
	}
}

func separateX(a, b *Body, overlap float64) {
	aLeft := a.X < b.X
	if aLeft {
		a.Touching.Right = true
		b.Touching.Left = true
	} else {
		a.Touching.Left = true
		b.Touching.Right = true
	}

	dir := 1.0
	if aLeft {
		dir = -1.0
	}

	rel := a.VX - b.VX
	approaching := (aLeft && rel > 0) || (!aLeft && rel < 0)

	switch {
	case b.Immovable:
		a.X += dir * overlap
		if approaching {
			a.VX = b.VX - rel*a.BounceX
		}
	case a.Immovable:
		b.X -= dir * overlap
		if approaching {
			b.VX = a.VX + rel*b.BounceX
		}
	default:
		a.X += dir * overlap / 2
		b.X -= dir * overlap / 2
		if approaching {
			va, vb := a.VX, b.VX
			a.VX = vb * a.BounceX
			b.VX = va * b.BounceX
		}
	}
}
