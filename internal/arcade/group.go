package arcade

// Group is an ordered collection of bodies that can be registered with a
// collider as one side. Static groups create immovable bodies.
type Group struct {
	world  *World
	static bool
	bodies []*Body
}

// Create adds a new body centered at (x, y) with the given size.
func (g *Group) Create(x, y, w, h float64) *Body {
	b := g.world.newBody(x, y, w, h)
	b.Immovable = g.static
	g.bodies = append(g.bodies, b)
	return b
}

// Children returns the bodies in creation order. The slice must not be modified.
func (g *Group) Children() []*Body {
	return g.bodies
}

// Len returns the number of bodies in the group, active or not.
func (g *Group) Len() int {
	return len(g.bodies)
}

// CountActive returns how many bodies are currently enabled.
func (g *Group) CountActive() int {
	n := 0
	for _, b := range g.bodies {
		if b.Enabled {
			n++
		}
	}
	return n
}

// Each calls fn for every body in creation order.
func (g *Group) Each(fn func(*Body)) {
	for _, b := range g.bodies {
		fn(b)
	}
}

func (g *Group) members() []*Body {
	return g.bodies
}
