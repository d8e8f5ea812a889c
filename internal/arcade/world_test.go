package arcade

import (
	"math"
	"testing"
)

const dt = 1.0 / 60.0

func TestGravityIntegration(t *testing.T) {
	w := NewWorld(800, 600, 300)
	b := w.AddSprite(100, 100, 10, 10)
	b.SetGravityY(300)

	w.Step(dt)

	if math.Abs(b.VY-600*dt) > 1e-9 {
		t.Errorf("VY after one step = %v, expected %v", b.VY, 600*dt)
	}
	if b.Y <= 100 {
		t.Errorf("body should fall, Y = %v", b.Y)
	}
}

func TestStaticBodiesDoNotMove(t *testing.T) {
	w := NewWorld(800, 600, 300)
	g := w.AddStaticGroup()
	p := g.Create(400, 568, 400, 32)

	for i := 0; i < 30; i++ {
		w.Step(dt)
	}

	if p.X != 400 || p.Y != 568 || p.VY != 0 {
		t.Errorf("static body moved to (%v, %v) vy=%v", p.X, p.Y, p.VY)
	}
	if !p.Immovable {
		t.Error("static group bodies should be immovable")
	}
}

func TestRefreshBodyAppliesScale(t *testing.T) {
	w := NewWorld(800, 600, 0)
	g := w.AddStaticGroup()
	p := g.Create(400, 568, 400, 32).SetScale(2).RefreshBody()

	r := p.Bounds()
	if r.W != 800 || r.H != 64 || r.X != 0 || r.Y != 536 {
		t.Errorf("Bounds() = %+v, expected {0 536 800 64}", r)
	}
}

func TestBodyRestsOnPlatform(t *testing.T) {
	w := NewWorld(800, 600, 300)
	ground := w.AddStaticGroup()
	ground.Create(400, 568, 400, 32).SetScale(2).RefreshBody()

	b := w.AddSprite(100, 450, 32, 48)
	b.SetBounce(0.2).SetGravityY(300).SetCollideWorldBounds(true)
	w.Collide(b, ground, nil)

	for i := 0; i < 240; i++ {
		w.Step(dt)
	}

	if !b.Touching.Down {
		t.Error("resting body should report Touching.Down")
	}
	if bottom := b.Bounds().Bottom(); math.Abs(bottom-536) > 0.5 {
		t.Errorf("body bottom = %v, expected ~536", bottom)
	}
	if b.Blocked.Down {
		t.Error("platform contact should not be reported as world-bound block")
	}
}

func TestWorldBoundsClampAndBounce(t *testing.T) {
	w := NewWorld(800, 600, 0)
	b := w.AddSprite(795, 300, 14, 14)
	b.SetBounce(1).SetCollideWorldBounds(true).SetVelocity(200, 0)

	w.Step(dt)

	if b.Bounds().Right() > 800 {
		t.Errorf("body should be clamped inside bounds, right = %v", b.Bounds().Right())
	}
	if b.VX != -200 {
		t.Errorf("VX after bounce = %v, expected -200", b.VX)
	}
	if !b.Blocked.Right {
		t.Error("Blocked.Right should be set")
	}
}

func TestUnboundBodyLeavesWorld(t *testing.T) {
	w := NewWorld(100, 100, 0)
	b := w.AddSprite(95, 50, 10, 10).SetVelocity(600, 0)

	w.Step(dt)

	if b.X <= 100 {
		t.Errorf("body without world bounds should pass the edge, X = %v", b.X)
	}
}

func TestOverlapTriggerDoesNotSeparate(t *testing.T) {
	w := NewWorld(800, 600, 0)
	player := w.AddSprite(100, 100, 32, 48)
	items := w.AddGroup()
	star := items.Create(105, 100, 24, 22)

	calls := 0
	w.Overlap(player, items, func(a, b *Body) {
		calls++
		if a != player || b != star {
			t.Error("callback arguments should follow registration order")
		}
		b.DisableBody(true)
	})

	w.Step(dt)
	w.Step(dt)

	if calls != 1 {
		t.Errorf("callback calls = %d, expected 1 (disabled bodies are skipped)", calls)
	}
	if player.X != 100 || star.X != 105 {
		t.Error("overlap trigger must not move bodies")
	}
	if star.Visible || star.Enabled {
		t.Error("DisableBody(true) should hide and disable")
	}
	if items.CountActive() != 0 {
		t.Errorf("CountActive() = %d, expected 0", items.CountActive())
	}
}

func TestSideCollisionSeparatesOnX(t *testing.T) {
	w := NewWorld(800, 600, 0)
	wall := w.AddStaticGroup()
	wall.Create(200, 300, 20, 200)

	b := w.AddSprite(180, 300, 32, 48).SetVelocity(160, 0)
	w.Collide(b, wall, nil)

	w.Step(dt)

	if !b.Touching.Right {
		t.Error("Touching.Right should be set when pushing into a wall")
	}
	if b.Bounds().Right() > 190+1e-9 {
		t.Errorf("body should be pushed out of the wall, right = %v", b.Bounds().Right())
	}
	if b.VX != 0 {
		t.Errorf("VX with zero bounce = %v, expected 0", b.VX)
	}
}

func TestCollideCallbackAndPause(t *testing.T) {
	w := NewWorld(800, 600, 300)
	player := w.AddSprite(100, 300, 32, 48)
	hazards := w.AddGroup()
	bomb := hazards.Create(120, 300, 14, 14)
	bomb.SetVelocity(-200, 20)

	hits := 0
	w.Collide(player, hazards, func(a, b *Body) {
		hits++
		w.Pause()
	})

	w.Step(dt)
	if hits != 1 {
		t.Fatalf("hits = %d, expected 1", hits)
	}
	if !w.Paused() {
		t.Fatal("world should be paused by the callback")
	}

	px, py, bx, by := player.X, player.Y, bomb.X, bomb.Y
	for i := 0; i < 10; i++ {
		w.Step(dt)
	}
	if player.X != px || player.Y != py || bomb.X != bx || bomb.Y != by {
		t.Error("paused world should not move bodies")
	}
	if hits != 1 {
		t.Error("paused world should not evaluate colliders")
	}

	w.Resume()
	w.Step(dt)
	if player.Y == py {
		t.Error("resumed world should integrate again")
	}
}

func TestColliderRemove(t *testing.T) {
	w := NewWorld(800, 600, 0)
	a := w.AddSprite(100, 100, 10, 10)
	b := w.AddSprite(104, 100, 10, 10)

	calls := 0
	c := w.Overlap(a, b, func(_, _ *Body) { calls++ })
	w.Step(dt)
	c.Remove()
	c.Remove()
	w.Step(dt)

	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
	if c.Active() {
		t.Error("removed collider should report inactive")
	}
}

func TestEnableBodyResets(t *testing.T) {
	w := NewWorld(800, 600, 300)
	g := w.AddGroup()
	b := g.Create(12, 0, 24, 22)
	for i := 0; i < 20; i++ {
		w.Step(dt)
	}
	b.DisableBody(true)

	y := b.Y
	w.Step(dt)
	if b.Y != y {
		t.Error("disabled body should not be integrated")
	}

	b.EnableBody(12, 0, true)
	if b.X != 12 || b.Y != 0 || b.VX != 0 || b.VY != 0 {
		t.Errorf("EnableBody should reset position and velocity, got (%v, %v) v=(%v, %v)", b.X, b.Y, b.VX, b.VY)
	}
	if !b.Enabled || !b.Visible {
		t.Error("EnableBody(show) should enable and show")
	}
	if g.CountActive() != 1 {
		t.Errorf("CountActive() = %d, expected 1", g.CountActive())
	}
}

// axisOf mirrors how separate picks the push-out axis.
func axisOf(dx, dy float64) (string, float64) {
	switch {
	case dx == 0 && dy == 0:
		return "", 0
	case dy > 0 && (dx == 0 || dy <= dx):
		return "y", dy
	default:
		return "x", dx
	}
}

func TestPenetration(t *testing.T) {
	tests := []struct {
		name   string
		ax, ay float64
		aw, ah float64
		bx, by float64
		bw, bh float64
		axis   string
		depth  float64
	}{
		{"resting on top", 5, 5, 10, 10, 10, 12, 20, 5, "y", 0.5},
		{"side push", 5, 5, 10, 10, 13, 10, 10, 30, "x", 2},
		{"touching edges", 5, 5, 10, 10, 15, 5, 10, 10, "", 0},
		{"touching floor", 5, 5, 10, 10, 5, 15, 10, 10, "", 0},
		{"apart", 0.5, 0.5, 1, 1, 5.5, 5.5, 1, 1, "", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(100, 100, 0)
			a := w.AddSprite(tc.ax, tc.ay, tc.aw, tc.ah)
			b := w.AddSprite(tc.bx, tc.by, tc.bw, tc.bh)

			axis, depth := axisOf(penetration(a, b))
			if axis != tc.axis || math.Abs(depth-tc.depth) > 1e-9 {
				t.Errorf("penetration = %s %v, expected %s %v", axis, depth, tc.axis, tc.depth)
			}
			if rev, _ := axisOf(penetration(b, a)); rev != tc.axis {
				t.Errorf("reversed pair resolves on %q, expected %q", rev, tc.axis)
			}
		})
	}
}

func TestOverlapTriggerFiresForSwallowedBody(t *testing.T) {
	w := NewWorld(800, 600, 0)
	player := w.AddSprite(100, 100, 32, 48)
	bombs := w.AddGroup()
	bombs.Create(100, 100, 14, 14)

	hits := 0
	w.Overlap(player, bombs, func(_, _ *Body) { hits++ })
	w.Step(dt)

	if hits != 1 {
		t.Errorf("hits = %d, expected 1 for a body fully inside another", hits)
	}
}

func TestShapeFollowsRefreshedBody(t *testing.T) {
	w := NewWorld(800, 600, 300)
	ground := w.AddStaticGroup()
	ground.Create(400, 568, 400, 32).SetScale(2).RefreshBody()

	// x=700 is only over the ledge once the scale is applied.
	b := w.AddSprite(700, 450, 32, 48).SetGravityY(300)
	w.Collide(b, ground, nil)

	for i := 0; i < 240; i++ {
		w.Step(dt)
	}

	if bottom := b.Bounds().Bottom(); math.Abs(bottom-536) > 0.5 {
		t.Errorf("body bottom = %v, expected ~536 on the scaled ledge", bottom)
	}
	if !b.Touching.Down {
		t.Error("body on the scaled ledge should report Touching.Down")
	}
}

func TestMovedBodyCollidesAtNewPosition(t *testing.T) {
	w := NewWorld(800, 600, 0)
	player := w.AddSprite(100, 100, 32, 48)
	items := w.AddGroup()
	star := items.Create(600, 100, 24, 22)

	hits := 0
	w.Overlap(player, items, func(_, _ *Body) { hits++ })
	w.Step(dt)
	if hits != 0 {
		t.Fatalf("hits = %d before moving, expected 0", hits)
	}

	star.EnableBody(110, 100, true)
	w.Step(dt)
	if hits != 1 {
		t.Errorf("hits = %d after moving onto the player, expected 1", hits)
	}
}
