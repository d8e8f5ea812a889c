package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), want (25, 25)", r.Right(), r.Bottom())
	}
}

func TestRectFOverlap(t *testing.T) {
	tests := []struct {
		name   string
		a, b   RectF
		dx, dy float64
	}{
		{"resting on top", RectF{0, 0, 10, 10}, RectF{0, 9.5, 20, 5}, 10, 0.5},
		{"touching edges", RectF{0, 0, 10, 10}, RectF{10, 0, 10, 10}, 0, 0},
		{"touching floor", RectF{0, 0, 10, 10}, RectF{0, 10, 10, 10}, 0, 0},
		{"side push", RectF{0, 0, 10, 10}, RectF{8, -5, 10, 30}, 2, 10},
		{"contained", RectF{2, 2, 4, 4}, RectF{0, 0, 10, 10}, 4, 4},
		{"apart", RectF{0, 0, 1, 1}, RectF{5, 5, 1, 1}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := tc.a.Overlap(tc.b)
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Overlap() = (%v, %v), want (%v, %v)", dx, dy, tc.dx, tc.dy)
			}
			if got := tc.a.Intersects(tc.b); got != (tc.dx > 0) {
				t.Errorf("Intersects() = %v, want %v", got, tc.dx > 0)
			}
			if got := tc.b.Intersects(tc.a); got != (tc.dx > 0) {
				t.Errorf("Intersects() is not symmetric for %v and %v", tc.a, tc.b)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := RectF{X: 400, Y: 568, W: 800, H: 64}
	if r.Right() != 1200 || r.Bottom() != 632 {
		t.Errorf("edges = (%v, %v)", r.Right(), r.Bottom())
	}
}
