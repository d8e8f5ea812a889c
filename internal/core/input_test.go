package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionUp)
	if !f.Has(ActionLeft) || !f.Has(ActionUp) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on zero frame should allocate the map")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := InputOf(ActionLeft, ActionPause)
	c := f.Clone()
	f.Clear()

	if !c.Has(ActionLeft) || !c.Has(ActionPause) {
		t.Error("clone should keep actions after the original is cleared")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionUp, "Up"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
