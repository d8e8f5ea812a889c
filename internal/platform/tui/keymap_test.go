package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('a'), &frame) {
		t.Error("a should not quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should contain Left")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldKeysLifetime(t *testing.T) {
	h := NewHeldKeys(3, 2)

	h.Press(core.ActionLeft)
	for i := 0; i < 3; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should be held", i)
		}
		h.Tick()
	}
	if h.IsHeld(core.ActionLeft) {
		t.Error("left should be released after the initial hold")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	tests := []struct {
		name      string
		waitFirst int // ticks between the first press and the repeat
		heldFor   int // ticks the key stays held after the repeat
	}{
		{name: "double tap keeps the initial hold", waitFirst: 1, heldFor: 4},
		{name: "late repeat extends by the repeat window", waitFirst: 4, heldFor: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeldKeys(5, 2)
			h.Press(core.ActionRight)
			for i := 0; i < tt.waitFirst; i++ {
				h.Tick()
			}
			h.Press(core.ActionRight)

			for i := 0; i < tt.heldFor-1; i++ {
				h.Tick()
				if !h.IsHeld(core.ActionRight) {
					t.Fatalf("tick %d after repeat: right should still be held", i+1)
				}
			}
			h.Tick()
			if h.IsHeld(core.ActionRight) {
				t.Errorf("right should release %d ticks after the repeat", tt.heldFor)
			}
		})
	}
}

func TestHeldKeysOppositeDirection(t *testing.T) {
	h := NewHeldKeys(10, 4)

	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	if h.IsHeld(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !h.IsHeld(core.ActionRight) || !h.IsHeld(core.ActionUp) {
		t.Error("right and up should both be held")
	}

	h.Press(core.ActionDown)
	if h.IsHeld(core.ActionUp) {
		t.Error("pressing down should release up")
	}

	h.Release()
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		if h.IsHeld(a) {
			t.Errorf("%v still held after Release", a)
		}
	}
}

func TestHeldKeysIgnoresOneShots(t *testing.T) {
	h := NewHeldKeys(10, 4)
	h.Press(core.ActionPause)
	h.Press(core.ActionJump)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionPause) || frame.Has(core.ActionJump) {
		t.Error("one-shot actions must not be latched")
	}
}
