package scene

import (
	"errors"
	"testing"

	"github.com/vovakirdan/starcatch/internal/core"
)

type fakeScene struct {
	name    string
	log     *[]string
	onStart func() error
}

func (f *fakeScene) Create() error {
	*f.log = append(*f.log, "create:"+f.name)
	if f.onStart != nil {
		return f.onStart()
	}
	return nil
}

func (f *fakeScene) Update(float64) {
	*f.log = append(*f.log, "update:"+f.name)
}

func (f *fakeScene) Draw(dst *core.Screen) {
	dst.DrawText(0, 0, f.name)
}

func TestLaunchFromCreateRunsAlongside(t *testing.T) {
	var log []string
	m := NewManager()
	main := &fakeScene{name: "main", log: &log}
	ui := &fakeScene{name: "ui", log: &log}
	main.onStart = func() error { return m.Launch("ui") }

	if err := m.Add("main", main); err != nil {
		t.Fatal(err)
	}
	if err := m.Add("ui", ui); err != nil {
		t.Fatal(err)
	}

	if err := m.Start("main"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	active := m.Active()
	if len(active) != 2 || active[0] != "main" || active[1] != "ui" {
		t.Fatalf("Active() = %v, expected [main ui]", active)
	}

	log = log[:0]
	m.Update(1.0 / 60)
	if len(log) != 2 || log[0] != "update:main" || log[1] != "update:ui" {
		t.Errorf("update order = %v", log)
	}

	s := core.NewScreen(10, 1)
	m.Draw(s)
	if s.Row(0)[:2] != "ui" {
		t.Errorf("later scenes should draw on top, row = %q", s.Row(0))
	}
}

func TestLaunchIsIdempotent(t *testing.T) {
	var log []string
	m := NewManager()
	_ = m.Add("ui", &fakeScene{name: "ui", log: &log})

	_ = m.Launch("ui")
	_ = m.Launch("ui")

	if len(m.Active()) != 1 {
		t.Errorf("Active() = %v, expected one entry", m.Active())
	}
	if len(log) != 1 {
		t.Errorf("Create should run once, log = %v", log)
	}
}

func TestUnknownAndDuplicate(t *testing.T) {
	var log []string
	m := NewManager()
	if err := m.Start("missing"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Start(missing) = %v, expected ErrUnknownScene", err)
	}
	if err := m.Launch("missing"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Launch(missing) = %v, expected ErrUnknownScene", err)
	}
	_ = m.Add("a", &fakeScene{name: "a", log: &log})
	if err := m.Add("a", &fakeScene{name: "a", log: &log}); !errors.Is(err, ErrDuplicateScene) {
		t.Errorf("Add twice = %v, expected ErrDuplicateScene", err)
	}
}

func TestCreateFailureDeactivates(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	m := NewManager()
	_ = m.Add("bad", &fakeScene{name: "bad", log: &log, onStart: func() error { return boom }})

	err := m.Start("bad")
	if !errors.Is(err, boom) {
		t.Errorf("Start() error = %v, expected wrapped boom", err)
	}
	if m.IsActive("bad") {
		t.Error("scene whose Create failed should not stay active")
	}
}

func TestStartReplacesActive(t *testing.T) {
	var log []string
	m := NewManager()
	_ = m.Add("a", &fakeScene{name: "a", log: &log})
	_ = m.Add("b", &fakeScene{name: "b", log: &log})

	_ = m.Start("a")
	_ = m.Launch("b")
	_ = m.Start("a")

	if got := m.Active(); len(got) != 1 || got[0] != "a" {
		t.Errorf("Active() = %v, expected [a]", got)
	}
}
