package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/starcatch/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q, expected zz-stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "ZZ-STUB" {
				t.Errorf("Title = %q, expected ZZ-STUB", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, want ErrUnknownGame", err)
	}
	if Exists("does-not-exist") {
		t.Error("unknown id should not exist")
	}
}

func TestLookup(t *testing.T) {
	Register("zz-lookup", func() Game { return &stubGame{id: "zz-lookup"} })

	info, ok := Lookup("zz-lookup")
	if !ok || info != (GameInfo{ID: "zz-lookup", Title: "ZZ-LOOKUP"}) {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}
	if _, ok := Lookup("zz-missing"); ok {
		t.Error("Lookup of an unregistered id should report false")
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("zz-fresh", func() Game { return &stubGame{id: "zz-fresh"} })

	a, _ := Create("zz-fresh")
	b, _ := Create("zz-fresh")
	if a == b {
		t.Error("each Create should build a new game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}
