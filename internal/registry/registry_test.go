package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Step(core.InputFrame, time.Duration) core.StepResult {
	return core.StepResult{}
}

func stubFactory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestAddAndCreate(t *testing.T) {
	if err := Add("zz-stub-a", stubFactory("zz-stub-a")); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if !Exists("zz-stub-a") {
		t.Error("Exists() = false after Add")
	}

	g, err := Create("zz-stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub-a" {
		t.Errorf("Create().ID() = %q, expected zz-stub-a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub-a" {
			found = info.Title == "Stub zz-stub-a"
		}
	}
	if !found {
		t.Error("List() should include the added game with its title")
	}
}

func TestAddDuplicate(t *testing.T) {
	if err := Add("zz-stub-b", stubFactory("zz-stub-b")); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	err := Add("zz-stub-b", stubFactory("zz-stub-b"))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add() duplicate = %v, expected ErrDuplicate", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-stub-c", stubFactory("zz-stub-c"))

	defer func() {
		if recover() == nil {
			t.Error("Register() duplicate should panic")
		}
	}()
	Register("zz-stub-c", stubFactory("zz-stub-c"))
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() expected error for unknown id")
	}
}

func TestListSorted(t *testing.T) {
	_ = Add("zz-stub-e", stubFactory("zz-stub-e"))
	_ = Add("zz-stub-d", stubFactory("zz-stub-d"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}
}
