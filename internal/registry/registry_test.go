package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct {
	id    string
	opts  Options
	reset bool
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.reset = true }
func (g *stubGame) Resize(int, int)                      {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Snapshot() core.BoardSnapshot         { return core.BoardSnapshot{} }

func stubFactory(id string) Factory {
	return func(opts Options) Game { return &stubGame{id: id, opts: opts} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", stubFactory("stub_b"))
	Register("stub_a", stubFactory("stub_a"))

	if !Exists("stub_a") || !Exists("stub_b") {
		t.Fatal("registered games should exist")
	}
	if Exists("stub_missing") {
		t.Error("unregistered id should not exist")
	}

	g, err := Create("stub_a", Options{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID = %q, want stub_a", g.ID())
	}
	if g.(*stubGame).reset {
		t.Error("Create must not reset the game")
	}

	if _, err := Create("stub_missing", Options{}); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub_list_2", stubFactory("stub_list_2"))
	Register("stub_list_1", stubFactory("stub_list_1"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := 0
	for _, info := range list {
		if info.ID == "stub_list_1" || info.ID == "stub_list_2" {
			found++
			if info.Title != "Stub "+info.ID {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if found != 2 {
		t.Errorf("found %d stub entries, want 2", found)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", stubFactory("stub_dup"))
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate id")
		}
	}()
	Register("stub_dup", stubFactory("stub_dup"))
}
