package registry

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}
	if title, ok := Title("stub_a"); !ok || title != "Stub stub_a" {
		t.Errorf("Title() = (%q, %v), expected (Stub stub_a, true)", title, ok)
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub stub_a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub_a")
			}
		}
	}
	if !found {
		t.Error("List() does not include stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, ok := Title("no_such_game"); ok {
		t.Error("Title() found an unknown game")
	}
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() expected error for unknown game")
	}
	if Exists("no_such_game") {
		t.Error("Exists() = true for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_m", func() Game { return &stubGame{id: "stub_m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
