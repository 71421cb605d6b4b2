package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/chicken-invaders/internal/core"
)

type stubLevel struct {
	id  string
	env Env
}

func (s *stubLevel) ID() string                           { return s.id }
func (s *stubLevel) Title() string                        { return "Stub" }
func (s *stubLevel) Reset()                               {}
func (s *stubLevel) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubLevel) State() core.GameState                { return core.GameState{} }
func (s *stubLevel) TickDelay() time.Duration             { return 0 }
func (s *stubLevel) Teardown()                            {}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-create", "Stub", func(env Env) Level { return &stubLevel{id: "stub-create", env: env} })

	if !Exists("stub-create") {
		t.Fatal("Exists() should report a registered level")
	}

	lvl, err := Create("stub-create", Env{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if lvl.ID() != "stub-create" {
		t.Errorf("ID() = %q, expected stub-create", lvl.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-create" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered level")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-level", Env{}); err == nil {
		t.Error("Create() should fail for an unknown level")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", "Stub", func(Env) Level { return &stubLevel{} })

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate ID")
		}
	}()
	Register("stub-dup", "Stub", func(Env) Level { return &stubLevel{} })
}

func TestListSorted(t *testing.T) {
	Register("stub-b", "B", func(Env) Level { return &stubLevel{} })
	Register("stub-a", "A", func(Env) Level { return &stubLevel{} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestEnvFill(t *testing.T) {
	env := Env{}.Fill()
	if env.Clock == nil || env.Sound == nil || env.Logger == nil {
		t.Errorf("Fill() left nil collaborators: %+v", env)
	}
}
