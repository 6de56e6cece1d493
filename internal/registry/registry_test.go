package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub" }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	var got Options
	Register(GameInfo{ID: "zz-stub", Title: "Stub"}, func(opts Options) (Game, error) {
		got = opts
		return stubGame{id: "zz-stub"}, nil
	})

	if !Exists("zz-stub") {
		t.Fatal("registered game not found")
	}

	g, err := Create("zz-stub", Options{ConfigPath: "custom.yaml", Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID = %q", g.ID())
	}
	if got.ConfigPath != "custom.yaml" || got.Difficulty != "hard" {
		t.Errorf("options not forwarded: %+v", got)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List does not include the registered game")
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("does-not-exist", Options{}); err == nil {
		t.Error("expected error for unknown game")
	}

	Register(GameInfo{ID: "zz-broken", Title: "Broken"}, func(Options) (Game, error) {
		return nil, errors.New("bad config")
	})
	_, err := Create("zz-broken", Options{})
	if err == nil || !strings.Contains(err.Error(), "bad config") {
		t.Errorf("factory error not wrapped: %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(Options) (Game, error) { return stubGame{}, nil }
	Register(GameInfo{ID: "zz-dup"}, f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration did not panic")
		}
	}()
	Register(GameInfo{ID: "zz-dup"}, f)
}
